package game

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// EndRoomId is the destination that ends the game instead of leading to a room.
	EndRoomId = 0

	// ForcedLabel marks an exit taken without player input.
	ForcedLabel = "FORCED"
)

// Destination is a target room, optionally annotated with an item the
// player must hold for the destination to be preferred.
type Destination struct {
	RoomId int
	Item   string
}

// ParseDestination parses "N" or "N/ITEM". Item names are upper-cased.
func ParseDestination(s string) (Destination, error) {
	idStr, item, gated := strings.Cut(s, "/")

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return Destination{}, fmt.Errorf("target %q: room id is not a number", s)
	}
	if id < 0 {
		return Destination{}, fmt.Errorf("target %q: room id must not be negative", s)
	}
	if gated && item == "" {
		return Destination{}, fmt.Errorf("target %q: item name is empty", s)
	}

	return Destination{RoomId: id, Item: CanonicalName(item)}, nil
}

func (d Destination) String() string {
	if d.Item == "" {
		return strconv.Itoa(d.RoomId)
	}
	return fmt.Sprintf("%d/%s", d.RoomId, d.Item)
}

// ItemHolder reports whether a named item is held.
type ItemHolder interface {
	Contains(name string) bool
}

// Exit is where a labelled connection leads: either a Single destination
// or an ordered list of Alternatives, which may themselves nest.
type Exit interface {
	// Destinations returns every destination reachable through the exit, flattened in order.
	Destinations() []Destination

	resolve(inv ItemHolder) (roomId int, matched bool)
	// unconditional reports whether the exit has an option needing no item.
	unconditional() bool
}

// Single is an exit with exactly one destination. Its item annotation
// never gates movement.
type Single struct {
	Destination
}

func (s Single) Destinations() []Destination {
	return []Destination{s.Destination}
}

func (s Single) resolve(inv ItemHolder) (int, bool) {
	return s.RoomId, s.Item != "" && inv.Contains(s.Item)
}

func (s Single) unconditional() bool {
	return s.Item == ""
}

// Alternatives is an ordered list of options sharing one label.
type Alternatives []Exit

func (a Alternatives) Destinations() []Destination {
	var dests []Destination
	for _, opt := range a {
		dests = append(dests, opt.Destinations()...)
	}
	return dests
}

// resolve picks the first option whose required item is held. When none
// matches, the last option needing no item is used, or the last option of
// all when every one needs an item.
func (a Alternatives) resolve(inv ItemHolder) (int, bool) {
	fallback, free := EndRoomId, false
	for _, opt := range a {
		id, ok := opt.resolve(inv)
		if ok {
			return id, true
		}
		if opt.unconditional() {
			fallback, free = id, true
		} else if !free {
			fallback = id
		}
	}
	return fallback, false
}

func (a Alternatives) unconditional() bool {
	for _, opt := range a {
		if opt.unconditional() {
			return true
		}
	}
	return false
}

func (a Alternatives) String() string {
	parts := make([]string, len(a))
	for i, opt := range a {
		parts[i] = fmt.Sprint(opt)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Resolve returns the room id the exit leads to for a player carrying inv.
func Resolve(e Exit, inv ItemHolder) int {
	id, _ := e.resolve(inv)
	return id
}

// leadsTo reports whether any destination of e targets roomId.
func leadsTo(e Exit, roomId int) bool {
	for _, d := range e.Destinations() {
		if d.RoomId == roomId {
			return true
		}
	}
	return false
}

package game

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// Room represents a location in the world.
// Exits are only added while the world is loading.
type Room struct {
	Id          int
	Name        string
	Description string

	// Inventory holds the items placed in the room when the world was loaded.
	Inventory *Inventory

	exits  map[string]Exit // label -> destination(s)
	labels []string        // labels in the order first seen
}

// NewRoom creates a room with no exits and an empty inventory.
func NewRoom(id int, name, description string) *Room {
	return &Room{
		Id:          id,
		Name:        name,
		Description: description,
		Inventory:   NewInventory(),
		exits:       make(map[string]Exit),
	}
}

// AddRoute connects label to d. A second destination under the same label
// turns the exit into Alternatives; later ones are appended in order.
func (r *Room) AddRoute(label string, d Destination) {
	label = CanonicalName(label)

	switch e := r.exits[label].(type) {
	case nil:
		r.exits[label] = Single{Destination: d}
		r.labels = append(r.labels, label)
	case Single:
		r.exits[label] = Alternatives{e, Single{Destination: d}}
	case Alternatives:
		r.exits[label] = append(e, Single{Destination: d})
	}
}

// Exit returns the exit under label.
func (r *Room) Exit(label string) (Exit, bool) {
	e, ok := r.exits[label]
	return e, ok
}

// IsConnected reports whether the room has an exit under label.
func (r *Room) IsConnected(label string) bool {
	_, ok := r.exits[label]
	return ok
}

// Forced returns the room's FORCED exit, if it has one.
func (r *Room) Forced() (Exit, bool) {
	return r.Exit(ForcedLabel)
}

// Labels returns the exit labels in the order they were added.
func (r *Room) Labels() []string {
	out := make([]string, len(r.labels))
	copy(out, r.labels)
	return out
}

// Validate checks the room's own fields. Cross references are checked by the world.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Id <= 0 {
		el.Add(fmt.Errorf("room id must be a positive integer, got %d", r.Id))
	}
	if r.Name == "" {
		el.Add(fmt.Errorf("room %d: name is required", r.Id))
	}

	return el.Err()
}

func (r *Room) String() string {
	parts := make([]string, 0, len(r.labels))
	for _, l := range r.labels {
		parts = append(parts, fmt.Sprintf("%s:%v", l, r.exits[l]))
	}
	return fmt.Sprintf("Room %d (%s) exits: %s", r.Id, r.Name, strings.Join(parts, " "))
}

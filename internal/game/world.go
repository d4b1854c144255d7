package game

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// StartRoomId is the room every game begins in.
const StartRoomId = 1

// World is the room graph and the initial item placement.
// It must not be modified once loaded; games copy what they mutate.
type World struct {
	rooms map[int]*Room
	order []int          // room ids in file order
	items map[int][]Item // room id -> items placed there, in file order
}

// VariantPaths returns the room and item file paths for a game variant.
func VariantPaths(dataDir, variant string) (rooms string, items string) {
	return filepath.Join(dataDir, variant+"Rooms.txt"), filepath.Join(dataDir, variant+"Items.txt")
}

// LoadWorld reads the room and item files and builds a linked world.
func LoadWorld(roomsPath, itemsPath string) (*World, error) {
	roomRecs, err := loadFile(roomsPath)
	if err != nil {
		return nil, err
	}
	itemRecs, err := loadFile(itemsPath)
	if err != nil {
		return nil, err
	}

	w, err := NewWorld(roomRecs, itemRecs)
	if err != nil {
		return nil, err
	}

	slog.Debug("world loaded", "rooms", w.RoomCount(), "items", w.ItemCount(), "path", roomsPath)
	return w, nil
}

func loadFile(path string) ([]storage.Record, error) {
	recs, err := storage.LoadRecords(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrWorldFileMissing, path)
		}
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return recs, nil
}

// NewWorld builds a world from parsed room and item records. Every problem
// found is reported together in an error wrapping ErrMalformedWorld.
func NewWorld(roomRecs, itemRecs []storage.Record) (*World, error) {
	w := &World{
		rooms: make(map[int]*Room),
		items: make(map[int][]Item),
	}
	el := errors.NewErrorList()

	// First pass creates the rooms so routes can reference any of them.
	routes := make(map[int][]string)
	for _, rec := range roomRecs {
		room, conns, err := parseRoom(rec)
		if err != nil {
			el.Add(err)
			continue
		}
		if _, ok := w.rooms[room.Id]; ok {
			el.Add(fmt.Errorf("rooms line %d: duplicate room id %d", rec.Line, room.Id))
			continue
		}
		w.rooms[room.Id] = room
		w.order = append(w.order, room.Id)
		routes[room.Id] = conns
	}

	// Second pass links the routes.
	for _, id := range w.order {
		room := w.rooms[id]
		for _, conn := range routes[id] {
			fields := strings.Fields(conn)
			if len(fields) != 2 {
				el.Add(fmt.Errorf("room %d: connection %q must be a label and a target", id, conn))
				continue
			}
			d, err := ParseDestination(fields[1])
			if err != nil {
				el.Add(fmt.Errorf("room %d: %w", id, err))
				continue
			}
			if d.RoomId != EndRoomId && w.rooms[d.RoomId] == nil {
				el.Add(fmt.Errorf("room %d: exit %s leads to unknown room %d", id, fields[0], d.RoomId))
				continue
			}
			room.AddRoute(fields[0], d)
		}
	}

	if len(roomRecs) > 0 && w.rooms[StartRoomId] == nil {
		el.Add(fmt.Errorf("start room %d is missing", StartRoomId))
	}
	if len(roomRecs) == 0 {
		el.Add(fmt.Errorf("no rooms defined"))
	}

	for _, rec := range itemRecs {
		item, err := parseItem(rec)
		if err != nil {
			el.Add(err)
			continue
		}
		room := w.rooms[item.InitialRoomId]
		if room == nil {
			el.Add(fmt.Errorf("items line %d: item %s placed in unknown room %d", rec.Line, item.Name, item.InitialRoomId))
			continue
		}
		w.items[item.InitialRoomId] = append(w.items[item.InitialRoomId], item)
		room.Inventory.Add(item)
	}

	if err := el.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedWorld, err)
	}

	return w, nil
}

// parseRoom reads the header of a room record and returns its connection lines.
func parseRoom(rec storage.Record) (*Room, []string, error) {
	if rec.Len() < 3 {
		return nil, nil, fmt.Errorf("rooms line %d: record needs an id, a name and a description", rec.Line)
	}

	id, err := strconv.Atoi(rec.Lines[0])
	if err != nil {
		return nil, nil, fmt.Errorf("rooms line %d: room id %q is not a number", rec.Line, rec.Lines[0])
	}

	room := NewRoom(id, rec.Lines[1], rec.Lines[2])
	if err := room.Validate(); err != nil {
		return nil, nil, fmt.Errorf("rooms line %d: %w", rec.Line, err)
	}

	conns := rec.Lines[3:]
	if len(conns) > 0 && isSeparator(conns[0]) {
		conns = conns[1:]
	}

	return room, conns, nil
}

func isSeparator(line string) bool {
	return strings.Trim(line, "-") == ""
}

func parseItem(rec storage.Record) (Item, error) {
	if rec.Len() != 3 {
		return Item{}, fmt.Errorf("items line %d: record must have a name, a description and a room id, got %d lines", rec.Line, rec.Len())
	}

	id, err := strconv.Atoi(rec.Lines[2])
	if err != nil {
		return Item{}, fmt.Errorf("items line %d: room id %q is not a number", rec.Line, rec.Lines[2])
	}

	// Commands are matched upper-cased, so names are stored that way too.
	return Item{
		Name:          CanonicalName(rec.Lines[0]),
		Description:   rec.Lines[1],
		InitialRoomId: id,
	}, nil
}

// Room returns the room with the given id, or nil.
func (w *World) Room(id int) *Room {
	return w.rooms[id]
}

// Rooms returns every room in file order.
func (w *World) Rooms() []*Room {
	out := make([]*Room, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.rooms[id])
	}
	return out
}

// RoomCount returns the number of rooms. The room whose id equals this
// count is the final room.
func (w *World) RoomCount() int {
	return len(w.rooms)
}

// ItemsIn returns the items originally placed in a room.
func (w *World) ItemsIn(roomId int) []Item {
	out := make([]Item, len(w.items[roomId]))
	copy(out, w.items[roomId])
	return out
}

// ItemCount returns the number of items placed in the world.
func (w *World) ItemCount() int {
	n := 0
	for _, items := range w.items {
		n += len(items)
	}
	return n
}

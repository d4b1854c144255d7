package game

import "fmt"

// Outcome is the state of a game with respect to winning or losing.
type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOngoing:
		return "ongoing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// RoomInstance is a room as seen by one game: the shared definition plus
// the items currently lying in it.
type RoomInstance struct {
	Room  *Room
	Items *Inventory
}

// MoveResult describes where a move ended up.
type MoveResult struct {
	// Forced lists the rooms passed through by FORCED exits, in order.
	// Each one is described to the player on the way through.
	Forced []*RoomInstance
	// Room is where the player is now.
	Room *RoomInstance
	// FirstVisit is set when Room had not been described before.
	// It is never set once the game is over.
	FirstVisit bool
	Outcome    Outcome
}

// Game holds the state of a single player's playthrough.
// A Game is not safe for concurrent use; the World it reads from is.
type Game struct {
	world     *World
	rooms     map[int]*RoomInstance
	current   *RoomInstance
	inventory *Inventory
	visited   map[int]bool
}

// NewGame starts a game in the world's start room. Each room's items are
// copied so the world stays untouched.
func NewGame(w *World) (*Game, error) {
	g := &Game{
		world:     w,
		rooms:     make(map[int]*RoomInstance, w.RoomCount()),
		inventory: NewInventory(),
		visited:   make(map[int]bool),
	}

	for _, room := range w.Rooms() {
		g.rooms[room.Id] = &RoomInstance{
			Room:  room,
			Items: room.Inventory.Clone(),
		}
	}

	start, ok := g.rooms[StartRoomId]
	if !ok {
		return nil, fmt.Errorf("start room %d: %w", StartRoomId, ErrUnknownRoom)
	}
	g.current = start
	g.visited[StartRoomId] = true

	return g, nil
}

// World returns the world the game is played in.
func (g *Game) World() *World {
	return g.world
}

// Current returns the room the player is in.
func (g *Game) Current() *RoomInstance {
	return g.current
}

// Inventory returns the items the player carries.
func (g *Game) Inventory() *Inventory {
	return g.inventory
}

// Visited reports whether the room has already been described in full.
func (g *Game) Visited(roomId int) bool {
	return g.visited[roomId]
}

// Outcome evaluates the current room. The final room (the one whose id
// equals the room count) wins when its single FORCED exit ends the game;
// any other FORCED exit that can end the game loses.
func (g *Game) Outcome() Outcome {
	room := g.current.Room

	forced, ok := room.Forced()
	if !ok {
		return OutcomeOngoing
	}

	if s, single := forced.(Single); single && room.Id == g.world.RoomCount() && s.RoomId == EndRoomId {
		return OutcomeWon
	}
	if leadsTo(forced, EndRoomId) {
		return OutcomeLost
	}

	return OutcomeOngoing
}

// Over reports whether the game has ended, either way.
func (g *Game) Over() bool {
	return g.Outcome() != OutcomeOngoing
}

// Move takes the exit under label and then follows FORCED exits until the
// player reaches a room without one or the game ends.
func (g *Game) Move(label string) (*MoveResult, error) {
	if g.Over() {
		return nil, ErrGameOver
	}

	exit, ok := g.current.Room.Exit(label)
	if !ok {
		return nil, fmt.Errorf("%s: %w", label, ErrNoExit)
	}

	// A failed move leaves the player where they started.
	prev := g.current
	res, err := g.move(exit)
	if err != nil {
		g.current = prev
		return nil, err
	}
	return res, nil
}

func (g *Game) move(exit Exit) (*MoveResult, error) {
	if err := g.follow(exit); err != nil {
		return nil, err
	}

	res := &MoveResult{}
	seen := make(map[int]bool)
	for {
		forced, ok := g.current.Room.Forced()
		if !ok {
			break
		}

		res.Forced = append(res.Forced, g.current)
		if g.Over() {
			break
		}

		if seen[g.current.Room.Id] {
			return nil, fmt.Errorf("room %d: %w", g.current.Room.Id, ErrForcedLoop)
		}
		seen[g.current.Room.Id] = true

		if err := g.follow(forced); err != nil {
			return nil, err
		}
	}

	res.Room = g.current
	res.Outcome = g.Outcome()
	if res.Outcome == OutcomeOngoing {
		res.FirstVisit = !g.visited[g.current.Room.Id]
		g.visited[g.current.Room.Id] = true
	}

	return res, nil
}

func (g *Game) follow(e Exit) error {
	id := Resolve(e, g.inventory)

	next, ok := g.rooms[id]
	if !ok {
		return fmt.Errorf("room %d: %w", id, ErrUnknownRoom)
	}
	g.current = next

	return nil
}

// Take moves the named item from the current room to the player.
func (g *Game) Take(name string) (Item, error) {
	return Transfer(g.current.Items, g.inventory, name)
}

// Drop moves the named item from the player to the current room.
func (g *Game) Drop(name string) (Item, error) {
	return Transfer(g.inventory, g.current.Items, name)
}

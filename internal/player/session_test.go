package player

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-testutil"
)

// fakeConn reads scripted input and records everything written.
type fakeConn struct {
	in  io.Reader
	out bytes.Buffer
}

func (c *fakeConn) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c *fakeConn) Write(p []byte) (int, error) { return c.out.Write(p) }

// failingConn accepts no writes.
type failingConn struct{}

func (failingConn) Read(p []byte) (int, error)  { return 0, io.EOF }
func (failingConn) Write(p []byte) (int, error) { return 0, errors.New("connection reset") }

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	rooms := [][]string{
		{"1", "Hall", "You are in a hall.", "NORTH 2", "DOWN 3"},
		{"2", "Pit", "You fall into a pit.", "FORCED 0"},
		{"3", "Exit", "You find the way out.", "FORCED 0"},
	}
	items := [][]string{
		{"LAMP", "a brass lamp", "1"},
	}

	var roomRecs, itemRecs []storage.Record
	for i, lines := range rooms {
		roomRecs = append(roomRecs, storage.Record{Line: i + 1, Lines: lines})
	}
	for i, lines := range items {
		itemRecs = append(itemRecs, storage.Record{Line: i + 1, Lines: lines})
	}

	w, err := game.NewWorld(roomRecs, itemRecs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g, err := game.NewGame(w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestSession_Play(t *testing.T) {
	opening := Banner + "\nYou are in a hall.\nLAMP: a brass lamp\n"

	tests := map[string]struct {
		input      string
		expOutput  string
		expOutcome game.Outcome
	}{
		"quit": {
			input:      "quit\n",
			expOutput:  opening + "> " + commands.QuitMessage + "\n",
			expOutcome: game.OutcomeOngoing,
		},
		"input closed": {
			input:      "",
			expOutput:  opening + "> ",
			expOutcome: game.OutcomeOngoing,
		},
		"invalid then quit": {
			input:      "dance\nQUIT\n",
			expOutput:  opening + "> Invalid command\n> " + commands.QuitMessage + "\n",
			expOutcome: game.OutcomeOngoing,
		},
		"empty line": {
			input:      "\n",
			expOutput:  opening + "> > ",
			expOutcome: game.OutcomeOngoing,
		},
		"take then lose": {
			input:      "take lamp\nnorth\nlook\n",
			expOutput:  opening + "> LAMP taken\n> You fall into a pit.\n" + LostMessage + "\n",
			expOutcome: game.OutcomeLost,
		},
		"win": {
			input:      "down\n",
			expOutput:  opening + "> You find the way out.\n" + WonMessage + "\n",
			expOutcome: game.OutcomeWon,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			conn := &fakeConn{in: strings.NewReader(tt.input)}
			s := NewSession(conn, newTestGame(t), commands.NewHandler())

			err := s.Play(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "output", conn.out.String(), tt.expOutput)
			testutil.AssertEqual(t, "outcome", s.Game().Outcome(), tt.expOutcome)
		})
	}
}

func TestSession_Play_WriteError(t *testing.T) {
	s := NewSession(failingConn{}, newTestGame(t), commands.NewHandler())

	err := s.Play(context.Background())
	testutil.AssertErrorContains(t, err, "connection reset")
}

func TestSession_Play_Cancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conn := &fakeConn{in: r}
	s := NewSession(conn, newTestGame(t), commands.NewHandler())

	err := s.Play(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestNewSession_Id(t *testing.T) {
	a := NewSession(&fakeConn{in: strings.NewReader("")}, newTestGame(t), commands.NewHandler())
	b := NewSession(&fakeConn{in: strings.NewReader("")}, newTestGame(t), commands.NewHandler())

	if a.Id() == "" || a.Id() == b.Id() {
		t.Errorf("expected distinct non-empty ids, got %q and %q", a.Id(), b.Id())
	}
}

package listener

import (
	"context"
	"io"
	"log/slog"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/player"
)

// ConnectionManager starts a fresh game for every accepted connection.
// The world is shared between connections and never modified.
type ConnectionManager struct {
	world      *game.World
	cmdHandler *commands.Handler
}

func NewConnectionManager(world *game.World, cmdHandler *commands.Handler) *ConnectionManager {
	return &ConnectionManager{
		world:      world,
		cmdHandler: cmdHandler,
	}
}

// AcceptConnection plays one game over conn and returns when it ends.
func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	g, err := game.NewGame(m.world)
	if err != nil {
		slog.ErrorContext(ctx, "starting game", "error", err)
		return
	}

	s := player.NewSession(conn, g, m.cmdHandler)
	if err := s.Play(ctx); err != nil {
		slog.WarnContext(ctx, "player session", "session", s.Id(), "error", err)
	}
}

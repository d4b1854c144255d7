package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
)

// move takes the exit under label. Rooms passed through by FORCED exits are
// described on the way; the arrival room is described in full on the first
// visit and by name afterwards. Nothing more is shown once the game is over.
func move(ctx context.Context, cmdCtx *CommandContext, label string) error {
	res, err := cmdCtx.Game.Move(label)
	if errors.Is(err, game.ErrNoExit) {
		return ErrInvalidCommand
	}
	if err != nil {
		return err
	}

	for _, ri := range res.Forced {
		cmdCtx.Print(display.Wrap(ri.Room.Description))
	}

	slog.DebugContext(ctx, "moved", "label", label, "room", res.Room.Room.Id, "forced", len(res.Forced), "outcome", res.Outcome)

	if res.Outcome != game.OutcomeOngoing {
		return nil
	}

	lines, err := DescribeRoom(res.Room, res.FirstVisit)
	if err != nil {
		return err
	}

	cmdCtx.Print(lines...)
	return nil
}

package commands

import (
	"context"
	"errors"

	"github.com/pixil98/go-adventure/internal/game"
)

func newTakeCommand() *Command {
	return &Command{
		Name:        "TAKE",
		Args:        "<item>",
		Description: "takes an item from the room.",
		MinArgs:     1,
		ArgsMessage: "Specify item",
		Func: func(ctx context.Context, cmdCtx *CommandContext) error {
			item, err := cmdCtx.Game.Take(itemArg(cmdCtx.Args))
			if errors.Is(err, game.ErrItemNotFound) {
				return NewUserError("No such item")
			}
			if err != nil {
				return err
			}

			msg, err := ExpandTemplate(takenTemplate, item)
			if err != nil {
				return err
			}

			cmdCtx.Print(msg)
			return nil
		},
	}
}

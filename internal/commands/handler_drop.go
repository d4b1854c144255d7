package commands

import (
	"context"
	"errors"

	"github.com/pixil98/go-adventure/internal/game"
)

func newDropCommand() *Command {
	return &Command{
		Name:        "DROP",
		Args:        "<item>",
		Description: "drops an item from your inventory.",
		MinArgs:     1,
		ArgsMessage: "Specify item",
		Func: func(ctx context.Context, cmdCtx *CommandContext) error {
			item, err := cmdCtx.Game.Drop(itemArg(cmdCtx.Args))
			if errors.Is(err, game.ErrItemNotFound) {
				return NewUserError("No such item in inventory")
			}
			if err != nil {
				return err
			}

			msg, err := ExpandTemplate(droppedTemplate, item)
			if err != nil {
				return err
			}

			cmdCtx.Print(msg)
			return nil
		},
	}
}

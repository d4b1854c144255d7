package commands

import (
	"context"
)

func newHelpCommand(h *Handler) *Command {
	return &Command{
		Name:        "HELP",
		Description: "prints instructions for the game.",
		Func: func(ctx context.Context, cmdCtx *CommandContext) error {
			text, err := ExpandTemplate(helpTemplate, struct{ Commands []*Command }{h.Commands()})
			if err != nil {
				return err
			}

			cmdCtx.Print(text)
			return nil
		},
	}
}

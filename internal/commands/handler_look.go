package commands

import "context"

func newLookCommand() *Command {
	return &Command{
		Name:        "LOOK",
		Description: "lists the complete description of the room and its contents.",
		Func: func(ctx context.Context, cmdCtx *CommandContext) error {
			lines, err := DescribeRoom(cmdCtx.Game.Current(), true)
			if err != nil {
				return err
			}

			cmdCtx.Print(lines...)
			return nil
		},
	}
}

package commands

import "context"

// QuitMessage is printed when the player quits.
const QuitMessage = "Thanks for playing!"

func newQuitCommand() *Command {
	return &Command{
		Name:        "QUIT",
		Description: "quits the game.",
		Func: func(ctx context.Context, cmdCtx *CommandContext) error {
			cmdCtx.Print(QuitMessage)
			cmdCtx.Quit()
			return nil
		},
	}
}

package commands

import "context"

func newInventoryCommand() *Command {
	return &Command{
		Name:        "INVENTORY",
		Description: "lists the items in your inventory.",
		Func: func(ctx context.Context, cmdCtx *CommandContext) error {
			inv := cmdCtx.Game.Inventory()
			if inv.Len() == 0 {
				cmdCtx.Print("Your inventory is empty.")
				return nil
			}

			lines, err := FormatItems(inv.List())
			if err != nil {
				return err
			}

			cmdCtx.Print(lines...)
			return nil
		},
	}
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-adventure/internal/game"
)

// CommandFunc runs a command against the game in cmdCtx.
// Player-facing failures are returned as *UserError.
type CommandFunc func(ctx context.Context, cmdCtx *CommandContext) error

// Command is a verb the player can type.
type Command struct {
	Name        string // upper-case verb, e.g. TAKE
	Args        string // argument placeholder shown in help, e.g. <item>
	Description string
	MinArgs     int
	// ArgsMessage is shown when fewer than MinArgs arguments are given.
	ArgsMessage string
	Func        CommandFunc
}

// Usage returns the verb followed by its argument placeholder.
func (c *Command) Usage() string {
	if c.Args == "" {
		return c.Name
	}
	return c.Name + " " + c.Args
}

func (c *Command) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("command name not set")
	}
	if c.Name != strings.ToUpper(c.Name) || strings.ContainsAny(c.Name, " \t") {
		return fmt.Errorf("command %q: name must be a single upper-case word", c.Name)
	}
	if c.Func == nil {
		return fmt.Errorf("command %q: func not set", c.Name)
	}
	if c.MinArgs < 0 {
		return fmt.Errorf("command %q: min args must not be negative", c.Name)
	}
	if c.MinArgs > 0 && c.ArgsMessage == "" {
		return fmt.Errorf("command %q: args message is required when args are required", c.Name)
	}
	return nil
}

// CommandContext carries one command invocation.
type CommandContext struct {
	Game *game.Game
	// Input is the whole normalized line.
	Input string
	// Args are the words after the verb.
	Args []string

	result *Result
}

// Print queues lines of output for the player.
func (c *CommandContext) Print(lines ...string) {
	c.result.Lines = append(c.result.Lines, lines...)
}

// Quit ends the session after this command.
func (c *CommandContext) Quit() {
	c.result.Quit = true
}

// Result is the output of a command.
type Result struct {
	Lines []string
	Quit  bool
}

// Text joins the output lines.
func (r *Result) Text() string {
	return strings.Join(r.Lines, "\n")
}

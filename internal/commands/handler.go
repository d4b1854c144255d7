package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pixil98/go-adventure/internal/game"
)

// Handler dispatches player input to registered commands, falling back to
// the exits of the current room.
type Handler struct {
	commands map[string]*Command
	order    []string // registration order, used by help
}

// NewHandler creates a handler with the built-in commands registered.
func NewHandler() *Handler {
	h := &Handler{
		commands: make(map[string]*Command),
	}

	// Register built-in commands
	h.Register(newHelpCommand(h))
	h.Register(newQuitCommand())
	h.Register(newLookCommand())
	h.Register(newInventoryCommand())
	h.Register(newTakeCommand())
	h.Register(newDropCommand())

	return h
}

// Register adds a command. Names must be unique.
func (h *Handler) Register(cmd *Command) error {
	if cmd == nil {
		return fmt.Errorf("command cannot be nil")
	}
	if err := cmd.Validate(); err != nil {
		return err
	}
	if _, exists := h.commands[cmd.Name]; exists {
		return fmt.Errorf("command %q already registered", cmd.Name)
	}

	h.commands[cmd.Name] = cmd
	h.order = append(h.order, cmd.Name)
	return nil
}

// Commands returns the registered commands in registration order.
func (h *Handler) Commands() []*Command {
	out := make([]*Command, 0, len(h.order))
	for _, name := range h.order {
		out = append(out, h.commands[name])
	}
	return out
}

// Normalize trims the input and upper-cases it the same way world names
// are upper-cased at load, so matching ignores case.
func Normalize(line string) string {
	return game.CanonicalName(strings.TrimSpace(line))
}

// Exec runs one line of player input against g. An empty line produces no
// output. Unknown input returns ErrInvalidCommand.
func (h *Handler) Exec(ctx context.Context, g *game.Game, line string) (*Result, error) {
	input := Normalize(line)
	res := &Result{}
	if input == "" {
		return res, nil
	}

	parts := strings.Fields(input)
	cmdCtx := &CommandContext{
		Game:   g,
		Input:  input,
		Args:   parts[1:],
		result: res,
	}

	if cmd, ok := h.commands[parts[0]]; ok {
		if len(cmdCtx.Args) < cmd.MinArgs {
			return nil, NewUserError(cmd.ArgsMessage)
		}
		if err := cmd.Func(ctx, cmdCtx); err != nil {
			return nil, err
		}
		return res, nil
	}

	if g.Current().Room.IsConnected(input) {
		if err := move(ctx, cmdCtx, input); err != nil {
			return nil, err
		}
		return res, nil
	}

	return nil, ErrInvalidCommand
}

package commands

import "fmt"

// UserError represents an error that should be displayed to the player.
// These are not system failures - just invalid input or usage.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a player-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}

// NewUserErrorf creates a player-facing error from a format string.
func NewUserErrorf(format string, args ...any) *UserError {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// ErrInvalidCommand is returned for input that matches no verb or exit.
var ErrInvalidCommand = NewUserError("Invalid command")

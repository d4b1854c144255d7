package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
)

const (
	Banner = "Welcome, to the Adventure games.\nMay the randomly generated numbers be ever in your favour.\n"
	Prompt = "> "

	WonMessage  = "Congratulations, you have won!"
	LostMessage = "Game over."
)

// Session plays one game over a connection.
type Session struct {
	id         string
	conn       io.ReadWriter
	game       *game.Game
	cmdHandler *commands.Handler
}

// NewSession creates a session for g reading commands from conn.
func NewSession(conn io.ReadWriter, g *game.Game, h *commands.Handler) *Session {
	return &Session{
		id:         uuid.NewString(),
		conn:       conn,
		game:       g,
		cmdHandler: h,
	}
}

// Id returns the session's unique identifier.
func (s *Session) Id() string {
	return s.id
}

// Game returns the game being played.
func (s *Session) Game() *game.Game {
	return s.game
}

// Play runs the game until the player quits, the game ends or the input is
// exhausted. Player mistakes are written back to the connection; any other
// error ends the session.
func (s *Session) Play(ctx context.Context) error {
	logger := slog.With("session", s.id)
	logger.InfoContext(ctx, "session started")

	done := make(chan struct{})
	defer close(done)

	// Start goroutine to read input lines into a channel
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		defer close(inputChan)
		scanner := bufio.NewScanner(s.conn)
		for scanner.Scan() {
			select {
			case inputChan <- scanner.Text():
			case <-done:
				return
			}
		}
		inputErrChan <- scanner.Err()
	}()

	if err := s.writeLine(Banner); err != nil {
		return err
	}

	lines, err := commands.DescribeRoom(s.game.Current(), true)
	if err != nil {
		return fmt.Errorf("describing start room: %w", err)
	}
	if err := s.writeLine(lines...); err != nil {
		return err
	}

	for !s.game.Over() {
		if err := s.prompt(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-inputChan:
			if !ok {
				// Input closed before the game ended.
				select {
				case err := <-inputErrChan:
					if err != nil {
						return fmt.Errorf("reading input: %w", err)
					}
				default:
				}
				logger.InfoContext(ctx, "session ended", "reason", "input closed")
				return nil
			}

			res, err := s.cmdHandler.Exec(ctx, s.game, line)
			if err != nil {
				var userErr *commands.UserError
				if !errors.As(err, &userErr) {
					// System error - log and disconnect
					logger.ErrorContext(ctx, "command failed", "input", strings.TrimSpace(line), "error", err)
					return fmt.Errorf("command execution failed: %w", err)
				}
				if err := s.writeLine(userErr.Message); err != nil {
					return err
				}
				continue
			}

			if err := s.writeLine(res.Lines...); err != nil {
				return err
			}
			if res.Quit {
				logger.InfoContext(ctx, "session ended", "reason", "quit")
				return nil
			}
		}
	}

	outcome := s.game.Outcome()
	logger.InfoContext(ctx, "session ended", "reason", "game over", "outcome", outcome)

	if outcome == game.OutcomeWon {
		return s.writeLine(WonMessage)
	}
	return s.writeLine(LostMessage)
}

func (s *Session) prompt() error {
	_, err := io.WriteString(s.conn, Prompt)
	return err
}

func (s *Session) writeLine(lines ...string) error {
	for _, line := range lines {
		if _, err := io.WriteString(s.conn, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/player"
)

var (
	dataDir  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "adventure <variant>",
	Short: "Play a text adventure",
	Long: `Adventure loads data/<variant>Rooms.txt and data/<variant>Items.txt
and plays the game on the terminal.`,
	Args:          cobra.ExactArgs(1),
	SilenceErrors: true,
	RunE:          runAdventure,
}

func init() {
	rootCmd.Flags().StringVar(&dataDir, "data-dir", "data", "directory holding the world files")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

func runAdventure(cmd *cobra.Command, args []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// The arguments were fine; further failures are not usage errors.
	cmd.SilenceUsage = true

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return play(ctx, os.Stdin, os.Stdout, dataDir, args[0])
}

// terminal joins separate input and output streams into one connection.
type terminal struct {
	io.Reader
	io.Writer
}

// play loads the variant's world from dir and plays it over in and out.
func play(ctx context.Context, in io.Reader, out io.Writer, dir, variant string) error {
	world, err := game.LoadWorld(game.VariantPaths(dir, variant))
	if err != nil {
		return err
	}

	g, err := game.NewGame(world)
	if err != nil {
		return fmt.Errorf("starting game: %w", err)
	}

	return player.NewSession(terminal{Reader: in, Writer: out}, g, commands.NewHandler()).Play(ctx)
}

// Package main is the single player command line adventure.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pixil98/go-adventure/internal/game"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, game.ErrWorldFileMissing) {
			fmt.Println("Invalid file")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

package command

import (
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/pixil98/go-adventure/internal/game"
)

type WorldConfig struct {
	DataDir string `json:"data_dir"`
	Variant string `json:"variant"`
}

func (c *WorldConfig) validate() error {
	el := errors.NewErrorList()

	if c.DataDir == "" {
		el.Add(fmt.Errorf("world data_dir is required"))
	}
	if c.Variant == "" {
		el.Add(fmt.Errorf("world variant is required"))
	}

	return el.Err()
}

// BuildWorld loads the configured variant.
func (c *WorldConfig) BuildWorld() (*game.World, error) {
	w, err := game.LoadWorld(game.VariantPaths(c.DataDir, c.Variant))
	if err != nil {
		return nil, fmt.Errorf("loading world %q: %w", c.Variant, err)
	}
	return w, nil
}

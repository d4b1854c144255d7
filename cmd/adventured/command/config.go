package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

type Config struct {
	World     WorldConfig      `json:"world"`
	Listeners []ListenerConfig `json:"listeners"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.World.validate())

	if len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("at least one listener is required"))
	}
	for i, l := range c.Listeners {
		err := l.validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	return el.Err()
}

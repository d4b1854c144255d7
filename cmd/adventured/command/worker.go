package command

import (
	"fmt"

	"github.com/pixil98/go-service"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/listener"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	world, err := cfg.World.BuildWorld()
	if err != nil {
		return nil, err
	}

	cm := listener.NewConnectionManager(world, commands.NewHandler())

	// Create Listeners
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		worker, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("%s-%d", l.Protocol, i)] = worker
	}

	return service.WorkerList{
		"listeners": &listeners,
	}, nil
}

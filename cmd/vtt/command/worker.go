package command

import (
	"fmt"

	"github.com/pixil98/go-service"
	"github.com/pixil98/go-vtt/internal/director"
	"github.com/pixil98/go-vtt/internal/display"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load setup assets
	lib, err := cfg.Storage.BuildLibrary()
	if err != nil {
		return nil, fmt.Errorf("building asset library: %w", err)
	}

	// Create the display bus
	bus, err := cfg.Nats.BuildBus()
	if err != nil {
		return nil, fmt.Errorf("building display bus: %w", err)
	}

	// Open the play session
	state, builder, err := cfg.Session.BuildSession(lib)
	if err != nil {
		return nil, fmt.Errorf("building session: %w", err)
	}

	// Create player display listeners and their synchronizers
	listeners := make(service.WorkerList, len(cfg.Displays))
	syncs := make([]*display.Synchronizer, 0, len(cfg.Displays))
	for i, d := range cfg.Displays {
		listeners[fmt.Sprintf("listener-%d", i)] = d.BuildListener(bus)
		syncs = append(syncs, d.BuildSynchronizer(bus))
	}

	return service.WorkerList{
		"display-bus": bus,
		"director":    director.New(state, builder, syncs...),
		"listeners":   &listeners,
	}, nil
}

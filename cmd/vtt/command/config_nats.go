package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-vtt/internal/display"
)

type NatsConfig struct {
	Host         string `json:"host"`
	Port         int    `json:"port"`
	StartTimeout string `json:"start_timeout"`
}

func (n *NatsConfig) validate() error {
	el := errors.NewErrorList()

	if n.StartTimeout != "" {
		_, err := time.ParseDuration(n.StartTimeout)
		if err != nil {
			el.Add(fmt.Errorf("parsing start_timeout: %w", err))
		}
	}

	return el.Err()
}

func (n *NatsConfig) BuildBus() (*display.NatsBus, error) {
	var opts []display.NatsBusOpt
	if n.StartTimeout != "" {
		d, err := time.ParseDuration(n.StartTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing start_timeout: %w", err)
		}
		opts = append(opts, display.WithStartTimeout(d))
	}
	if n.Host != "" {
		opts = append(opts, display.WithHost(n.Host))
	}
	if n.Port != 0 {
		opts = append(opts, display.WithPort(n.Port))
	}

	b, err := display.NewNatsBus(opts...)
	if err != nil {
		return nil, err
	}

	return b, nil
}

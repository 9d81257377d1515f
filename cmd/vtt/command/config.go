package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

type Config struct {
	Storage  StorageConfig   `json:"storage"`
	Nats     NatsConfig      `json:"nats"`
	Session  SessionConfig   `json:"session"`
	Displays []DisplayConfig `json:"displays"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Storage.validate())
	el.Add(c.Nats.validate())
	el.Add(c.Session.validate())

	for i, d := range c.Displays {
		if err := d.validate(); err != nil {
			el.Add(fmt.Errorf("display %d: %w", i, err))
		}
	}

	return el.Err()
}

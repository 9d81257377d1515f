package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-vtt/internal/display"
	"github.com/pixil98/go-vtt/internal/listener"
)

type DisplayConfig struct {
	Surface string `json:"surface"`
	Port    uint16 `json:"port"`
}

func (d *DisplayConfig) validate() error {
	el := errors.NewErrorList()

	if d.Surface == "" {
		el.Add(fmt.Errorf("surface is required"))
	}
	if d.Port == 0 {
		el.Add(fmt.Errorf("port must be set to a positive integer"))
	}

	return el.Err()
}

func (d *DisplayConfig) BuildListener(bus *display.NatsBus) *listener.WebsocketListener {
	return listener.NewWebsocketListener(d.Port, d.Surface, bus)
}

func (d *DisplayConfig) BuildSynchronizer(bus *display.NatsBus) *display.Synchronizer {
	return display.NewSynchronizer(bus, d.Surface)
}

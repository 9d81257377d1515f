package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-vtt/internal/scene"
	"github.com/pixil98/go-vtt/internal/session"
	"github.com/pixil98/go-vtt/internal/sight"
)

type SessionConfig struct {
	Map string `json:"map"`

	// Epsilon overrides the corner-ray angular offset. Zero derives it from
	// the map geometry.
	Epsilon float64 `json:"epsilon,omitempty"`
}

func (c *SessionConfig) validate() error {
	el := errors.NewErrorList()

	if c.Map == "" {
		el.Add(fmt.Errorf("map is required"))
	}
	if c.Epsilon < 0 {
		el.Add(fmt.Errorf("epsilon must not be negative"))
	}

	return el.Err()
}

func (c *SessionConfig) BuildSession(lib *scene.Library) (*session.State, *sight.Builder, error) {
	m := lib.Maps.Get(c.Map)
	if m == nil {
		return nil, nil, fmt.Errorf("map %q not found", c.Map)
	}

	state := session.New(m)

	eps := c.Epsilon
	if eps == 0 {
		eps = sight.EpsilonForGeometry(m.Diagonal(), state.Geometry().Walls())
	}

	return state, sight.NewBuilder(sight.WithEpsilon(eps)), nil
}

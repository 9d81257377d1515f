package scene

import (
	"fmt"

	"github.com/pixil98/go-vtt/internal/light"
	"github.com/pixil98/go-vtt/internal/storage"
)

// Library holds all setup asset stores. It provides a single reference so
// resolution and lookup share one signature.
type Library struct {
	Maps     storage.Storer[*Map]
	Profiles storage.Storer[*light.VisionProfile]
}

// Resolve resolves vision profile references on every map's tokens.
func (l *Library) Resolve() error {
	for id, m := range l.Maps.GetAll() {
		if err := m.Resolve(l.Profiles); err != nil {
			return fmt.Errorf("map %s: %w", id, err)
		}
	}
	return nil
}

package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-vtt/internal/light"
	"github.com/pixil98/go-vtt/internal/scene"
	"github.com/pixil98/go-vtt/internal/storage"
)

type StorageConfig struct {
	Maps     AssetConfig[*scene.Map]           `json:"maps"`
	Profiles AssetConfig[*light.VisionProfile] `json:"profiles"`
}

func (c *StorageConfig) BuildLibrary() (*scene.Library, error) {
	maps, err := c.Maps.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating map store: %w", err)
	}
	profiles, err := c.Profiles.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating profile store: %w", err)
	}

	lib := &scene.Library{
		Maps:     maps,
		Profiles: profiles,
	}

	if err := lib.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return lib, nil
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Maps.Validate("maps"))
	el.Add(c.Profiles.Validate("profiles"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}

// Package scene holds the per-map setup records: wall geometry, portals,
// baked-in lights, and token starting positions. Everything here is loaded
// once when a map opens and is read-only for the rest of the session; the one
// mutable bit of a portal (open/closed) lives in the session overlay instead.
package scene

import (
	"fmt"
	"math"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-vtt/internal/geom"
	"github.com/pixil98/go-vtt/internal/light"
	"github.com/pixil98/go-vtt/internal/storage"
)

// FeetPerGrid is the tabletop convention: one grid square is five feet.
const FeetPerGrid = 5.0

// Scale converts between feet and map pixel units.
type Scale struct {
	PixelsPerGrid float64 `json:"pixels_per_grid"`
}

// FeetToUnits converts a distance in feet to map units.
func (s Scale) FeetToUnits(ft float64) float64 {
	return ft / FeetPerGrid * s.PixelsPerGrid
}

// UnitsToFeet converts a distance in map units to feet.
func (s Scale) UnitsToFeet(u float64) float64 {
	return u * FeetPerGrid / s.PixelsPerGrid
}

// Map is a loadable map asset. Positions are in map pixel units; light radii
// and vision ranges are in feet and converted through Scale at render time.
type Map struct {
	Name     string  `json:"name"`
	ImageRef string  `json:"image_ref"`
	GridType string  `json:"grid_type"`
	Scale    Scale   `json:"scale"`
	WidthPx  float64 `json:"width_px"`
	HeightPx float64 `json:"height_px"`
	Ambient  string  `json:"ambient"`

	Walls   []geom.Segment `json:"walls"`
	Portals []Portal       `json:"portals"`
	Lights  []LightSpec    `json:"lights"`
	Tokens  []TokenSpec    `json:"tokens"`
}

const (
	GridSquare   = "square"
	GridGridless = "gridless"

	AmbientBright = "bright"
	AmbientDim    = "dim"
	AmbientDark   = "dark"
)

// Diagonal returns the map's diagonal in map units. It caps visibility range
// for observers whose vision has no finite limit.
func (m *Map) Diagonal() float64 {
	return math.Hypot(m.WidthPx, m.HeightPx)
}

// AmbientLevel returns the map's ambient illumination floor. Unset maps are
// dark, so unlit areas reveal nothing by default.
func (m *Map) AmbientLevel() light.Illumination {
	switch m.Ambient {
	case AmbientBright:
		return light.Bright
	case AmbientDim:
		return light.Dim
	default:
		return light.Dark
	}
}

// Validate satisfies storage.ValidatingSpec.
func (m *Map) Validate() error {
	el := errors.NewErrorList()

	if m.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if m.Scale.PixelsPerGrid <= 0 {
		el.Add(fmt.Errorf("scale.pixels_per_grid must be positive"))
	}
	if m.WidthPx <= 0 || m.HeightPx <= 0 {
		el.Add(fmt.Errorf("width_px and height_px must be positive"))
	}

	switch m.GridType {
	case GridSquare, GridGridless, "":
	default:
		el.Add(fmt.Errorf("invalid grid_type: %s", m.GridType))
	}

	switch m.Ambient {
	case AmbientBright, AmbientDim, AmbientDark, "":
	default:
		el.Add(fmt.Errorf("invalid ambient: %s (must be %s, %s, or %s)",
			m.Ambient, AmbientBright, AmbientDim, AmbientDark))
	}

	portalIds := make(map[string]bool, len(m.Portals))
	for i, p := range m.Portals {
		if err := p.Validate(); err != nil {
			el.Add(fmt.Errorf("portal %d: %w", i, err))
			continue
		}
		if portalIds[p.Id] {
			el.Add(fmt.Errorf("duplicate portal id: %s", p.Id))
		}
		portalIds[p.Id] = true
	}

	for i, l := range m.Lights {
		if err := l.Validate(); err != nil {
			el.Add(fmt.Errorf("light %d: %w", i, err))
		}
	}

	tokenIds := make(map[string]bool, len(m.Tokens))
	for i, t := range m.Tokens {
		if err := t.Validate(); err != nil {
			el.Add(fmt.Errorf("token %d: %w", i, err))
			continue
		}
		if tokenIds[t.Id] {
			el.Add(fmt.Errorf("duplicate token id: %s", t.Id))
		}
		tokenIds[t.Id] = true
	}

	for i, l := range m.Lights {
		if l.AttachedTokenId != "" && !tokenIds[l.AttachedTokenId] {
			el.Add(fmt.Errorf("light %d: attached token %q not on map", i, l.AttachedTokenId))
		}
	}

	return el.Err()
}

// Resolve resolves token vision profile references against the profile store.
func (m *Map) Resolve(profiles storage.Storer[*light.VisionProfile]) error {
	for i := range m.Tokens {
		if m.Tokens[i].Profile.Id() == "" {
			continue
		}
		if err := m.Tokens[i].Profile.Resolve(profiles); err != nil {
			return fmt.Errorf("token %s: %w", m.Tokens[i].Id, err)
		}
	}
	return nil
}

// Portal is a door-like wall segment. Its segment never also appears in the
// map's wall list; whether it currently blocks sight is runtime state, and a
// portal with no recorded runtime state is closed.
type Portal struct {
	Id  string       `json:"id"`
	Seg geom.Segment `json:"seg"`
}

func (p *Portal) Validate() error {
	el := errors.NewErrorList()

	if p.Id == "" {
		el.Add(fmt.Errorf("id is required"))
	}
	if p.Seg.IsZero() {
		el.Add(fmt.Errorf("segment must have distinct endpoints"))
	}

	return el.Err()
}

// LightSpec is a placed light source. Radii are in feet; dim always reaches
// at least as far as bright. When AttachedTokenId is set the light tracks
// that token's current position instead of Pos.
type LightSpec struct {
	Id              string     `json:"id"`
	Name            string     `json:"name,omitempty"`
	Pos             geom.Point `json:"pos"`
	BrightRadiusFt  float64    `json:"bright_radius_ft"`
	DimRadiusFt     float64    `json:"dim_radius_ft"`
	AttachedTokenId string     `json:"attached_token_id,omitempty"`
}

func (l *LightSpec) Validate() error {
	el := errors.NewErrorList()

	if l.Id == "" {
		el.Add(fmt.Errorf("id is required"))
	}
	if l.BrightRadiusFt < 0 {
		el.Add(fmt.Errorf("bright_radius_ft must not be negative"))
	}
	if l.DimRadiusFt < l.BrightRadiusFt {
		el.Add(fmt.Errorf("dim_radius_ft must be at least bright_radius_ft"))
	}

	return el.Err()
}

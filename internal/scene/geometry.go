package scene

import "github.com/pixil98/go-vtt/internal/geom"

// GeometryStore holds a map's blocking geometry. It is built once at map open
// and read-only afterwards, so concurrent visibility passes for different
// observers need no synchronization.
type GeometryStore struct {
	walls   []geom.Segment
	portals []Portal
}

// NewGeometryStore builds a store from a map, dropping zero-length wall
// segments rather than erroring.
func NewGeometryStore(m *Map) *GeometryStore {
	walls := make([]geom.Segment, 0, len(m.Walls))
	for _, w := range m.Walls {
		if w.IsZero() {
			continue
		}
		walls = append(walls, w)
	}
	return &GeometryStore{
		walls:   walls,
		portals: m.Portals,
	}
}

// Walls returns the permanent wall segments.
func (g *GeometryStore) Walls() []geom.Segment {
	return g.walls
}

// Portals returns the map's portals.
func (g *GeometryStore) Portals() []Portal {
	return g.portals
}

// EffectiveBlockers returns every segment that currently blocks sight: all
// permanent walls plus each portal whose runtime state is closed. A portal
// absent from open is closed, so an unset portal under-reveals rather than
// over-reveals.
func (g *GeometryStore) EffectiveBlockers(open map[string]bool) []geom.Segment {
	out := make([]geom.Segment, 0, len(g.walls)+len(g.portals))
	out = append(out, g.walls...)
	for _, p := range g.portals {
		if open[p.Id] {
			continue
		}
		out = append(out, p.Seg)
	}
	return out
}

package scene

import (
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/pixil98/go-vtt/internal/geom"
)

func TestGeometryStore_EffectiveBlockers(t *testing.T) {
	m := validMap()
	g := NewGeometryStore(m)

	tests := map[string]struct {
		open     map[string]bool
		expCount int
	}{
		"no runtime state defaults closed": {
			open:     nil,
			expCount: 2,
		},
		"explicitly closed": {
			open:     map[string]bool{"door-1": false},
			expCount: 2,
		},
		"open portal excluded": {
			open:     map[string]bool{"door-1": true},
			expCount: 1,
		},
		"unknown portal state ignored": {
			open:     map[string]bool{"no-such-door": true},
			expCount: 2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			blockers := g.EffectiveBlockers(tt.open)
			testutil.AssertEqual(t, "blocker count", len(blockers), tt.expCount)
		})
	}
}

func TestNewGeometryStore_DropsDegenerateWalls(t *testing.T) {
	m := validMap()
	m.Walls = append(m.Walls, geom.Segment{
		A: geom.Point{X: 7, Y: 7},
		B: geom.Point{X: 7, Y: 7},
	})

	g := NewGeometryStore(m)

	testutil.AssertEqual(t, "wall count", len(g.Walls()), 1)
	testutil.AssertEqual(t, "portal count", len(g.Portals()), 1)
}

package light

import (
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/pixil98/go-vtt/internal/geom"
)

func TestClassify(t *testing.T) {
	// A single torch-like source: bright to 20, dim to 40 (map units)
	torch := Source{Pos: geom.Point{X: 10, Y: 10}, BrightRadius: 20, DimRadius: 40}

	tests := map[string]struct {
		pt      geom.Point
		ambient Illumination
		lights  []Source
		exp     Illumination
	}{
		"within bright radius": {
			pt:     geom.Point{X: 25, Y: 10}, // 15 away
			lights: []Source{torch},
			exp:    Bright,
		},
		"within dim radius": {
			pt:     geom.Point{X: 45, Y: 10}, // 35 away
			lights: []Source{torch},
			exp:    Dim,
		},
		"beyond all radii": {
			pt:     geom.Point{X: 60, Y: 10}, // 50 away
			lights: []Source{torch},
			exp:    Dark,
		},
		"no lights": {
			pt:  geom.Point{X: 0, Y: 0},
			exp: Dark,
		},
		"bright wins over dim from another source": {
			pt: geom.Point{X: 0, Y: 0},
			lights: []Source{
				{Pos: geom.Point{X: 30, Y: 0}, BrightRadius: 5, DimRadius: 40},
				{Pos: geom.Point{X: 3, Y: 0}, BrightRadius: 10, DimRadius: 20},
			},
			exp: Bright,
		},
		"ambient dim floor": {
			pt:      geom.Point{X: 500, Y: 500},
			ambient: Dim,
			lights:  []Source{torch},
			exp:     Dim,
		},
		"ambient bright floor": {
			pt:      geom.Point{X: 500, Y: 500},
			ambient: Bright,
			exp:     Bright,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "illumination", Classify(tt.pt, tt.ambient, tt.lights), tt.exp)
		})
	}
}

func TestIllumination_String(t *testing.T) {
	testutil.AssertEqual(t, "bright", Bright.String(), "bright")
	testutil.AssertEqual(t, "dim", Dim.String(), "dim")
	testutil.AssertEqual(t, "dark", Dark.String(), "dark")
}

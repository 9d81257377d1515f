package geom

import (
	"math"
	"testing"

	"github.com/pixil98/go-testutil"
)

func square(size float64) Polygon {
	return Polygon{
		{X: 0, Y: 0},
		{X: size, Y: 0},
		{X: size, Y: size},
		{X: 0, Y: size},
	}
}

func TestPolygon_Contains(t *testing.T) {
	pg := square(10)

	tests := map[string]struct {
		pt  Point
		exp bool
	}{
		"center":          {Point{X: 5, Y: 5}, true},
		"outside right":   {Point{X: 11, Y: 5}, false},
		"outside above":   {Point{X: 5, Y: 11}, false},
		"on edge":         {Point{X: 10, Y: 5}, true},
		"on vertex":       {Point{X: 0, Y: 0}, true},
		"far outside":     {Point{X: -100, Y: -100}, false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "contains", pg.Contains(tt.pt), tt.exp)
		})
	}
}

func TestPolygon_Area(t *testing.T) {
	testutil.AssertEqual(t, "square", square(10).Area(), 100.0)
	testutil.AssertEqual(t, "degenerate", Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}.Area(), 0.0)

	triangle := Polygon{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}
	if math.Abs(triangle.Area()-6) > 1e-9 {
		t.Errorf("triangle area %v, expected 6", triangle.Area())
	}
}

func TestPolygon_IsSimple(t *testing.T) {
	testutil.AssertEqual(t, "square", square(10).IsSimple(), true)

	bowtie := Polygon{
		{X: 0, Y: 0},
		{X: 10, Y: 10},
		{X: 10, Y: 0},
		{X: 0, Y: 10},
	}
	testutil.AssertEqual(t, "bowtie", bowtie.IsSimple(), false)
}

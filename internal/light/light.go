// Package light classifies illumination and decides what an observer's vision
// can actually perceive, following 5e lighting rules.
package light

import "github.com/pixil98/go-vtt/internal/geom"

// Illumination is the light level at a point.
type Illumination int

const (
	Dark Illumination = iota
	Dim
	Bright
)

func (i Illumination) String() string {
	switch i {
	case Bright:
		return "bright"
	case Dim:
		return "dim"
	default:
		return "dark"
	}
}

// Source is an active light in map units, ready for classification. Radii are
// measured from Pos; the dim radius always contains the bright radius.
type Source struct {
	Pos          geom.Point
	BrightRadius float64
	DimRadius    float64
}

// Classify returns the illumination at p: the brightest tier contributed by
// any source whose radius reaches p, floored at ambient. Bright from one
// source wins over dim from another.
func Classify(p geom.Point, ambient Illumination, lights []Source) Illumination {
	level := ambient
	for _, l := range lights {
		if level == Bright {
			break
		}
		d := p.Dist(l.Pos)
		switch {
		case d <= l.BrightRadius:
			level = Bright
		case d <= l.DimRadius && level < Dim:
			level = Dim
		}
	}
	return level
}

// Package sight computes visibility polygons by raycasting against blocking
// segments. All distances are in map units; callers convert feet beforehand.
package sight

import (
	"math"
	"sort"

	"github.com/pixil98/go-vtt/internal/geom"
)

const (
	// DefaultEpsilon is the angular offset of the two flanking rays cast at
	// each endpoint. It resolves the visibility discontinuity at corners
	// without the primary ray numerically straddling the endpoint.
	DefaultEpsilon = 1e-4

	// mergeTol merges hit points closer than this when closing the polygon.
	mergeTol = 1e-6
)

// Builder computes visibility polygons.
type Builder struct {
	eps float64
}

// NewBuilder creates a Builder with default settings.
func NewBuilder(opts ...BuilderOpt) *Builder {
	b := &Builder{
		eps: DefaultEpsilon,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type hit struct {
	pt    geom.Point
	angle float64
	dist  float64
}

// Compute returns the visibility polygon around observer, capped at rng map
// units, against the given blocking segments. The result is an ordered closed
// ring, simple and star-shaped with respect to the observer, and is
// deterministic for a fixed input.
func (b *Builder) Compute(observer geom.Point, rng float64, blockers []geom.Segment) geom.Polygon {
	segs := geom.NormalizeSegments(observer, blockers)

	angles := b.targetAngles(observer, rng, segs)

	hits := make([]hit, 0, len(angles))
	for _, a := range angles {
		ray := geom.Ray{Origin: observer, Angle: a}
		t := nearest(ray, rng, segs)
		p := ray.At(t)
		hits = append(hits, hit{pt: p, angle: a, dist: t})
	}

	// Order around the observer; nearer first on angular ties so the polygon
	// hugs the corner before jumping past it.
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].angle != hits[j].angle {
			return hits[i].angle < hits[j].angle
		}
		return hits[i].dist < hits[j].dist
	})

	poly := make(geom.Polygon, 0, len(hits))
	for _, h := range hits {
		if n := len(poly); n > 0 && poly[n-1].Near(h.pt, mergeTol) {
			continue
		}
		poly = append(poly, h.pt)
	}
	if n := len(poly); n > 1 && poly[0].Near(poly[n-1], mergeTol) {
		poly = poly[:n-1]
	}
	return poly
}

// targetAngles collects the angles to cast: three per blocker endpoint within
// range, plus the corners of the range bounding box so the polygon always has
// full angular coverage even with no geometry nearby.
func (b *Builder) targetAngles(observer geom.Point, rng float64, segs []geom.Segment) []float64 {
	pts := make([]geom.Point, 0, len(segs)*2+4)
	for _, s := range segs {
		if observer.Dist(s.A) <= rng {
			pts = append(pts, s.A)
		}
		if observer.Dist(s.B) <= rng {
			pts = append(pts, s.B)
		}
	}
	pts = append(pts,
		geom.Point{X: observer.X - rng, Y: observer.Y - rng},
		geom.Point{X: observer.X + rng, Y: observer.Y - rng},
		geom.Point{X: observer.X + rng, Y: observer.Y + rng},
		geom.Point{X: observer.X - rng, Y: observer.Y + rng},
	)

	angles := make([]float64, 0, len(pts)*3)
	seen := make(map[float64]struct{}, len(pts))
	for _, p := range pts {
		a := observer.AngleTo(p)
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		angles = append(angles, a-b.eps, a, a+b.eps)
	}
	return angles
}

// nearest returns the distance to the closest blocker along ray, capped at rng.
func nearest(ray geom.Ray, rng float64, segs []geom.Segment) float64 {
	best := rng
	for _, s := range segs {
		if t, ok := ray.Intersect(s); ok && t < best {
			best = t
		}
	}
	return best
}

// EpsilonForGeometry derives a corner epsilon from the shortest blocking
// segment: small enough that flanking rays at maximum range stay within a
// fraction of that segment. Falls back to DefaultEpsilon for empty or
// degenerate input.
func EpsilonForGeometry(rng float64, segs []geom.Segment) float64 {
	minLen := math.Inf(1)
	for _, s := range segs {
		if s.IsZero() {
			continue
		}
		if l := s.Length(); l < minLen {
			minLen = l
		}
	}
	if math.IsInf(minLen, 1) || rng <= 0 {
		return DefaultEpsilon
	}
	eps := minLen / (4 * rng)
	if eps > DefaultEpsilon {
		eps = DefaultEpsilon
	}
	if eps < 1e-7 {
		eps = 1e-7
	}
	return eps
}

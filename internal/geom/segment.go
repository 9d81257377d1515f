package geom

import "math"

// coincidenceTol is the distance below which a point is treated as lying on a
// segment. Map units are pixels, so a fraction of a pixel is safe.
const coincidenceTol = 1e-6

// Segment is a wall segment between two endpoints.
type Segment struct {
	A Point `json:"a"`
	B Point `json:"b"`
}

// Length returns the segment's length.
func (s Segment) Length() float64 {
	return s.A.Dist(s.B)
}

// IsZero reports whether the segment has (effectively) coincident endpoints.
func (s Segment) IsZero() bool {
	return s.Length() <= coincidenceTol
}

// Contains reports whether p lies on the segment, within tolerance.
func (s Segment) Contains(p Point) bool {
	d := s.A.Dist(p) + p.Dist(s.B) - s.Length()
	return math.Abs(d) <= coincidenceTol
}

// Ray is a half-line from an origin in a direction.
type Ray struct {
	Origin Point
	Angle  float64
}

// Dir returns the ray's unit direction vector.
func (r Ray) Dir() Point {
	return Point{X: math.Cos(r.Angle), Y: math.Sin(r.Angle)}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) Point {
	return r.Origin.Add(r.Dir().Scale(t))
}

// Intersect returns the distance along the ray at which it crosses s, and
// whether it crosses at all. Crossings behind the origin do not count.
func (r Ray) Intersect(s Segment) (float64, bool) {
	d := r.Dir()
	ex := s.B.X - s.A.X
	ey := s.B.Y - s.A.Y

	denom := d.X*ey - d.Y*ex
	if math.Abs(denom) < 1e-12 {
		// Parallel. A collinear segment contributes its endpoints as ray
		// targets elsewhere, so no hit is reported here.
		return 0, false
	}

	// Solve origin + t*d = A + u*(B-A).
	ax := s.A.X - r.Origin.X
	ay := s.A.Y - r.Origin.Y
	t := (ax*ey - ay*ex) / denom
	u := (ax*d.Y - ay*d.X) / denom

	if t < coincidenceTol || u < -coincidenceTol || u > 1+coincidenceTol {
		return 0, false
	}
	return t, true
}

// NormalizeSegments drops zero-length segments and any segment the observer
// sits on. A visibility pass must always produce some polygon, so degenerate
// input is cleaned up rather than rejected.
func NormalizeSegments(observer Point, segs []Segment) []Segment {
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if s.IsZero() {
			continue
		}
		if s.Contains(observer) {
			continue
		}
		out = append(out, s)
	}
	return out
}

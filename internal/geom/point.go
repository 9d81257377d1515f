package geom

import "math"

// Point is a position in map units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Dist returns the euclidean distance between p and o.
func (p Point) Dist(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// AngleTo returns the angle of the vector from p to o, in radians.
func (p Point) AngleTo(o Point) float64 {
	return math.Atan2(o.Y-p.Y, o.X-p.X)
}

// Near reports whether p and o are within tol of each other.
func (p Point) Near(o Point, tol float64) bool {
	return p.Dist(o) <= tol
}

package geom

// Polygon is an ordered closed ring of points. The closing edge from the last
// point back to the first is implicit.
type Polygon []Point

// Contains reports whether p is inside the polygon, using the even-odd
// crossing rule. Points on an edge count as inside.
func (pg Polygon) Contains(p Point) bool {
	n := len(pg)
	if n < 3 {
		return false
	}

	for i := 0; i < n; i++ {
		if (Segment{A: pg[i], B: pg[(i+1)%n]}).Contains(p) {
			return true
		}
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := pg[i], pg[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			x := pi.X + (p.Y-pi.Y)/(pj.Y-pi.Y)*(pj.X-pi.X)
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Area returns the polygon's area via the shoelace formula.
func (pg Polygon) Area() float64 {
	n := len(pg)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a, b := pg[i], pg[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

// IsSimple reports whether no two non-adjacent edges intersect. O(n^2); used
// by tests, not per-frame.
func (pg Polygon) IsSimple() bool {
	n := len(pg)
	if n < 3 {
		return true
	}
	edges := make([]Segment, n)
	for i := 0; i < n; i++ {
		edges[i] = Segment{A: pg[i], B: pg[(i+1)%n]}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// Skip adjacent edges (including the wrap-around pair).
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			if segmentsCross(edges[i], edges[j]) {
				return false
			}
		}
	}
	return true
}

func segmentsCross(a, b Segment) bool {
	d1 := cross(b.A, b.B, a.A)
	d2 := cross(b.A, b.B, a.B)
	d3 := cross(a.A, a.B, b.A)
	d4 := cross(a.A, a.B, b.B)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

package sight

type BuilderOpt func(*Builder)

// WithEpsilon sets the angular offset used for corner-flanking rays. The right
// value is scale dependent; EpsilonForGeometry derives one from the map.
func WithEpsilon(eps float64) BuilderOpt {
	return func(b *Builder) {
		if eps > 0 {
			b.eps = eps
		}
	}
}

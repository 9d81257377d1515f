package display

type SynchronizerOpt func(*Synchronizer)

// WithSurfaceHooks installs callbacks run when the surface opens and closes,
// typically to create and destroy the host window. The open hook's error is
// surfaced through Open.
func WithSurfaceHooks(open func() error, close func()) SynchronizerOpt {
	return func(s *Synchronizer) {
		s.openFn = open
		s.closeFn = close
	}
}

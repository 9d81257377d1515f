package display

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Publisher sends a payload to a subject. The embedded NATS bus implements it
// in production; tests use an in-memory fake.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Synchronizer is the authoritative side of one secondary surface. It walks
// Closed -> Open -> Closed; while open, pushes go out fire-and-forget, and
// while closed every push is a silent no-op (dropped, not buffered). After
// reopening, the caller is responsible for resending full state.
type Synchronizer struct {
	mu      sync.Mutex
	pub     Publisher
	surface string
	open    bool

	openFn  func() error
	closeFn func()
}

// NewSynchronizer creates a synchronizer for the named surface.
func NewSynchronizer(pub Publisher, surface string, opts ...SynchronizerOpt) *Synchronizer {
	s := &Synchronizer{
		pub:     pub,
		surface: surface,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates the secondary surface. No-op if already open. A host refusal
// to open is reported once to the caller and leaves the synchronizer closed;
// it is not retried.
func (s *Synchronizer) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return nil
	}
	if s.openFn != nil {
		if err := s.openFn(); err != nil {
			return fmt.Errorf("opening display surface %s: %w", s.surface, err)
		}
	}
	s.open = true
	return nil
}

// Close destroys the secondary surface. No-op if already closed. In-flight
// pushes are not cancelled; anything pushed after Close is dropped.
func (s *Synchronizer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return
	}
	s.open = false
	if s.closeFn != nil {
		s.closeFn()
	}
}

// IsOpen reports whether the surface is open.
func (s *Synchronizer) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// PushMap sends a map update.
func (s *Synchronizer) PushMap(u MapUpdate) error {
	return s.push(EventMap, u)
}

// PushViewport sends a viewport update.
func (s *Synchronizer) PushViewport(u ViewportUpdate) error {
	return s.push(EventViewport, u)
}

// PushTokens sends a token/fog update.
func (s *Synchronizer) PushTokens(u TokenOrFogUpdate) error {
	return s.push(EventTokens, u)
}

// PushBlackout sends a blackout update.
func (s *Synchronizer) PushBlackout(u BlackoutUpdate) error {
	return s.push(EventBlackout, u)
}

func (s *Synchronizer) push(t EventType, v any) error {
	s.mu.Lock()
	open := s.open
	s.mu.Unlock()

	if !open {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshalling %s update: %w", t, err)
	}
	return s.pub.Publish(Subject(s.surface, t), data)
}

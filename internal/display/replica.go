package display

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

// Subscriber provides the ability to subscribe to bus subjects.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (unsubscribe func(), err error)
}

// DisplayState is what a player surface currently shows. The authoritative
// copy lives on the DM side; this replica is eventually consistent with the
// last event received per type.
type DisplayState struct {
	Map      *MapUpdate
	Viewport *ViewportUpdate
	Tokens   *TokenOrFogUpdate
	Blackout bool
}

// Replica is the player-surface side of the synchronizer: a pure read
// replica rebuilt from pushed events. It never writes back.
type Replica struct {
	mu     sync.RWMutex
	state  DisplayState
	unsubs []func()
}

// NewReplica subscribes to all four event channels of the given surface.
func NewReplica(sub Subscriber, surface string) (*Replica, error) {
	r := &Replica{}

	for _, t := range EventTypes() {
		t := t
		unsub, err := sub.Subscribe(Subject(surface, t), func(data []byte) {
			r.apply(t, data)
		})
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("subscribing %s: %w", t, err)
		}
		r.unsubs = append(r.unsubs, unsub)
	}

	return r, nil
}

// State returns a copy of the current displayed state.
func (r *Replica) State() DisplayState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Close drops all subscriptions.
func (r *Replica) Close() {
	for _, unsub := range r.unsubs {
		unsub()
	}
	r.unsubs = nil
}

// apply is last-write-wins per event type. A payload that fails to decode is
// dropped; the display keeps showing the previous state for that type.
func (r *Replica) apply(t EventType, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	switch t {
	case EventMap:
		u := &MapUpdate{}
		if err = json.Unmarshal(data, u); err == nil {
			r.state.Map = u
		}
	case EventViewport:
		u := &ViewportUpdate{}
		if err = json.Unmarshal(data, u); err == nil {
			r.state.Viewport = u
		}
	case EventTokens:
		u := &TokenOrFogUpdate{}
		if err = json.Unmarshal(data, u); err == nil {
			r.state.Tokens = u
		}
	case EventBlackout:
		u := &BlackoutUpdate{}
		if err = json.Unmarshal(data, u); err == nil {
			r.state.Blackout = u.IsBlackout
		}
	}
	if err != nil {
		slog.Warn("dropping undecodable display event", "type", string(t), "error", err)
	}
}

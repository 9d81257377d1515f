// Package director is the authoritative (DM) surface glue: every runtime
// mutation enters here, triggers one on-demand recomputation of the affected
// observers, and pushes the result to the secondary surfaces. There is no
// background recomputation; dragging a token calls MoveToken once per change.
package director

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-vtt/internal/display"
	"github.com/pixil98/go-vtt/internal/scene"
	"github.com/pixil98/go-vtt/internal/session"
	"github.com/pixil98/go-vtt/internal/sight"
)

// Director drives one open map session and its player surfaces. It keeps the
// authoritative viewport and blackout flag, so a surface reopened mid-session
// is resent exactly what the others are showing.
type Director struct {
	state   *session.State
	builder *sight.Builder
	syncs   []*display.Synchronizer

	mu       sync.Mutex
	viewport display.ViewportUpdate
	blackout bool
}

func New(state *session.State, builder *sight.Builder, syncs ...*display.Synchronizer) *Director {
	return &Director{
		state:    state,
		builder:  builder,
		syncs:    syncs,
		viewport: display.ViewportUpdate{Zoom: 1},
	}
}

// State returns the session state, for read access by other surfaces.
func (d *Director) State() *session.State {
	return d.state
}

// Start opens every player surface, sends it full state, and keeps them open
// until the context ends. Surfaces that refuse to open are reported and
// skipped, not retried.
func (d *Director) Start(ctx context.Context) error {
	for _, s := range d.syncs {
		if err := s.Open(); err != nil {
			slog.WarnContext(ctx, "opening player surface", "error", err)
			continue
		}
	}

	// The bus worker starts concurrently; retry the initial push until it is
	// accepting publishes.
	for i := 0; i < 25; i++ {
		err := d.PushFullState()
		if err == nil {
			break
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(200 * time.Millisecond):
		}
		if i == 24 {
			slog.WarnContext(ctx, "initial display push failed", "error", err)
		}
	}

	<-ctx.Done()

	for _, s := range d.syncs {
		s.Close()
	}
	return nil
}

// PushFullState resends everything a freshly opened surface needs: the map,
// the current viewport, the current token frame, and the blackout flag.
func (d *Director) PushFullState() error {
	m := d.state.Map()

	d.mu.Lock()
	viewport := d.viewport
	blackout := d.blackout
	d.mu.Unlock()

	el := errors.NewErrorList()
	el.Add(d.pushAll(func(s *display.Synchronizer) error {
		return s.PushMap(display.MapUpdate{
			ImageRef:   m.ImageRef,
			GridType:   m.GridType,
			GridSizePx: m.Scale.PixelsPerGrid,
			WidthPx:    m.WidthPx,
			HeightPx:   m.HeightPx,
		})
	}))
	el.Add(d.pushAll(func(s *display.Synchronizer) error {
		return s.PushViewport(viewport)
	}))
	el.Add(d.pushTokens())
	el.Add(d.pushAll(func(s *display.Synchronizer) error {
		return s.PushBlackout(display.BlackoutUpdate{IsBlackout: blackout})
	}))
	return el.Err()
}

// MoveToken moves a token and republishes the player frame.
func (d *Director) MoveToken(id string, x, y float64) error {
	if err := d.state.MoveToken(id, x, y); err != nil {
		return err
	}
	return d.pushTokens()
}

// ToggleDead flips a token's dead flag and republishes the player frame.
func (d *Director) ToggleDead(id string) error {
	if err := d.state.ToggleDead(id); err != nil {
		return err
	}
	return d.pushTokens()
}

// ToggleVisibleToPlayers flips a token's player visibility and republishes.
func (d *Director) ToggleVisibleToPlayers(id string) error {
	if err := d.state.ToggleVisibleToPlayers(id); err != nil {
		return err
	}
	return d.pushTokens()
}

// ToggleLight flips a token's carried light and republishes.
func (d *Director) ToggleLight(id string) error {
	if err := d.state.ToggleLight(id); err != nil {
		return err
	}
	return d.pushTokens()
}

// SetPortalOpen opens or closes a portal and republishes.
func (d *Director) SetPortalOpen(portalId string, open bool) error {
	if err := d.state.SetPortalOpen(portalId, open); err != nil {
		return err
	}
	return d.pushTokens()
}

// AddLight places a runtime light and republishes.
func (d *Director) AddLight(l scene.LightSpec) (string, error) {
	id, err := d.state.AddLight(l)
	if err != nil {
		return "", err
	}
	return id, d.pushTokens()
}

// RemoveLight removes a light and republishes.
func (d *Director) RemoveLight(id string) error {
	if err := d.state.RemoveLight(id); err != nil {
		return err
	}
	return d.pushTokens()
}

// ResetToBaseline resets the session to starting positions and republishes.
func (d *Director) ResetToBaseline() error {
	d.state.ResetToBaseline()
	return d.pushTokens()
}

// SetViewport records and pushes a viewport change to the player surfaces.
func (d *Director) SetViewport(x, y, zoom float64) error {
	d.mu.Lock()
	d.viewport = display.ViewportUpdate{X: x, Y: y, Zoom: zoom}
	viewport := d.viewport
	d.mu.Unlock()

	return d.pushAll(func(s *display.Synchronizer) error {
		return s.PushViewport(viewport)
	})
}

// SetBlackout records and pushes the blackout flag to the player surfaces.
func (d *Director) SetBlackout(on bool) error {
	d.mu.Lock()
	d.blackout = on
	d.mu.Unlock()

	return d.pushAll(func(s *display.Synchronizer) error {
		return s.PushBlackout(display.BlackoutUpdate{IsBlackout: on})
	})
}

func (d *Director) pushTokens() error {
	frame, err := d.state.PlayerFrame(d.builder)
	if err != nil {
		return err
	}
	return d.pushAll(func(s *display.Synchronizer) error {
		return s.PushTokens(display.TokenOrFogUpdate{Frame: *frame})
	})
}

func (d *Director) pushAll(fn func(*display.Synchronizer) error) error {
	el := errors.NewErrorList()
	for _, s := range d.syncs {
		el.Add(fn(s))
	}
	return el.Err()
}

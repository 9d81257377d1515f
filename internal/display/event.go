// Package display synchronizes the authoritative DM surface with secondary
// player surfaces. Events are fire-and-forget and last-write-wins per event
// type: delivery order is guaranteed within a type, not across types, and
// there is no acknowledgement or backpressure from the player side.
package display

import (
	"fmt"

	"github.com/pixil98/go-vtt/internal/session"
)

// EventType identifies one of the four update channels.
type EventType string

const (
	EventMap      EventType = "map"
	EventViewport EventType = "viewport"
	EventTokens   EventType = "tokens"
	EventBlackout EventType = "blackout"
)

// EventTypes lists every channel, for subscription setup.
func EventTypes() []EventType {
	return []EventType{EventMap, EventViewport, EventTokens, EventBlackout}
}

// Subject returns the bus subject for a surface and event type.
func Subject(surface string, t EventType) string {
	return fmt.Sprintf("display.%s.%s", surface, t)
}

// MapUpdate replaces the displayed map.
type MapUpdate struct {
	ImageRef   string  `json:"image_ref"`
	GridType   string  `json:"grid_type"`
	GridSizePx float64 `json:"grid_size_px"`
	WidthPx    float64 `json:"width_px"`
	HeightPx   float64 `json:"height_px"`
}

// ViewportUpdate replaces the displayed viewport.
type ViewportUpdate struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

// TokenOrFogUpdate replaces the displayed tokens and fog clip.
type TokenOrFogUpdate struct {
	Frame session.Frame `json:"frame"`
}

// BlackoutUpdate turns the player display black without disturbing the rest
// of the displayed state, so lifting the blackout restores it.
type BlackoutUpdate struct {
	IsBlackout bool `json:"is_blackout"`
}

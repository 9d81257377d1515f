// Package session holds the ephemeral play-session state for an open map: an
// overlay of current token positions, flags, lights, and portal states layered
// over the persisted baseline. The overlay is created empty on map open,
// mutated by the DM surface during play, and discarded on map close; the
// baseline is never touched, so a reset is always lossless.
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pixil98/go-vtt/internal/geom"
	"github.com/pixil98/go-vtt/internal/light"
	"github.com/pixil98/go-vtt/internal/scene"
)

// TokenView is a token's effective current state: baseline merged with any
// overlay entries, overlay winning where present.
type TokenView struct {
	Id               string          `json:"id"`
	Name             string          `json:"name"`
	Kind             scene.TokenKind `json:"kind"`
	Size             scene.TokenSize `json:"size"`
	Pos              geom.Point      `json:"pos"`
	Dead             bool            `json:"dead"`
	VisibleToPlayers bool            `json:"visible_to_players"`
	LightOn          bool            `json:"light_on"`

	profile *light.VisionProfile
}

// Profile returns the token's vision profile, or nil for tokens without one
// (traps, markers).
func (v *TokenView) Profile() *light.VisionProfile {
	return v.profile
}

// tokenOverlay holds the runtime-only deltas for one token. Fields are
// pointers so presence is distinguishable from a zero value.
type tokenOverlay struct {
	pos     *geom.Point
	dead    *bool
	visible *bool
	lightOn *bool
}

func (o *tokenOverlay) empty() bool {
	return o.pos == nil && o.dead == nil && o.visible == nil && o.lightOn == nil
}

// State is the runtime state store for one open map. The DM surface is the
// only writer; the lock guards reads from listener goroutines.
type State struct {
	mu sync.RWMutex

	m   *scene.Map
	geo *scene.GeometryStore

	baseline map[string]*scene.TokenSpec
	order    []string

	overlay       map[string]*tokenOverlay
	portalsOpen   map[string]bool
	extraLights   map[string]*scene.LightSpec
	removedLights map[string]bool
}

// New creates an empty session over a loaded map. The map must already be
// validated and resolved.
func New(m *scene.Map) *State {
	baseline := make(map[string]*scene.TokenSpec, len(m.Tokens))
	order := make([]string, 0, len(m.Tokens))
	for i := range m.Tokens {
		t := &m.Tokens[i]
		baseline[t.Id] = t
		order = append(order, t.Id)
	}
	return &State{
		m:             m,
		geo:           scene.NewGeometryStore(m),
		baseline:      baseline,
		order:         order,
		overlay:       map[string]*tokenOverlay{},
		portalsOpen:   map[string]bool{},
		extraLights:   map[string]*scene.LightSpec{},
		removedLights: map[string]bool{},
	}
}

// Map returns the session's map.
func (s *State) Map() *scene.Map {
	return s.m
}

// Geometry returns the session's geometry store.
func (s *State) Geometry() *scene.GeometryStore {
	return s.geo
}

// MoveToken updates a token's current position. The baseline position is
// untouched.
func (s *State) MoveToken(id string, x, y float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.baseline[id]; !ok {
		return ErrTokenNotFound
	}
	s.ensureOverlay(id).pos = &geom.Point{X: x, Y: y}
	return nil
}

// ToggleDead flips a token's dead flag.
func (s *State) ToggleDead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.baseline[id]; !ok {
		return ErrTokenNotFound
	}
	o := s.ensureOverlay(id)
	cur := false
	if o.dead != nil {
		cur = *o.dead
	}
	next := !cur
	o.dead = &next
	return nil
}

// ToggleVisibleToPlayers flips whether the token appears on player displays.
func (s *State) ToggleVisibleToPlayers(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.baseline[id]
	if !ok {
		return ErrTokenNotFound
	}
	o := s.ensureOverlay(id)
	cur := t.VisibleToPlayers
	if o.visible != nil {
		cur = *o.visible
	}
	next := !cur
	o.visible = &next
	return nil
}

// ToggleLight flips the token's carried light on or off.
func (s *State) ToggleLight(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.baseline[id]
	if !ok {
		return ErrTokenNotFound
	}
	o := s.ensureOverlay(id)
	cur := baselineLightOn(t)
	if o.lightOn != nil {
		cur = *o.lightOn
	}
	next := !cur
	o.lightOn = &next
	return nil
}

// SetPortalOpen records a portal's runtime open/closed state. A portal with
// no recorded state is closed.
func (s *State) SetPortalOpen(portalId string, open bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, p := range s.geo.Portals() {
		if p.Id == portalId {
			found = true
			break
		}
	}
	if !found {
		return ErrPortalNotFound
	}

	s.portalsOpen[portalId] = open
	return nil
}

// AddLight places a runtime light source and returns its generated id.
func (s *State) AddLight(l scene.LightSpec) (string, error) {
	if err := validateRuntimeLight(&l); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	l.Id = uuid.NewString()
	s.extraLights[l.Id] = &l
	return l.Id, nil
}

// RemoveLight removes a runtime light, or suppresses a baseline light for the
// rest of the session.
func (s *State) RemoveLight(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.extraLights[id]; ok {
		delete(s.extraLights, id)
		return nil
	}
	for _, l := range s.m.Lights {
		if l.Id == id {
			s.removedLights[id] = true
			return nil
		}
	}
	return ErrLightNotFound
}

// Current returns the token's effective state.
func (s *State) Current(id string) (*TokenView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.baseline[id]
	if !ok {
		return nil, ErrTokenNotFound
	}
	return s.view(t), nil
}

// Tokens returns the effective state of every token, in authoring order.
func (s *State) Tokens() []*TokenView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*TokenView, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.view(s.baseline[id]))
	}
	return out
}

// PortalStates returns a copy of the runtime portal open/closed map.
func (s *State) PortalStates() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]bool, len(s.portalsOpen))
	for id, open := range s.portalsOpen {
		out[id] = open
	}
	return out
}

// ResetToBaseline discards every overlay entry, portal state, and runtime
// light, returning the session to the persisted starting positions.
// Idempotent.
func (s *State) ResetToBaseline() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.overlay = map[string]*tokenOverlay{}
	s.portalsOpen = map[string]bool{}
	s.extraLights = map[string]*scene.LightSpec{}
	s.removedLights = map[string]bool{}
}

// ActiveLights returns every light currently shedding light, with attached
// lights tracking their token's current position and carried token lights
// included for tokens whose light is on. Radii are in feet.
func (s *State) ActiveLights() []scene.LightSpec {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]scene.LightSpec, 0, len(s.m.Lights)+len(s.extraLights))
	add := func(l scene.LightSpec) {
		if l.AttachedTokenId != "" {
			if t, ok := s.baseline[l.AttachedTokenId]; ok {
				l.Pos = s.view(t).Pos
			}
		}
		out = append(out, l)
	}

	for _, l := range s.m.Lights {
		if s.removedLights[l.Id] {
			continue
		}
		add(l)
	}
	for _, l := range s.extraLights {
		add(*l)
	}

	for _, id := range s.order {
		v := s.view(s.baseline[id])
		if !v.LightOn || v.profile == nil || v.profile.LightRadiusFt <= 0 {
			continue
		}
		out = append(out, scene.LightSpec{
			Id:             "token-light-" + id,
			Pos:            v.Pos,
			BrightRadiusFt: v.profile.LightRadiusFt,
			DimRadiusFt:    light.DimRadiusFor(v.profile.LightRadiusFt),
		})
	}

	return out
}

// view merges a baseline token with its overlay. Caller holds the lock.
func (s *State) view(t *scene.TokenSpec) *TokenView {
	v := &TokenView{
		Id:               t.Id,
		Name:             t.Name,
		Kind:             t.Kind,
		Size:             t.Size,
		Pos:              t.Pos,
		VisibleToPlayers: t.VisibleToPlayers,
		LightOn:          baselineLightOn(t),
		profile:          t.Profile.Get(),
	}

	o, ok := s.overlay[t.Id]
	if !ok {
		return v
	}
	if o.pos != nil {
		v.Pos = *o.pos
	}
	if o.dead != nil {
		v.Dead = *o.dead
	}
	if o.visible != nil {
		v.VisibleToPlayers = *o.visible
	}
	if o.lightOn != nil {
		v.LightOn = *o.lightOn
	}
	return v
}

func (s *State) ensureOverlay(id string) *tokenOverlay {
	o, ok := s.overlay[id]
	if !ok {
		o = &tokenOverlay{}
		s.overlay[id] = o
	}
	return o
}

// baselineLightOn reports whether a token starts the session with its carried
// light lit: any token authored with a light radius is assumed to be holding
// it lit.
func baselineLightOn(t *scene.TokenSpec) bool {
	p := t.Profile.Get()
	return p != nil && p.LightRadiusFt > 0
}

func validateRuntimeLight(l *scene.LightSpec) error {
	// Runtime lights get generated ids, so only the radii invariant applies.
	tmp := *l
	tmp.Id = "pending"
	return tmp.Validate()
}

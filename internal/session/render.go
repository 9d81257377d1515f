package session

import (
	"github.com/pixil98/go-vtt/internal/geom"
	"github.com/pixil98/go-vtt/internal/light"
	"github.com/pixil98/go-vtt/internal/scene"
	"github.com/pixil98/go-vtt/internal/sight"
)

// View is the rendered visible region for one observer: its visibility
// polygon plus the lighting context needed to decide perception point by
// point. Views are recomputed on demand after each relevant state change and
// never persisted.
type View struct {
	Observer *TokenView
	Polygon  geom.Polygon

	ambient light.Illumination
	lights  []light.Source
	scale   scene.Scale
}

// RenderObserver computes the view for one token. The polygon range is the
// observer's maximum perceivable distance, capped at the map diagonal for
// profiles with an unlimited tier.
func (s *State) RenderObserver(id string, b *sight.Builder) (*View, error) {
	obs, err := s.Current(id)
	if err != nil {
		return nil, err
	}
	if obs.Profile() == nil {
		return nil, ErrNoVision
	}

	scale := s.m.Scale

	rng := s.m.Diagonal()
	if ft, ok := obs.Profile().MaxRangeFt(); ok {
		if u := scale.FeetToUnits(ft); u < rng {
			rng = u
		}
	}

	blockers := s.geo.EffectiveBlockers(s.PortalStates())
	poly := b.Compute(obs.Pos, rng, blockers)

	lights := make([]light.Source, 0)
	for _, l := range s.ActiveLights() {
		lights = append(lights, light.Source{
			Pos:          l.Pos,
			BrightRadius: scale.FeetToUnits(l.BrightRadiusFt),
			DimRadius:    scale.FeetToUnits(l.DimRadiusFt),
		})
	}

	return &View{
		Observer: obs,
		Polygon:  poly,
		ambient:  s.m.AmbientLevel(),
		lights:   lights,
		scale:    scale,
	}, nil
}

// Illumination classifies the light level at a point in map units.
func (v *View) Illumination(p geom.Point) light.Illumination {
	return light.Classify(p, v.ambient, v.lights)
}

// Perceivable reports whether the observer actually sees the point: it must
// be inside the visibility polygon and the observer's vision profile must
// cover it at its illumination level.
func (v *View) Perceivable(p geom.Point) bool {
	if !v.Polygon.Contains(p) {
		return false
	}
	distFt := v.scale.UnitsToFeet(p.Dist(v.Observer.Pos))
	return v.Observer.Profile().Perceives(v.Illumination(p), distFt)
}

// Frame is the player-facing composition: every token the players should see
// plus the fog clip polygons, one per observing party member.
type Frame struct {
	Tokens []*TokenView   `json:"tokens"`
	Fog    []geom.Polygon `json:"fog"`
}

// PlayerFrame renders the union of all party observers: each living PC token
// with a vision profile contributes its view; a token shows up when it is
// flagged visible to players and at least one observer perceives it.
func (s *State) PlayerFrame(b *sight.Builder) (*Frame, error) {
	tokens := s.Tokens()

	views := make([]*View, 0)
	for _, t := range tokens {
		if t.Kind != scene.TokenPC || t.Dead || t.Profile() == nil {
			continue
		}
		v, err := s.RenderObserver(t.Id, b)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	frame := &Frame{}
	for _, v := range views {
		frame.Fog = append(frame.Fog, v.Polygon)
	}

	for _, t := range tokens {
		if !t.VisibleToPlayers {
			continue
		}
		seen := false
		for _, v := range views {
			if v.Observer.Id == t.Id || v.Perceivable(t.Pos) {
				seen = true
				break
			}
		}
		if seen {
			frame.Tokens = append(frame.Tokens, t)
		}
	}

	return frame, nil
}

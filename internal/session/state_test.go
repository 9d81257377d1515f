package session

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pixil98/go-testutil"
	"github.com/pixil98/go-vtt/internal/geom"
	"github.com/pixil98/go-vtt/internal/light"
	"github.com/pixil98/go-vtt/internal/scene"
	"github.com/pixil98/go-vtt/internal/storage"
)

// testMap builds a 40x40 room fixture with a south wall and a door along the
// east side. One pixel per foot keeps distances readable.
func testMap() *scene.Map {
	torchbearer := &light.VisionProfile{Name: "torchbearer", LightRadiusFt: 20}

	return &scene.Map{
		Name:     "test-room",
		ImageRef: "room.png",
		GridType: scene.GridSquare,
		Scale:    scene.Scale{PixelsPerGrid: 5},
		WidthPx:  200,
		HeightPx: 200,
		Ambient:  scene.AmbientDark,
		Walls: []geom.Segment{
			{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 40, Y: 0}},
		},
		Portals: []scene.Portal{
			{Id: "door-e", Seg: geom.Segment{A: geom.Point{X: 40, Y: 0}, B: geom.Point{X: 40, Y: 40}}},
		},
		Lights: []scene.LightSpec{
			scene.TorchLight("brazier", geom.Point{X: 100, Y: 100}),
		},
		Tokens: []scene.TokenSpec{
			{
				Id:               "hero",
				Name:             "Hero",
				Kind:             scene.TokenPC,
				Pos:              geom.Point{X: 20, Y: 20},
				Profile:          storage.NewResolvedSmartIdentifier("darkvision", light.Darkvision(60)),
				VisibleToPlayers: true,
			},
			{
				Id:               "torchbearer",
				Name:             "Torchbearer",
				Kind:             scene.TokenNPC,
				Pos:              geom.Point{X: 30, Y: 20},
				Profile:          storage.NewResolvedSmartIdentifier("torchbearer", torchbearer),
				VisibleToPlayers: true,
			},
			{
				Id:   "orc",
				Name: "Orc",
				Kind: scene.TokenMonster,
				Pos:  geom.Point{X: 50, Y: 20},
				Profile: storage.NewResolvedSmartIdentifier(
					"darkvision", light.Darkvision(60)),
				VisibleToPlayers: true,
			},
		},
	}
}

func TestState_MoveToken(t *testing.T) {
	s := New(testMap())

	if err := s.MoveToken("hero", 25, 30); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := s.Current("hero")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "x", v.Pos.X, 25.0)
	testutil.AssertEqual(t, "y", v.Pos.Y, 30.0)

	testutil.AssertEqual(t, "unknown token", s.MoveToken("nobody", 0, 0), ErrTokenNotFound, cmpopts.EquateErrors())
}

func TestState_Toggles(t *testing.T) {
	s := New(testMap())

	if err := s.ToggleDead("orc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := s.Current("orc")
	testutil.AssertEqual(t, "dead after toggle", v.Dead, true)

	if err := s.ToggleDead("orc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ = s.Current("orc")
	testutil.AssertEqual(t, "alive after second toggle", v.Dead, false)

	if err := s.ToggleVisibleToPlayers("orc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ = s.Current("orc")
	testutil.AssertEqual(t, "hidden after toggle", v.VisibleToPlayers, false)

	testutil.AssertEqual(t, "unknown token", s.ToggleDead("nobody"), ErrTokenNotFound, cmpopts.EquateErrors())
}

func TestState_ToggleLight(t *testing.T) {
	s := New(testMap())

	// The torchbearer starts with its carried light lit
	v, _ := s.Current("torchbearer")
	testutil.AssertEqual(t, "baseline light on", v.LightOn, true)

	if err := s.ToggleLight("torchbearer"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ = s.Current("torchbearer")
	testutil.AssertEqual(t, "light off after toggle", v.LightOn, false)

	// Only the brazier remains active
	lights := s.ActiveLights()
	testutil.AssertEqual(t, "active count", len(lights), 1)
	testutil.AssertEqual(t, "remaining light", lights[0].Id, "brazier")
}

func TestState_SetPortalOpen(t *testing.T) {
	s := New(testMap())

	testutil.AssertEqual(t, "no state recorded", len(s.PortalStates()), 0)

	if err := s.SetPortalOpen("door-e", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "open", s.PortalStates()["door-e"], true)

	if err := s.SetPortalOpen("door-e", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "closed again", s.PortalStates()["door-e"], false)

	testutil.AssertEqual(t, "unknown portal", s.SetPortalOpen("door-w", true), ErrPortalNotFound, cmpopts.EquateErrors())
}

func TestState_RuntimeLights(t *testing.T) {
	s := New(testMap())

	id, err := s.AddLight(scene.LightSpec{
		Pos:            geom.Point{X: 10, Y: 10},
		BrightRadiusFt: 20,
		DimRadiusFt:    40,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated light id")
	}

	// brazier + torchbearer carried light + new light
	testutil.AssertEqual(t, "active count", len(s.ActiveLights()), 3)

	if err := s.RemoveLight(id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "after remove", len(s.ActiveLights()), 2)

	// Baseline lights can be suppressed for the session
	if err := s.RemoveLight("brazier"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "after baseline remove", len(s.ActiveLights()), 1)

	testutil.AssertEqual(t, "unknown light", s.RemoveLight("no-such-light"), ErrLightNotFound, cmpopts.EquateErrors())
}

func TestState_AddLight_InvalidRadii(t *testing.T) {
	s := New(testMap())

	_, err := s.AddLight(scene.LightSpec{BrightRadiusFt: 40, DimRadiusFt: 20})
	if err == nil {
		t.Error("expected error for dim radius smaller than bright")
	}
}

func TestState_AttachedLightFollowsToken(t *testing.T) {
	m := testMap()
	m.Lights = append(m.Lights, scene.LightSpec{
		Id:              "floating-lantern",
		BrightRadiusFt:  30,
		DimRadiusFt:     60,
		AttachedTokenId: "hero",
	})
	s := New(m)

	if err := s.MoveToken("hero", 70, 80); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var found bool
	for _, l := range s.ActiveLights() {
		if l.Id == "floating-lantern" {
			found = true
			testutil.AssertEqual(t, "x", l.Pos.X, 70.0)
			testutil.AssertEqual(t, "y", l.Pos.Y, 80.0)
		}
	}
	if !found {
		t.Fatal("expected the attached light to be active")
	}
}

func TestState_ResetToBaseline(t *testing.T) {
	s := New(testMap())

	// An arbitrary pile of runtime mutations
	if err := s.MoveToken("hero", 1, 2); err != nil {
		t.Fatal(err)
	}
	if err := s.MoveToken("orc", 3, 4); err != nil {
		t.Fatal(err)
	}
	if err := s.ToggleDead("orc"); err != nil {
		t.Fatal(err)
	}
	if err := s.ToggleVisibleToPlayers("hero"); err != nil {
		t.Fatal(err)
	}
	if err := s.ToggleLight("torchbearer"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetPortalOpen("door-e", true); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddLight(scene.LightSpec{BrightRadiusFt: 5, DimRadiusFt: 10}); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveLight("brazier"); err != nil {
		t.Fatal(err)
	}

	s.ResetToBaseline()

	for _, spec := range testMap().Tokens {
		v, err := s.Current(spec.Id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testutil.AssertEqual(t, spec.Id+" pos", v.Pos, spec.Pos)
		testutil.AssertEqual(t, spec.Id+" dead", v.Dead, false)
		testutil.AssertEqual(t, spec.Id+" visible", v.VisibleToPlayers, spec.VisibleToPlayers)
	}

	testutil.AssertEqual(t, "portal states cleared", len(s.PortalStates()), 0)

	// brazier restored, runtime light gone, torch lit again
	testutil.AssertEqual(t, "active lights", len(s.ActiveLights()), 2)

	// Resetting twice is harmless
	s.ResetToBaseline()
	testutil.AssertEqual(t, "still two lights", len(s.ActiveLights()), 2)
}

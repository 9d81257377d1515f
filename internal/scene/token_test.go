package scene

import (
	"encoding/json"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestTokenKind_TextRoundTrip(t *testing.T) {
	for _, k := range []TokenKind{TokenMonster, TokenPC, TokenNPC, TokenTrap, TokenMarker} {
		data, err := json.Marshal(k)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var back TokenKind
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testutil.AssertEqual(t, k.String(), back, k)
	}

	var k TokenKind
	if err := json.Unmarshal([]byte(`"dragon"`), &k); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestTokenSize_GridSquares(t *testing.T) {
	tests := map[string]struct {
		size TokenSize
		exp  float64
	}{
		"tiny":       {SizeTiny, 0.5},
		"small":      {SizeSmall, 1},
		"medium":     {SizeMedium, 1},
		"large":      {SizeLarge, 2},
		"huge":       {SizeHuge, 3},
		"gargantuan": {SizeGargantuan, 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "squares", tt.size.GridSquares(), tt.exp)
		})
	}
}

func TestTokenSize_TextRoundTrip(t *testing.T) {
	for _, s := range []TokenSize{SizeTiny, SizeSmall, SizeMedium, SizeLarge, SizeHuge, SizeGargantuan} {
		data, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var back TokenSize
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		testutil.AssertEqual(t, s.String(), back, s)
	}
}

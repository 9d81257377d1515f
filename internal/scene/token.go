package scene

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-vtt/internal/geom"
	"github.com/pixil98/go-vtt/internal/light"
	"github.com/pixil98/go-vtt/internal/storage"
)

// TokenKind is what a token represents on the map.
type TokenKind int

const (
	TokenMonster TokenKind = iota
	TokenPC
	TokenNPC
	TokenTrap
	TokenMarker
)

func (k TokenKind) String() string {
	switch k {
	case TokenPC:
		return "pc"
	case TokenNPC:
		return "npc"
	case TokenTrap:
		return "trap"
	case TokenMarker:
		return "marker"
	default:
		return "monster"
	}
}

func (k *TokenKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "monster", "":
		*k = TokenMonster
	case "pc":
		*k = TokenPC
	case "npc":
		*k = TokenNPC
	case "trap":
		*k = TokenTrap
	case "marker":
		*k = TokenMarker
	default:
		return fmt.Errorf("unknown token kind: %s", text)
	}
	return nil
}

func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// TokenSize is a creature size category. Size affects the token's footprint
// on the grid, never the wall geometry.
type TokenSize int

const (
	SizeMedium TokenSize = iota
	SizeTiny
	SizeSmall
	SizeLarge
	SizeHuge
	SizeGargantuan
)

func (s TokenSize) String() string {
	switch s {
	case SizeTiny:
		return "tiny"
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	case SizeHuge:
		return "huge"
	case SizeGargantuan:
		return "gargantuan"
	default:
		return "medium"
	}
}

func (s *TokenSize) UnmarshalText(text []byte) error {
	switch string(text) {
	case "medium", "":
		*s = SizeMedium
	case "tiny":
		*s = SizeTiny
	case "small":
		*s = SizeSmall
	case "large":
		*s = SizeLarge
	case "huge":
		*s = SizeHuge
	case "gargantuan":
		*s = SizeGargantuan
	default:
		return fmt.Errorf("unknown token size: %s", text)
	}
	return nil
}

func (s TokenSize) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// GridSquares returns the width of the token's footprint in grid squares.
func (s TokenSize) GridSquares() float64 {
	switch s {
	case SizeTiny:
		return 0.5
	case SizeLarge:
		return 2
	case SizeHuge:
		return 3
	case SizeGargantuan:
		return 4
	default:
		return 1
	}
}

// TokenSpec is a token's persisted baseline: its starting position and flags
// as authored during setup. Play-session changes live in the session overlay
// and never write back here.
type TokenSpec struct {
	Id               string                                        `json:"id"`
	Name             string                                        `json:"name"`
	Kind             TokenKind                                     `json:"kind"`
	Size             TokenSize                                     `json:"size"`
	Pos              geom.Point                                    `json:"pos"`
	Profile          storage.SmartIdentifier[*light.VisionProfile] `json:"profile"`
	VisibleToPlayers bool                                          `json:"visible_to_players"`
}

func (t *TokenSpec) Validate() error {
	el := errors.NewErrorList()

	if t.Id == "" {
		el.Add(fmt.Errorf("id is required"))
	}
	if t.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	// Traps and markers have no vision; a profile is optional for them.
	if t.Profile.Id() == "" && (t.Kind == TokenPC || t.Kind == TokenNPC || t.Kind == TokenMonster) {
		el.Add(fmt.Errorf("profile is required for %s tokens", t.Kind))
	}

	return el.Err()
}

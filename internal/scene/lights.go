package scene

import (
	"github.com/pixil98/go-vtt/internal/geom"
	"github.com/pixil98/go-vtt/internal/light"
)

// Preset light constructors for the standard sources a DM drops on a map.

func TorchLight(id string, pos geom.Point) LightSpec {
	return LightSpec{
		Id:             id,
		Name:           "torch",
		Pos:            pos,
		BrightRadiusFt: light.TorchBrightFt,
		DimRadiusFt:    light.TorchDimFt,
	}
}

func LanternLight(id string, pos geom.Point) LightSpec {
	return LightSpec{
		Id:             id,
		Name:           "lantern",
		Pos:            pos,
		BrightRadiusFt: light.LanternBrightFt,
		DimRadiusFt:    light.LanternDimFt,
	}
}

func CandleLight(id string, pos geom.Point) LightSpec {
	return LightSpec{
		Id:             id,
		Name:           "candle",
		Pos:            pos,
		BrightRadiusFt: light.CandleBrightFt,
		DimRadiusFt:    light.CandleDimFt,
	}
}

func LightSpell(id string, pos geom.Point) LightSpec {
	return LightSpec{
		Id:             id,
		Name:           "light",
		Pos:            pos,
		BrightRadiusFt: light.LightSpellBrightFt,
		DimRadiusFt:    light.LightSpellDimFt,
	}
}

func DaylightSpell(id string, pos geom.Point) LightSpec {
	return LightSpec{
		Id:             id,
		Name:           "daylight",
		Pos:            pos,
		BrightRadiusFt: light.DaylightSpellBrightFt,
		DimRadiusFt:    light.DaylightSpellDimFt,
	}
}

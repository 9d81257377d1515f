package light

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// VisionProfile is an observer's per-tier sight ranges in feet. A nil bright
// or dim range means unlimited at that tier (still capped by geometry and the
// polygon range). DarkFt of 0 means no perception of unlit points at all;
// greater than 0 models darkvision or blindsight.
type VisionProfile struct {
	Name          string   `json:"name"`
	BrightFt      *float64 `json:"bright_ft"`
	DimFt         *float64 `json:"dim_ft"`
	DarkFt        float64  `json:"dark_ft"`
	LightRadiusFt float64  `json:"light_radius_ft"`
}

// Validate satisfies storage.ValidatingSpec.
func (p *VisionProfile) Validate() error {
	el := errors.NewErrorList()

	if p.BrightFt != nil && *p.BrightFt < 0 {
		el.Add(fmt.Errorf("bright_ft must not be negative"))
	}
	if p.DimFt != nil && *p.DimFt < 0 {
		el.Add(fmt.Errorf("dim_ft must not be negative"))
	}
	if p.DarkFt < 0 {
		el.Add(fmt.Errorf("dark_ft must not be negative"))
	}
	if p.LightRadiusFt < 0 {
		el.Add(fmt.Errorf("light_radius_ft must not be negative"))
	}

	return el.Err()
}

// Perceives reports whether an observer with this profile perceives a point
// at distFt feet under the given illumination. A lit point beyond the
// observer's range at that tier falls back to the darkness check, so a
// darkvision observer still sees a distant torch-lit corridor wall within
// DarkFt.
func (p *VisionProfile) Perceives(illum Illumination, distFt float64) bool {
	switch illum {
	case Bright:
		if p.BrightFt == nil || distFt <= *p.BrightFt {
			return true
		}
	case Dim:
		if p.DimFt == nil || distFt <= *p.DimFt {
			return true
		}
	}
	return distFt <= p.DarkFt
}

// MaxRangeFt returns the longest distance at which this profile could
// perceive anything, or ok=false when a nil tier makes it unlimited.
func (p *VisionProfile) MaxRangeFt() (ft float64, ok bool) {
	if p.BrightFt == nil || p.DimFt == nil {
		return 0, false
	}
	ft = p.DarkFt
	if *p.BrightFt > ft {
		ft = *p.BrightFt
	}
	if *p.DimFt > ft {
		ft = *p.DimFt
	}
	return ft, true
}

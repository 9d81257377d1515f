package light

// Standard light source radii in feet.
const (
	TorchBrightFt   = 20
	TorchDimFt      = 40
	LanternBrightFt = 30
	LanternDimFt    = 60
	CandleBrightFt  = 5
	CandleDimFt     = 10
	// Light and Daylight spells.
	LightSpellBrightFt     = 20
	LightSpellDimFt        = 40
	DaylightSpellBrightFt  = 60
	DaylightSpellDimFt     = 120
)

// DimRadiusFor returns the conventional dim radius for a carried light of the
// given bright radius: every standard source sheds dim light out to twice its
// bright radius.
func DimRadiusFor(brightFt float64) float64 {
	return brightFt * 2
}

// NormalVision sees at any distance in bright or dim light and nothing in
// darkness.
func NormalVision() *VisionProfile {
	return &VisionProfile{Name: "normal"}
}

// Darkvision sees unlit points out to ft feet.
func Darkvision(ft float64) *VisionProfile {
	return &VisionProfile{Name: "darkvision", DarkFt: ft}
}

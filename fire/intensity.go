package fire

import (
	"github.com/lixenwraith/embergaze/core"
	"github.com/lixenwraith/embergaze/parameter"
	"github.com/lixenwraith/embergaze/vmath"
)

// GlintFloor is the minimum reflection intensity while the source is in
// range: the glint dims with distance but never fully vanishes
const GlintFloor = 0.2

// EyeGlint is the instantaneous reflection target for one eye.
// Anchor is the eye position the renderer uses for glint angle computation.
type EyeGlint struct {
	Intensity float64
	Anchor    core.Vec2
}

// IntensityFromDistance maps a source distance to an intensity value.
//
// At or beyond maxDist the result is exactly 0 (never negative, never NaN).
// Inside the band the value ramps linearly from maxIntensity at minDist
// down toward 0, then floors at minIntensity.
//
// The invert flag computes the same expression on both branches. It is part
// of the tuning surface and is pinned by tests; removing the branch would
// silently change the public contract.
func IntensityFromDistance(dist, minDist, maxDist, maxIntensity, minIntensity float64, invert bool) float64 {
	if dist >= maxDist {
		return 0
	}

	factor := vmath.Clamp01((dist - minDist) / (maxDist - minDist))

	var value float64
	if invert {
		value = 1 - factor
	} else {
		value = 1 - factor
	}

	return vmath.Clamp(value*maxIntensity, minIntensity, maxIntensity)
}

// ReflectionProperties computes the instantaneous glint targets for both
// eyes. Intensity floors at GlintFloor once in range; the returned anchors
// are the eye positions for downstream angle math.
func ReflectionProperties(source, leftPos, rightPos core.Vec2, eyeSize float64, cfg parameter.ReflectionConfig) (left, right EyeGlint) {
	left = EyeGlint{
		Intensity: IntensityFromDistance(source.Distance(leftPos),
			cfg.MinDistance, cfg.MaxDistance, cfg.MaxIntensity, GlintFloor, false),
		Anchor: leftPos,
	}
	right = EyeGlint{
		Intensity: IntensityFromDistance(source.Distance(rightPos),
			cfg.MinDistance, cfg.MaxDistance, cfg.MaxIntensity, GlintFloor, false),
		Anchor: rightPos,
	}
	return left, right
}

// PupilDilation computes instantaneous dilation targets for both eyes.
// Same distance law as the glint, with no floor: dilation reaches exactly 0
// at the range boundary.
func PupilDilation(source, leftPos, rightPos core.Vec2, cfg parameter.DilationConfig) (left, right float64) {
	left = IntensityFromDistance(source.Distance(leftPos),
		cfg.MinDistance, cfg.MaxDistance, 1.0, 0, false)
	right = IntensityFromDistance(source.Distance(rightPos),
		cfg.MinDistance, cfg.MaxDistance, 1.0, 0, false)
	return left, right
}

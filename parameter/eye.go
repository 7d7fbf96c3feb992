package parameter

// Eye layout — anchors are recomputed from window dimensions every frame
// so the eyes re-center on resize
const (
	// Horizontal offset of each eye from window center, fraction of width
	EyeAnchorSpacingFrac = 0.16

	// Vertical anchor position, fraction of height
	EyeAnchorHeightFrac = 0.40

	// EyeRadiusX/Y are the rendered sclera semi-axes in cells
	// Y is halved to compensate for the 1:2 cell aspect ratio
	EyeRadiusX = 9.0
	EyeRadiusY = 4.5

	// EyeSize is the touch-detection radius in cells
	// A point is over the eye iff distance < EyeSize (strict; the boundary
	// counts as not touching)
	EyeSize = 9.0
)

// Per-eye oscillation phase constants
// Distinct values keep the idle breathing of the two eyes out of step
const (
	LeftEyePhaseX  = 0.0
	LeftEyePhaseY  = 1.3
	RightEyePhaseX = 2.1
	RightEyePhaseY = 3.4
)

// TouchFadeSpeed is the linear fade rate in 1/sec
// Continuous touching ramps fade 0 -> 1 in exactly 1/TouchFadeSpeed seconds
const TouchFadeSpeed = 2.0

// FloatingConfig tunes the idle oscillation and source attraction of an eye
type FloatingConfig struct {
	// Oscillation angular speeds (rad/sec) and amplitudes (cells)
	SpeedX, SpeedY         float64
	AmplitudeX, AmplitudeY float64

	// AttractionStrength is the velocity impulse per second at zero distance;
	// falls off linearly to 0 at AttractionRange
	AttractionStrength float64

	// AttractionRange is the influence radius in cells, > 0
	AttractionRange float64

	// MaxAttractionForce caps velocity magnitude at MaxAttractionForce*dt
	// on every tick
	MaxAttractionForce float64

	// DampingFactor is the per-tick velocity retention, [0, 1)
	// Momentum decays only through this; there is no pull-back to the anchor
	DampingFactor float64
}

// DefaultFloating returns the tuning used by both eyes
func DefaultFloating() FloatingConfig {
	return FloatingConfig{
		SpeedX:             1.1,
		SpeedY:             0.8,
		AmplitudeX:         1.4,
		AmplitudeY:         0.7,
		AttractionStrength: 26.0,
		AttractionRange:    34.0,
		MaxAttractionForce: 60.0,
		DampingFactor:      0.92,
	}
}

// ReflectionConfig tunes the proximity glint
type ReflectionConfig struct {
	MinDistance  float64 // full intensity at or below this distance
	MaxDistance  float64 // zero intensity at or beyond; > MinDistance
	MaxIntensity float64
	FadeSpeed    float64 // IIR smoothing rate, 1/sec
}

// DilationConfig tunes proximity-driven pupil dilation
type DilationConfig struct {
	MinDistance float64
	MaxDistance float64
	FadeSpeed   float64
}

func DefaultReflection() ReflectionConfig {
	return ReflectionConfig{
		MinDistance:  5.0,
		MaxDistance:  45.0,
		MaxIntensity: 0.9,
		FadeSpeed:    6.0,
	}
}

func DefaultDilation() DilationConfig {
	return DilationConfig{
		MinDistance: 4.0,
		MaxDistance: 38.0,
		FadeSpeed:   4.0,
	}
}

// Shake jitter amplitudes in cells, applied as a global render translation
// Regenerated every frame while either eye is touched, zero otherwise
const (
	ShakeAmplitudeX = 0.9
	ShakeAmplitudeY = 0.45
)

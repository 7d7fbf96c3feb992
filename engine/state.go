package engine

import (
	"math/rand"

	"github.com/lixenwraith/embergaze/core"
	"github.com/lixenwraith/embergaze/eye"
	"github.com/lixenwraith/embergaze/fire"
	"github.com/lixenwraith/embergaze/parameter"
	"github.com/lixenwraith/embergaze/sprite"
	"github.com/lixenwraith/embergaze/vmath"
)

// State is the per-frame orchestrator. It owns the entities and drives them
// in a fixed order each frame:
// base positions -> oscillation time -> per-eye physics -> touch/fade ->
// reflection/dilation -> fire -> shake.
// Persistent physics state lives in the entities; State keeps only the
// global accumulators and the aggregated view.
type State struct {
	res *Resource

	Left  *eye.Eye
	Right *eye.Eye
	Fire  *fire.Effect

	sprites *sprite.Manager

	floatCfg parameter.FloatingConfig
	reflCfg  parameter.ReflectionConfig
	dilCfg   parameter.DilationConfig

	// Global oscillation accumulators, wrapped to [0, 2pi) to bound float
	// growth over long sessions
	timeX, timeY float64

	touching bool
	shake    core.Vec2
	source   core.Vec2

	sparkBurstsSeen int
	sparkCooldown   float64
}

// NewState builds both eyes, the shared sprite manager and the fire effect
func NewState(res *Resource, gen sprite.Generator) *State {
	floatCfg := parameter.DefaultFloating()
	reflCfg := parameter.DefaultReflection()
	dilCfg := parameter.DefaultDilation()

	sprites := sprite.NewManager(gen)

	s := &State{
		res:      res,
		sprites:  sprites,
		floatCfg: floatCfg,
		reflCfg:  reflCfg,
		dilCfg:   dilCfg,
		Fire:     fire.NewEffect(sprites),
	}

	s.Left = eye.New(eye.Config{
		ID:         "left",
		PhaseX:     parameter.LeftEyePhaseX,
		PhaseY:     parameter.LeftEyePhaseY,
		Size:       parameter.EyeSize,
		FadeSpeed:  parameter.TouchFadeSpeed,
		Floating:   floatCfg,
		Reflection: reflCfg,
		Dilation:   dilCfg,
	})
	s.Right = eye.New(eye.Config{
		ID:         "right",
		PhaseX:     parameter.RightEyePhaseX,
		PhaseY:     parameter.RightEyePhaseY,
		Size:       parameter.EyeSize,
		FadeSpeed:  parameter.TouchFadeSpeed,
		Floating:   floatCfg,
		Reflection: reflCfg,
		Dilation:   dilCfg,
	})

	return s
}

// Load acquires shared resources for the fire effect
func (s *State) Load() {
	s.Fire.Load()
}

// Unload releases shared resources
func (s *State) Unload() {
	s.Fire.Unload()
}

// Update runs one frame. dt is seconds (>= 0); width/height are the current
// window dimensions; source is the pointer-driven flame position in the
// same coordinate space.
func (s *State) Update(dt float64, width, height int, source core.Vec2) {
	s.source = source

	// Anchors from current window size: eyes re-center on resize
	cx := float64(width) / 2
	spacing := float64(width) * parameter.EyeAnchorSpacingFrac
	anchorY := float64(height) * parameter.EyeAnchorHeightFrac
	s.Left.SetBase(core.Vec2{X: cx - spacing, Y: anchorY})
	s.Right.SetBase(core.Vec2{X: cx + spacing, Y: anchorY})

	// Global oscillation time
	s.timeX = vmath.WrapTau(s.timeX + s.floatCfg.SpeedX*dt)
	s.timeY = vmath.WrapTau(s.timeY + s.floatCfg.SpeedY*dt)

	// Per-eye physics, touch and fade
	s.Left.Update(dt, s.timeX, s.timeY, source)
	s.Right.Update(dt, s.timeX, s.timeY, source)

	// Instantaneous glint/dilation targets, smoothed by the eyes
	lGlint, rGlint := fire.ReflectionProperties(source,
		s.Left.ActualPosition(), s.Right.ActualPosition(),
		parameter.EyeSize, s.reflCfg)
	lDil, rDil := fire.PupilDilation(source,
		s.Left.ActualPosition(), s.Right.ActualPosition(), s.dilCfg)
	s.Left.SmoothVisuals(dt, lGlint, lDil)
	s.Right.SmoothVisuals(dt, rGlint, rDil)

	// Fire follows the same source point
	s.Fire.SetSource(source)
	s.Fire.Update(dt)

	// Crackle cue on spark bursts, throttled so rapid bursts stay one sound
	s.sparkCooldown -= dt
	if bursts := s.Fire.SparkBursts(); bursts != s.sparkBurstsSeen {
		s.sparkBurstsSeen = bursts
		if s.sparkCooldown <= 0 {
			s.res.PlaySound(core.SoundSpark)
			s.sparkCooldown = parameter.SparkSoundCooldown
		}
	}

	// Aggregate touch state and shake jitter
	touching := s.Left.IsTouching() || s.Right.IsTouching()
	if touching {
		s.shake = core.Vec2{
			X: (rand.Float64()*2 - 1) * parameter.ShakeAmplitudeX,
			Y: (rand.Float64()*2 - 1) * parameter.ShakeAmplitudeY,
		}
	} else {
		s.shake = core.Vec2{}
	}

	if touching && !s.touching {
		s.res.PlaySound(core.SoundTouch)
	}
	s.touching = touching
}

// Touching reports whether either eye is currently touched
func (s *State) Touching() bool {
	return s.touching
}

// Shake is the global render translation for the current frame
func (s *State) Shake() core.Vec2 {
	return s.shake
}

// Source returns the source point of the current frame
func (s *State) Source() core.Vec2 {
	return s.source
}

// Online resolves the cosmetic network status
func (s *State) Online() bool {
	return s.res.Online()
}

// Package eye implements the per-eye physics entity: idle floating,
// damped attraction toward the fire source, touch fade, and smoothed
// glint/dilation display values.
package eye

import (
	"math"

	"github.com/lixenwraith/embergaze/core"
	"github.com/lixenwraith/embergaze/fire"
	"github.com/lixenwraith/embergaze/parameter"
	"github.com/lixenwraith/embergaze/physics"
	"github.com/lixenwraith/embergaze/vmath"
)

// Eye holds the persistent physics state of one eye. Created once at load,
// it carries velocity, attraction offset and display values across frames;
// the orchestrator owns no physics state of its own.
type Eye struct {
	id string

	base        core.Vec2
	floatOffset core.Vec2
	kin         core.Kinetic

	phaseX, phaseY float64
	size           float64

	cfg     parameter.FloatingConfig
	profile physics.AttractionProfile
	reflCfg parameter.ReflectionConfig
	dilCfg  parameter.DilationConfig

	fadeSpeed float64
	fade      float64
	touching  bool

	reflection float64
	reflAnchor core.Vec2
	dilation   float64
}

// Config bundles the per-eye construction parameters
type Config struct {
	ID             string
	PhaseX, PhaseY float64
	Size           float64
	FadeSpeed      float64
	Floating       parameter.FloatingConfig
	Reflection     parameter.ReflectionConfig
	Dilation       parameter.DilationConfig
}

// New creates an eye at the origin; the orchestrator positions it via
// SetBase before the first update
func New(cfg Config) *Eye {
	return &Eye{
		id:        cfg.ID,
		phaseX:    cfg.PhaseX,
		phaseY:    cfg.PhaseY,
		size:      cfg.Size,
		cfg:       cfg.Floating,
		fadeSpeed: cfg.FadeSpeed,
		reflCfg:   cfg.Reflection,
		dilCfg:    cfg.Dilation,
		profile: physics.AttractionProfile{
			Strength: cfg.Floating.AttractionStrength,
			Range:    cfg.Floating.AttractionRange,
			MaxForce: cfg.Floating.MaxAttractionForce,
			Damping:  cfg.Floating.DampingFactor,
		},
	}
}

// SetBase moves the anchor position (recomputed from window size each frame)
func (e *Eye) SetBase(p core.Vec2) {
	e.base = p
}

// ActualPosition is base + floatOffset, recomputed every frame and never
// stored independently
func (e *Eye) ActualPosition() core.Vec2 {
	return e.base.Add(e.floatOffset)
}

// Update advances one tick: idle oscillation, damped attraction toward the
// source, then touch detection and fade integration. timeX/timeY are the
// global oscillation accumulators advanced by the orchestrator.
func (e *Eye) Update(dt, timeX, timeY float64, source core.Vec2) {
	osc := core.Vec2{
		X: math.Sin(timeX+e.phaseX) * e.cfg.AmplitudeX,
		Y: math.Sin(timeY+e.phaseY) * e.cfg.AmplitudeY,
	}

	physics.ApplyAttraction(&e.kin, e.ActualPosition(), source, &e.profile, dt)

	e.floatOffset = osc.Add(e.kin.Offset())

	e.touching = e.IsPointOver(source)
	e.UpdateTouch(dt, e.touching)
}

// IsPointOver reports whether p is over the eye.
// Strict inequality: a point exactly on the boundary is not touching.
func (e *Eye) IsPointOver(p core.Vec2) bool {
	return p.Distance(e.ActualPosition()) < e.size
}

// UpdateTouch integrates the fade ramp: fade moves linearly toward 1 while
// touched and toward 0 while not, at fadeSpeed per second, clamped to [0,1]
// each tick. Continuous input saturates in exactly 1/fadeSpeed seconds —
// a fixed-rate ramp, deliberately distinct from the IIR smoothing in
// SmoothVisuals.
func (e *Eye) UpdateTouch(dt float64, touched bool) {
	if touched {
		e.fade += e.fadeSpeed * dt
	} else {
		e.fade -= e.fadeSpeed * dt
	}
	e.fade = vmath.Clamp01(e.fade)
}

// SmoothVisuals moves the displayed glint and dilation toward their
// instantaneous targets with asymptotic low-pass smoothing:
// current += (target-current)*dt*fadeSpeed. Response speed scales with each
// config's FadeSpeed; the value approaches but never exactly reaches the
// target.
func (e *Eye) SmoothVisuals(dt float64, glint fire.EyeGlint, dilation float64) {
	e.reflection += (glint.Intensity - e.reflection) * dt * e.reflCfg.FadeSpeed
	e.reflAnchor = glint.Anchor
	e.dilation += (dilation - e.dilation) * dt * e.dilCfg.FadeSpeed
}

func (e *Eye) ID() string { return e.id }

// Size returns the touch-detection radius in cells
func (e *Eye) Size() float64 { return e.size }

// Fade is the touch transition state in [0,1]
func (e *Eye) Fade() float64 { return e.fade }

// IsTouching reports whether the source was over the eye last tick
func (e *Eye) IsTouching() bool { return e.touching }

// ReflectionIntensity is the smoothed glint strength in [0,1]
func (e *Eye) ReflectionIntensity() float64 { return e.reflection }

// ReflectionAnchor is the anchor the renderer aims the glint from
func (e *Eye) ReflectionAnchor() core.Vec2 { return e.reflAnchor }

// PupilDilation is the smoothed dilation factor in [0,1]
func (e *Eye) PupilDilation() float64 { return e.dilation }

package physics

import (
	"github.com/lixenwraith/embergaze/core"
	"github.com/lixenwraith/embergaze/vmath"
)

// AttractionProfile defines damped attraction behavior parameters
type AttractionProfile struct {
	Strength float64 // velocity impulse per second at zero distance
	Range    float64 // influence radius in cells, > 0
	MaxForce float64 // per-tick velocity cap is MaxForce*dt
	Damping  float64 // per-tick velocity retention, [0, 1)
}

// ApplyAttraction integrates one tick of damped attraction toward target.
// pos is the entity's current actual position; k accumulates the resulting
// offset relative to its anchor.
//
// Velocity decays through damping every tick and gains an impulse only while
// the target is inside Range, with linear falloff (full Strength at zero
// distance, nothing at the range boundary). The offset integrates velocity
// unconditionally, so momentum carries the entity after the target leaves
// range and it settles back slowly instead of snapping.
func ApplyAttraction(k *core.Kinetic, pos, target core.Vec2, p *AttractionProfile, dt float64) {
	k.VelX *= p.Damping
	k.VelY *= p.Damping

	dist := pos.Distance(target)
	if dist < p.Range {
		// Normalize is zero-safe: a source exactly at the eye center
		// contributes no direction rather than dividing by zero
		dirX, dirY := vmath.Normalize(target.X-pos.X, target.Y-pos.Y)
		strength := (1 - dist/p.Range) * p.Strength
		k.VelX += dirX * strength * dt
		k.VelY += dirY * strength * dt
	}

	k.VelX, k.VelY = vmath.ClampMagnitude(k.VelX, k.VelY, p.MaxForce*dt)

	k.OffsetX += k.VelX
	k.OffsetY += k.VelY
}

package fire

import (
	"math/rand"

	"github.com/lixenwraith/embergaze/core"
	"github.com/lixenwraith/embergaze/parameter"
	"github.com/lixenwraith/embergaze/sprite"
)

// LayerCount is the number of emitter layers in the effect
const LayerCount = 4

// Effect is the layered fire that follows the source point.
// Four emitters share two sprites from the manager; all are repositioned to
// the current source every tick so the whole effect tracks one point.
type Effect struct {
	sprites *sprite.Manager

	smoke  *Emitter
	core   *Emitter
	flame  *Emitter
	sparks *Emitter

	sparkTimer    float64
	sparkInterval float64
	sparkBursts   int

	loaded bool
}

// NewEffect creates an unloaded effect; call Load before Update
func NewEffect(sprites *sprite.Manager) *Effect {
	return &Effect{sprites: sprites}
}

// Load acquires the shared sprites and builds the four emitter layers
// Safe to call once per Load/Unload cycle
func (f *Effect) Load() {
	if f.loaded {
		return
	}
	flameImg, sparkImg := f.sprites.Acquire()

	f.smoke = NewEmitter(parameter.FireSmoke(), flameImg)
	f.core = NewEmitter(parameter.FireCore(), flameImg)
	f.flame = NewEmitter(parameter.FireFlame(), flameImg)
	f.sparks = NewEmitter(parameter.FireSparks(), sparkImg)

	f.sparkTimer = 0
	f.sparkInterval = rollSparkInterval()
	f.loaded = true
}

// Unload releases the shared sprites and drops the emitters
func (f *Effect) Unload() {
	if !f.loaded {
		return
	}
	f.sprites.Release()
	f.smoke, f.core, f.flame, f.sparks = nil, nil, nil, nil
	f.loaded = false
}

// SetSource repositions all four layers to the current source point
func (f *Effect) SetSource(p core.Vec2) {
	if !f.loaded {
		return
	}
	f.smoke.SetPosition(p.X, p.Y)
	f.core.SetPosition(p.X, p.Y)
	f.flame.SetPosition(p.X, p.Y)
	f.sparks.SetPosition(p.X, p.Y)
}

// Update advances every layer and runs the randomized spark scheduler.
// Sparks are not continuously emitted: when the timer crosses the interval
// a burst of 1-5 particles fires and a fresh interval is rolled, producing
// irregular, organic sparking.
func (f *Effect) Update(dt float64) {
	if !f.loaded {
		return
	}

	f.sparkTimer += dt
	if f.sparkTimer >= f.sparkInterval {
		f.sparkTimer = 0
		f.sparkInterval = rollSparkInterval()
		n := parameter.SparkBurstMin +
			rand.Intn(parameter.SparkBurstMax-parameter.SparkBurstMin+1)
		f.sparks.EmitBurst(n)
		f.sparkBursts++
	}

	f.smoke.Update(dt)
	f.core.Update(dt)
	f.flame.Update(dt)
	f.sparks.Update(dt)
}

// Emitters returns the layers in draw order: smoke, core, flame, sparks.
// Smoke and core use alpha blending, flame and sparks additive; the render
// pass must preserve this back-to-front order.
func (f *Effect) Emitters() [LayerCount]*Emitter {
	return [LayerCount]*Emitter{f.smoke, f.core, f.flame, f.sparks}
}

// Loaded reports whether the effect currently holds sprite references
func (f *Effect) Loaded() bool {
	return f.loaded
}

// SparkBursts returns the number of bursts fired since Load
func (f *Effect) SparkBursts() int {
	return f.sparkBursts
}

func rollSparkInterval() float64 {
	return parameter.SparkIntervalMin +
		rand.Float64()*(parameter.SparkIntervalMax-parameter.SparkIntervalMin)
}

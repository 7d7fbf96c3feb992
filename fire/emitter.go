package fire

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/embergaze/parameter"
	"github.com/lixenwraith/embergaze/sprite"
)

// Particle is one live particle in an emitter pool
type Particle struct {
	X, Y       float64
	VelX, VelY float64
	Age, Life  float64
}

// Progress returns normalized age in [0,1]
func (p *Particle) Progress() float64 {
	if p.Life <= 0 {
		return 1
	}
	t := p.Age / p.Life
	if t > 1 {
		return 1
	}
	return t
}

// Emitter owns a fixed particle pool for one fire layer.
// Continuous layers accumulate fractional spawn debt from Rate*dt; the
// spark layer has Rate 0 and is driven exclusively through EmitBurst.
type Emitter struct {
	cfg parameter.EmitterConfig
	img *sprite.Image

	x, y float64

	pool    []Particle
	active  int
	debt    float64
	spawned int
}

// NewEmitter creates an emitter at origin with a pre-allocated pool
func NewEmitter(cfg parameter.EmitterConfig, img *sprite.Image) *Emitter {
	return &Emitter{
		cfg:  cfg,
		img:  img,
		pool: make([]Particle, cfg.Max),
	}
}

// SetPosition moves the emission point (the shared fire source)
func (e *Emitter) SetPosition(x, y float64) {
	e.x, e.y = x, y
}

// Update advances all live particles and spawns from accumulated rate debt
func (e *Emitter) Update(dt float64) {
	// Advance and expire; swap-remove keeps the live range compact
	for i := 0; i < e.active; {
		p := &e.pool[i]
		p.Age += dt
		if p.Age >= p.Life {
			e.active--
			e.pool[i] = e.pool[e.active]
			continue
		}
		p.VelY += e.cfg.Gravity * dt
		decay := 1 - e.cfg.Drag*dt
		if decay < 0 {
			decay = 0
		}
		p.VelX *= decay
		p.VelY *= decay
		p.X += p.VelX * dt
		p.Y += p.VelY * dt
		i++
	}

	if e.cfg.Rate > 0 {
		e.debt += e.cfg.Rate * dt
		for e.debt >= 1 && e.active < len(e.pool) {
			e.spawn()
			e.debt--
		}
		// Pool exhausted: drop the debt instead of bursting on recovery
		if e.debt >= 1 {
			e.debt = 0
		}
	}
}

// EmitBurst spawns up to n particles immediately, bounded by pool capacity
func (e *Emitter) EmitBurst(n int) {
	for i := 0; i < n && e.active < len(e.pool); i++ {
		e.spawn()
	}
}

func (e *Emitter) spawn() {
	angle := e.cfg.Angle + (rand.Float64()-0.5)*e.cfg.Spread
	speed := e.cfg.Speed + (rand.Float64()*2-1)*e.cfg.SpeedVar
	life := e.cfg.Life + (rand.Float64()*2-1)*e.cfg.LifeVar
	if life < 0.05 {
		life = 0.05
	}

	e.pool[e.active] = Particle{
		X:    e.x + (rand.Float64()*2-1)*e.cfg.SpawnJitterX,
		Y:    e.y + (rand.Float64()*2-1)*e.cfg.SpawnJitterY,
		VelX: math.Cos(angle) * speed,
		VelY: math.Sin(angle) * speed,
		Life: life,
	}
	e.active++
	e.spawned++
}

// Each visits every live particle
func (e *Emitter) Each(fn func(p *Particle)) {
	for i := 0; i < e.active; i++ {
		fn(&e.pool[i])
	}
}

// ActiveCount returns the number of live particles
func (e *Emitter) ActiveCount() int {
	return e.active
}

// Spawned returns the total number of particles emitted since creation
func (e *Emitter) Spawned() int {
	return e.spawned
}

// Config returns the emitter's tuning (value copy)
func (e *Emitter) Config() parameter.EmitterConfig {
	return e.cfg
}

// Image returns the sprite stamped for each particle
func (e *Emitter) Image() *sprite.Image {
	return e.img
}

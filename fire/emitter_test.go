package fire

import (
	"testing"

	"github.com/lixenwraith/embergaze/parameter"
)

func steadyConfig() parameter.EmitterConfig {
	return parameter.EmitterConfig{
		Sprite: parameter.SpriteFlame,
		Max:    64,
		Rate:   10,
		Life:   100, // effectively immortal for the test window
		Speed:  1,
	}
}

func TestRateDebtSpawning(t *testing.T) {
	e := NewEmitter(steadyConfig(), nil)

	// Rate 10 at dt 0.1 accrues exactly one particle of debt per tick
	for i := 0; i < 10; i++ {
		e.Update(0.1)
	}
	if e.Spawned() != 10 {
		t.Errorf("Expected 10 particles after 1s at rate 10, got %d", e.Spawned())
	}
	if e.ActiveCount() != 10 {
		t.Errorf("Expected 10 live particles, got %d", e.ActiveCount())
	}
}

func TestBurstOnlyEmitterNeverSelfSpawns(t *testing.T) {
	cfg := parameter.FireSparks()
	e := NewEmitter(cfg, nil)

	for i := 0; i < 100; i++ {
		e.Update(0.033)
	}
	if e.Spawned() != 0 {
		t.Errorf("Rate-0 emitter spawned %d particles on its own", e.Spawned())
	}

	e.EmitBurst(3)
	if e.ActiveCount() != 3 {
		t.Errorf("Expected 3 particles after burst, got %d", e.ActiveCount())
	}
}

func TestPoolCapacityBoundsActive(t *testing.T) {
	cfg := steadyConfig()
	cfg.Max = 5
	e := NewEmitter(cfg, nil)

	e.EmitBurst(100)
	if e.ActiveCount() != 5 {
		t.Errorf("Expected active capped at 5, got %d", e.ActiveCount())
	}
	if e.Spawned() != 5 {
		t.Errorf("Expected only 5 spawns against a full pool, got %d", e.Spawned())
	}

	// Continuous emission against a full pool drops the debt rather than
	// bursting when capacity frees up
	for i := 0; i < 50; i++ {
		e.Update(0.1)
		if e.ActiveCount() > 5 {
			t.Fatalf("Active count %d exceeded pool size", e.ActiveCount())
		}
	}
}

func TestParticleExpiry(t *testing.T) {
	cfg := steadyConfig()
	cfg.Rate = 0
	cfg.Life = 0.2
	e := NewEmitter(cfg, nil)

	e.EmitBurst(8)
	e.Update(0.1)
	if e.ActiveCount() != 8 {
		t.Fatalf("Expected 8 particles mid-life, got %d", e.ActiveCount())
	}

	e.Update(0.15)
	if e.ActiveCount() != 0 {
		t.Errorf("Expected all particles expired, got %d", e.ActiveCount())
	}

	// Pool slots are reusable after expiry
	e.EmitBurst(4)
	if e.ActiveCount() != 4 {
		t.Errorf("Expected 4 particles after reuse, got %d", e.ActiveCount())
	}
}

func TestParticleProgress(t *testing.T) {
	p := Particle{Age: 0.25, Life: 1.0}
	if got := p.Progress(); got != 0.25 {
		t.Errorf("Expected progress 0.25, got %v", got)
	}

	p = Particle{Age: 2, Life: 1}
	if got := p.Progress(); got != 1 {
		t.Errorf("Expected progress clamped to 1, got %v", got)
	}

	p = Particle{Age: 0.5, Life: 0}
	if got := p.Progress(); got != 1 {
		t.Errorf("Expected degenerate life to read as finished, got %v", got)
	}
}

func TestGravityPullsDown(t *testing.T) {
	cfg := steadyConfig()
	cfg.Rate = 0
	cfg.Speed = 0
	cfg.Gravity = 9
	e := NewEmitter(cfg, nil)

	e.EmitBurst(1)
	var y0 float64
	e.Each(func(p *Particle) { y0 = p.Y })

	for i := 0; i < 30; i++ {
		e.Update(0.033)
	}

	var y1 float64
	e.Each(func(p *Particle) { y1 = p.Y })
	if y1 <= y0 {
		t.Errorf("Expected particle to fall (screen Y grows down): %v -> %v", y0, y1)
	}
}

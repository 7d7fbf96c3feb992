package parameter

import "github.com/lixenwraith/embergaze/core"

// Logical sprite names shared by the sprite manager and emitter configs
const (
	SpriteFlame = "flame"
	SpriteSpark = "spark"
)

// Procedural sprite generation sizes (cells)
// Fixed parameters keep regeneration idempotent across acquire cycles
const (
	FlameSpriteWidth  = 7
	FlameSpriteHeight = 9
	SparkSpriteSize   = 3
)

// Spark burst scheduling
// Bursts fire when the timer crosses the interval; the interval is re-rolled
// uniformly from [SparkIntervalMin, SparkIntervalMax] after every burst
const (
	SparkIntervalMin = 0.05 // seconds
	SparkIntervalMax = 0.3

	SparkBurstMin = 1 // particles per burst, inclusive
	SparkBurstMax = 5

	// SparkSoundCooldown throttles the crackle cue: bursts can fire every
	// 0.05s but the sound plays at most once per cooldown window
	SparkSoundCooldown = 0.25 // seconds
)

// BlendMode selects how a particle layer composites into the cell buffer
type BlendMode uint8

const (
	// BlendAlpha is standard source-over alpha blending (smoke, core)
	BlendAlpha BlendMode = iota
	// BlendAdditive accumulates light with channel clamping (flame, sparks)
	BlendAdditive
)

// EmitterConfig is pure data describing one particle layer
type EmitterConfig struct {
	Sprite string // logical sprite name
	Max    int    // particle pool size

	// Rate is continuous emission in particles/sec; 0 = burst-only
	Rate float64

	// Lifetime in seconds, +/- LifeVar
	Life, LifeVar float64

	// Initial speed in cells/sec, +/- SpeedVar, along Angle +/- Spread/2
	Speed, SpeedVar float64
	Angle, Spread   float64 // radians; -pi/2 points up the screen

	Gravity float64 // cells/sec^2; negative values rise
	Drag    float64 // 1/sec velocity decay

	// Size in cells, color and alpha interpolated over particle life
	StartSize, EndSize     float64
	StartColor, EndColor   core.RGB
	StartAlpha, EndAlpha   float64
	SpawnJitterX, SpawnJitterY float64

	Blend BlendMode
}

// The four fire layers. Draw order is back-to-front and blend-sensitive:
// smoke -> core -> flame -> sparks. This ordering contract is fixed; the
// render pass iterates Effect.Emitters() which preserves it.

func FireSmoke() EmitterConfig {
	return EmitterConfig{
		Sprite:       SpriteFlame,
		Max:          48,
		Rate:         14,
		Life:         1.6,
		LifeVar:      0.5,
		Speed:        4.0,
		SpeedVar:     1.5,
		Angle:        -1.5707963267948966, // -pi/2
		Spread:       0.9,
		Gravity:      -2.0,
		Drag:         0.6,
		StartSize:    2.0,
		EndSize:      5.0,
		StartColor:   core.RGB{R: 60, G: 56, B: 54},
		EndColor:     core.RGB{R: 28, G: 27, B: 26},
		StartAlpha:   0.35,
		EndAlpha:     0.0,
		SpawnJitterX: 1.2,
		SpawnJitterY: 0.4,
		Blend:        BlendAlpha,
	}
}

func FireCore() EmitterConfig {
	return EmitterConfig{
		Sprite:       SpriteFlame,
		Max:          32,
		Rate:         22,
		Life:         0.55,
		LifeVar:      0.15,
		Speed:        3.0,
		SpeedVar:     1.0,
		Angle:        -1.5707963267948966,
		Spread:       0.4,
		Gravity:      -4.0,
		Drag:         0.4,
		StartSize:    2.6,
		EndSize:      1.0,
		StartColor:   core.RGB{R: 255, G: 214, B: 90},
		EndColor:     core.RGB{R: 221, G: 96, B: 26},
		StartAlpha:   0.95,
		EndAlpha:     0.1,
		SpawnJitterX: 0.5,
		SpawnJitterY: 0.3,
		Blend:        BlendAlpha,
	}
}

func FireFlame() EmitterConfig {
	return EmitterConfig{
		Sprite:       SpriteFlame,
		Max:          64,
		Rate:         30,
		Life:         0.9,
		LifeVar:      0.3,
		Speed:        6.0,
		SpeedVar:     2.0,
		Angle:        -1.5707963267948966,
		Spread:       0.7,
		Gravity:      -6.0,
		Drag:         0.5,
		StartSize:    3.2,
		EndSize:      0.8,
		StartColor:   core.RGB{R: 255, G: 140, B: 30},
		EndColor:     core.RGB{R: 160, G: 30, B: 8},
		StartAlpha:   0.8,
		EndAlpha:     0.0,
		SpawnJitterX: 1.0,
		SpawnJitterY: 0.4,
		Blend:        BlendAdditive,
	}
}

func FireSparks() EmitterConfig {
	return EmitterConfig{
		Sprite:       SpriteSpark,
		Max:          40,
		Rate:         0, // burst-only, driven by the spark scheduler
		Life:         0.7,
		LifeVar:      0.25,
		Speed:        11.0,
		SpeedVar:     4.0,
		Angle:        -1.5707963267948966,
		Spread:       1.6,
		Gravity:      9.0, // sparks arc and fall
		Drag:         0.8,
		StartSize:    1.0,
		EndSize:      0.4,
		StartColor:   core.RGB{R: 255, G: 236, B: 160},
		EndColor:     core.RGB{R: 255, G: 90, B: 20},
		StartAlpha:   1.0,
		EndAlpha:     0.0,
		SpawnJitterX: 0.8,
		SpawnJitterY: 0.5,
		Blend:        BlendAdditive,
	}
}

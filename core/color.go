package core

import "github.com/lixenwraith/embergaze/vmath"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

var RGBBlack = RGB{0, 0, 0}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Add performs additive blend with clamping (light accumulation)
func (c RGB) Add(src RGB) RGB {
	return RGB{
		R: uint8(min(int(c.R)+int(src.R), 255)),
		G: uint8(min(int(c.G)+int(src.G), 255)),
		B: uint8(min(int(c.B)+int(src.B), 255)),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Lerp interpolates channel-wise toward dst; t is clamped to [0,1]
func (c RGB) Lerp(dst RGB, t float64) RGB {
	t = vmath.Clamp01(t)
	return RGB{
		R: uint8(vmath.Lerp(float64(c.R), float64(dst.R), t)),
		G: uint8(vmath.Lerp(float64(c.G), float64(dst.G), t)),
		B: uint8(vmath.Lerp(float64(c.B), float64(dst.B), t)),
	}
}

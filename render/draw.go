package render

import (
	"math"

	"github.com/lixenwraith/embergaze/core"
	"github.com/lixenwraith/embergaze/eye"
	"github.com/lixenwraith/embergaze/fire"
	"github.com/lixenwraith/embergaze/parameter"
	"github.com/lixenwraith/embergaze/sprite"
	"github.com/lixenwraith/embergaze/vmath"
)

// DrawEye rasterizes one eye: sclera ellipse, source-tracking iris, dilated
// pupil and the proximity glint. Fade blends the palette toward the touched
// variants.
func DrawEye(b *Buffer, e *eye.Eye, source core.Vec2) {
	center := e.ActualPosition()
	rx := parameter.EyeRadiusX
	ry := parameter.EyeRadiusY

	sclera := ScleraColor.Lerp(ScleraTouched, e.Fade())
	iris := IrisColor.Lerp(IrisTouched, e.Fade())

	// Iris looks toward the source, clamped inside the sclera
	dirX, dirY := vmath.Normalize(source.X-center.X, source.Y-center.Y)
	irisCx := center.X + dirX*rx*0.30
	irisCy := center.Y + dirY*ry*0.30
	irisR := rx * 0.45

	// Pupil grows with dilation
	pupilR := irisR * (0.45 + 0.45*e.PupilDilation())

	minX := int(center.X-rx) - 1
	maxX := int(center.X+rx) + 1
	minY := int(center.Y-ry) - 1
	maxY := int(center.Y+ry) + 1

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) - center.X
			dy := float64(y) - center.Y
			d := math.Sqrt(dx*dx/(rx*rx) + dy*dy/(ry*ry))
			if d > 1 {
				continue
			}

			// Soft sclera edge
			alpha := vmath.Clamp01((1 - d) * 6)
			col := sclera

			// Iris and pupil use x-stretched distance so they stay round
			// on 1:2 cells
			idx := float64(x) - irisCx
			idy := (float64(y) - irisCy) * 2
			irisDist := math.Sqrt(idx*idx + idy*idy)
			if irisDist < irisR {
				col = iris
				if irisDist < pupilR {
					col = PupilColor
				}
			}

			b.BlendBg(x, y, col, alpha)
		}
	}

	drawGlint(b, e, source, irisCx, irisCy, irisR)
}

// drawGlint places the additive light spot between the pupil center and the
// source direction, scaled by the smoothed reflection intensity
func drawGlint(b *Buffer, e *eye.Eye, source core.Vec2, irisCx, irisCy, irisR float64) {
	intensity := e.ReflectionIntensity()
	if intensity <= 0.01 {
		return
	}

	anchor := e.ReflectionAnchor()
	dirX, dirY := vmath.Normalize(source.X-anchor.X, source.Y-anchor.Y)
	gx := int(irisCx + dirX*irisR*0.5)
	gy := int(irisCy + dirY*irisR*0.25)

	b.AddBg(gx, gy, GlintColor, intensity)
	b.AddBg(gx+1, gy, GlintColor, intensity*0.35)
	b.AddBg(gx-1, gy, GlintColor, intensity*0.35)
}

// DrawFire composites the four layers in their fixed back-to-front order.
// Layer blend modes come from each emitter's config: alpha for smoke and
// core, additive for flame and sparks.
func DrawFire(b *Buffer, f *fire.Effect) {
	if !f.Loaded() {
		return
	}
	for _, em := range f.Emitters() {
		cfg := em.Config()
		img := em.Image()
		em.Each(func(p *fire.Particle) {
			t := p.Progress()
			size := vmath.Lerp(cfg.StartSize, cfg.EndSize, t)
			col := cfg.StartColor.Lerp(cfg.EndColor, t)
			alpha := vmath.Lerp(cfg.StartAlpha, cfg.EndAlpha, t)
			stamp(b, img, p.X, p.Y, size, col, alpha, cfg.Blend)
		})
	}
}

// stamp rasterizes a sprite mask centered at (px, py), scaled to size cells
// wide. Vertical extent is halved for the 1:2 cell aspect ratio.
func stamp(b *Buffer, img *sprite.Image, px, py, size float64, col core.RGB, alpha float64, blend parameter.BlendMode) {
	if img == nil || size <= 0 || alpha <= 0 {
		return
	}

	halfW := size / 2
	halfH := size / 4
	if halfH < 0.5 {
		halfH = 0.5
	}

	minX := int(px-halfW) - 1
	maxX := int(px+halfW) + 1
	minY := int(py-halfH) - 1
	maxY := int(py+halfH) + 1

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			u := (float64(x)-px)/(2*halfW) + 0.5
			v := (float64(y)-py)/(2*halfH) + 0.5
			a := img.Sample(u, v) * alpha
			if a <= 0.01 {
				continue
			}
			switch blend {
			case parameter.BlendAdditive:
				b.AddBg(x, y, col, a)
			default:
				b.BlendBg(x, y, col, a)
			}
		}
	}
}

// DrawStatus renders the cosmetic online indicator in the top-right corner
func DrawStatus(b *Buffer, online bool) {
	col := StatusOffline
	if online {
		col = StatusOnline
	}
	b.SetRune(b.Width-2, 0, '•', col, online)
}

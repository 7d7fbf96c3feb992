package sprite

import "github.com/lixenwraith/embergaze/vmath"

// Image is a procedurally generated grayscale alpha mask
// Alpha is row-major, values in [0,1]; cells[y*Width + x]
type Image struct {
	Name   string
	Width  int
	Height int
	Alpha  []float64
}

// At returns the mask value at integer coordinates, 0 outside bounds
func (img *Image) At(x, y int) float64 {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return 0
	}
	return img.Alpha[y*img.Width+x]
}

// Sample reads the mask at normalized coordinates u,v in [0,1]
// Nearest-neighbor; out-of-range coordinates return 0
func (img *Image) Sample(u, v float64) float64 {
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return 0
	}
	x := int(u * float64(img.Width-1))
	y := int(v * float64(img.Height-1))
	return img.At(x, y)
}

// Generator produces the filled sprite shapes the fire effect stamps.
// The rendering collaborator owns this capability; ProcGenerator is the
// default procedural implementation.
type Generator interface {
	// Teardrop generates a flame silhouette: round base tapering upward
	Teardrop(name string, w, h int) *Image

	// Disc generates a radial falloff disc
	Disc(name string, size int) *Image
}

// ProcGenerator generates sprites arithmetically with no external assets.
// Generation is deterministic: identical parameters produce identical masks.
type ProcGenerator struct{}

func (ProcGenerator) Teardrop(name string, w, h int) *Image {
	img := &Image{Name: name, Width: w, Height: h, Alpha: make([]float64, w*h)}
	cx := float64(w-1) / 2
	for y := 0; y < h; y++ {
		// v: 0 at the tip (top), 1 at the base (bottom)
		v := float64(y) / float64(h-1)
		// Radius tapers toward the tip; widest around 70% down
		radius := cx * taperProfile(v)
		if radius <= 0 {
			continue
		}
		for x := 0; x < w; x++ {
			d := (float64(x) - cx) / radius
			if d < 0 {
				d = -d
			}
			if d > 1 {
				continue
			}
			// Smooth edge falloff
			a := 1 - d*d
			img.Alpha[y*w+x] = vmath.Clamp01(a)
		}
	}
	return img
}

// taperProfile maps vertical position to relative width of the teardrop
func taperProfile(v float64) float64 {
	const widest = 0.7
	if v <= widest {
		// Quadratic swell from tip to widest point
		t := v / widest
		return t * t
	}
	// Round off below the widest point
	t := (v - widest) / (1 - widest)
	return 1 - 0.5*t*t
}

func (ProcGenerator) Disc(name string, size int) *Image {
	img := &Image{Name: name, Width: size, Height: size, Alpha: make([]float64, size*size)}
	c := float64(size-1) / 2
	if c == 0 {
		img.Alpha[0] = 1
		return img
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := vmath.Distance(float64(x), float64(y), c, c) / c
			if d > 1 {
				continue
			}
			img.Alpha[y*size+x] = vmath.Clamp01(1 - d*d)
		}
	}
	return img
}

package render

import (
	"testing"

	"github.com/lixenwraith/embergaze/core"
)

func TestBufferBounds(t *testing.T) {
	b := NewBuffer(10, 5)

	tests := []struct {
		name string
		x, y int
		in   bool
	}{
		{"Origin", 0, 0, true},
		{"Last cell", 9, 4, true},
		{"Negative x", -1, 0, false},
		{"Negative y", 0, -1, false},
		{"Past width", 10, 0, false},
		{"Past height", 0, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.In(tt.x, tt.y); got != tt.in {
				t.Errorf("In(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.in)
			}
		})
	}

	// Out-of-bounds writes are dropped, never panic
	b.BlendBg(-1, -1, core.RGB{R: 255, G: 255, B: 255}, 1)
	b.AddBg(100, 100, core.RGB{R: 255, G: 255, B: 255}, 1)
	b.SetRune(10, 5, 'x', core.RGB{}, false)
}

func TestBlendBg(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Clear(core.RGB{R: 0, G: 0, B: 0})

	b.BlendBg(1, 1, core.RGB{R: 200, G: 100, B: 40}, 0.5)
	got := b.Cells[1*4+1].Bg
	if got.R != 100 || got.G != 50 || got.B != 20 {
		t.Errorf("Expected half blend over black, got %+v", got)
	}

	// Zero alpha leaves the cell untouched
	b.BlendBg(2, 2, core.RGB{R: 255, G: 255, B: 255}, 0)
	if b.Cells[2*4+2].Bg != (core.RGB{R: 0, G: 0, B: 0}) {
		t.Error("Zero-alpha blend modified the cell")
	}
}

func TestAddBgAccumulates(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Clear(core.RGB{R: 0, G: 0, B: 0})

	// Additive light stacks and clamps at channel maximum
	for i := 0; i < 3; i++ {
		b.AddBg(0, 0, core.RGB{R: 100, G: 100, B: 100}, 1)
	}
	got := b.Cells[0].Bg
	if got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("Expected clamped accumulation, got %+v", got)
	}

	b.AddBg(1, 0, core.RGB{R: 100, G: 100, B: 100}, 0.5)
	got = b.Cells[1].Bg
	if got.R != 50 || got.G != 50 || got.B != 50 {
		t.Errorf("Expected alpha-scaled addition, got %+v", got)
	}
}

func TestSetRunePreservesBackground(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Clear(core.RGB{R: 10, G: 20, B: 30})

	b.SetRune(1, 1, '•', core.RGB{R: 255, G: 0, B: 0}, true)
	cell := b.Cells[1*4+1]
	if cell.Rune != '•' || !cell.Bold || cell.Fg != (core.RGB{R: 255, G: 0, B: 0}) {
		t.Errorf("Rune not set: %+v", cell)
	}
	if cell.Bg != (core.RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("SetRune disturbed the background: %+v", cell.Bg)
	}
}

func TestResize(t *testing.T) {
	b := NewBuffer(4, 4)
	b.Clear(core.RGB{R: 10, G: 20, B: 30})

	b.Resize(8, 2)
	if b.Width != 8 || b.Height != 2 || len(b.Cells) != 16 {
		t.Errorf("Resize to 8x2: got %dx%d, %d cells", b.Width, b.Height, len(b.Cells))
	}

	// Same-size resize keeps content
	b.Clear(core.RGB{R: 1, G: 2, B: 3})
	b.Resize(8, 2)
	if b.Cells[0].Bg != (core.RGB{R: 1, G: 2, B: 3}) {
		t.Error("Same-size resize discarded content")
	}
}

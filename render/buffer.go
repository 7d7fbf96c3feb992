package render

import "github.com/lixenwraith/embergaze/core"

// Cell is one terminal cell in the frame buffer
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
	Bold bool
}

// Buffer is the row-major RGB frame buffer the draw passes composite into
type Buffer struct {
	Width, Height int
	Cells         []Cell
}

// NewBuffer allocates a buffer of the given size
func NewBuffer(w, h int) *Buffer {
	return &Buffer{Width: w, Height: h, Cells: make([]Cell, w*h)}
}

// Resize grows or shrinks the buffer, discarding content on change
func (b *Buffer) Resize(w, h int) {
	if w == b.Width && h == b.Height {
		return
	}
	b.Width, b.Height = w, h
	b.Cells = make([]Cell, w*h)
}

// Clear fills every cell with the background color
func (b *Buffer) Clear(bg core.RGB) {
	for i := range b.Cells {
		b.Cells[i] = Cell{Rune: ' ', Bg: bg}
	}
}

// In reports whether the coordinates are inside the buffer
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// BlendBg alpha-blends c over the cell background (smoke, core layers)
func (b *Buffer) BlendBg(x, y int, c core.RGB, alpha float64) {
	if !b.In(x, y) || alpha <= 0 {
		return
	}
	idx := y*b.Width + x
	b.Cells[idx].Bg = b.Cells[idx].Bg.Blend(c, alpha)
}

// AddBg additively accumulates c into the cell background (flame, sparks)
func (b *Buffer) AddBg(x, y int, c core.RGB, alpha float64) {
	if !b.In(x, y) || alpha <= 0 {
		return
	}
	idx := y*b.Width + x
	b.Cells[idx].Bg = b.Cells[idx].Bg.Add(c.Scale(alpha))
}

// SetRune places a glyph without touching the cell background
func (b *Buffer) SetRune(x, y int, r rune, fg core.RGB, bold bool) {
	if !b.In(x, y) {
		return
	}
	idx := y*b.Width + x
	b.Cells[idx].Rune = r
	b.Cells[idx].Fg = fg
	b.Cells[idx].Bold = bold
}

package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/embergaze/core"
)

// Present flushes the buffer to the screen. offX/offY apply the global
// shake translation; cells shifted off-screen are dropped.
func Present(s tcell.Screen, b *Buffer, offX, offY int) {
	w, h := s.Size()

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			sx := x + offX
			sy := y + offY
			if sx < 0 || sx >= w || sy < 0 || sy >= h {
				continue
			}

			cell := b.Cells[y*b.Width+x]
			r := cell.Rune
			if r == 0 {
				r = ' '
			}

			style := tcell.StyleDefault.
				Foreground(toTcell(cell.Fg)).
				Background(toTcell(cell.Bg)).
				Bold(cell.Bold)
			s.SetContent(sx, sy, r, nil, style)
		}
	}
	s.Show()
}

func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

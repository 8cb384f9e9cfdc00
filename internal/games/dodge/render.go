package dodge

import (
	"github.com/vovakirdan/casual-arcade/internal/core"
)

// Render draws the play field scaled into dst. The outermost rows and
// columns hold the border, which turns red while a hit flash is active
// during play.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w < 3 || h < 3 {
		return
	}

	border := core.ColorGray
	if g.flash && !g.Ended() {
		border = core.ColorRed
	}
	dst.DrawBox(0, 0, w, h, border)

	scaleX := float64(w-2) / g.cfg.Field.Width
	scaleY := float64(h-2) / g.cfg.Field.Height

	inner := core.NewScreen(w-2, h-2)
	for _, obj := range g.objects {
		inner.FillRectF(obj.Rect, scaleX, scaleY, '█', obj.Color)
	}
	inner.FillRectF(g.player, scaleX, scaleY, '▄', core.ColorGreen)

	for y := 0; y < inner.Height(); y++ {
		for x := 0; x < inner.Width(); x++ {
			if c := inner.GetCell(x, y); c.Rune != ' ' {
				dst.Set(x+1, y+1, c.Rune, c.Color)
			}
		}
	}

	switch g.Status() {
	case core.StatusPaused:
		dst.DrawTextCentered(h/2, " PAUSED ", core.ColorYellow)
	case core.StatusEnded:
		dst.DrawTextCentered(h/2, " GAME OVER ", core.ColorRed)
	}
}

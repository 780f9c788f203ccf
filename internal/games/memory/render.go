package memory

import (
	"fmt"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
)

// Render draws the deck, cursor and counters.
func (g *Game) Render(dst core.Canvas) {
	tw, th := g.tileSize()

	for i, t := range g.tiles {
		x := float64(i%g.cols) * tw
		y := float64(i/g.cols) * th
		cx, cy := x+tw/2, y+th/2

		switch {
		case t.Matched:
			dst.Text(cx, cy, t.Symbol, core.AlignCenter, core.ColorGreen)
		case t.Flipped:
			dst.StrokeRect(x+2, y+2, tw-4, th-4, core.ColorCyan)
			dst.Text(cx, cy, t.Symbol, core.AlignCenter, core.ColorCyan)
		default:
			dst.FillRect(x+2, y+2, tw-4, th-4, core.ColorMagenta)
			dst.Line(x+10, y+10, x+tw-10, y+th-10, core.ColorWhite)
			dst.Line(x+tw-10, y+10, x+10, y+th-10, core.ColorWhite)
		}
	}

	if !g.gameOver {
		dst.StrokeRect(float64(g.cursor.X)*tw, float64(g.cursor.Y)*th, tw, th, core.ColorYellow)
	}

	gamekit.Score(dst, "Score", g.score)
	dst.Text(10, 60, fmt.Sprintf("Moves: %d", g.moves), core.AlignLeft, core.ColorWhite)

	if g.gameOver {
		gamekit.Banner(dst, "You Win!", core.ColorMagenta,
			gamekit.Line{Text: fmt.Sprintf("Score: %d", g.score), Color: core.ColorCyan},
			gamekit.Line{Text: fmt.Sprintf("Moves: %d", g.moves), Color: core.ColorCyan},
			gamekit.Line{Text: "Click to restart", Color: core.ColorWhite},
		)
	}
}

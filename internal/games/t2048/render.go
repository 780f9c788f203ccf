package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
)

// tileColor picks the neon shade band for a value.
func tileColor(v int) core.Color {
	switch {
	case v <= 4:
		return core.ColorMagenta
	case v <= 16:
		return core.ColorPink
	case v <= 64:
		return core.ColorCyan
	case v <= 256:
		return core.ColorBlue
	case v <= 1024:
		return core.ColorGreen
	default:
		return core.ColorYellow
	}
}

// Render draws the board, tiles and score.
func (g *Game) Render(dst core.Canvas) {
	w, h := dst.Size()
	n := len(g.board)
	tile := min(w, h) / float64(n)
	pad := tile * 0.05

	gamekit.Grid(dst, tile, core.ColorGray)

	for y, row := range g.board {
		for x, v := range row {
			if v == 0 {
				continue
			}
			px := float64(x)*tile + pad
			py := float64(y)*tile + pad
			c := tileColor(v)
			dst.StrokeRect(px, py, tile-2*pad, tile-2*pad, c)
			dst.Text(px+tile/2-pad, py+tile/2-pad, strconv.Itoa(v), core.AlignCenter, c)
		}
	}

	dst.Text(w-10, 20, fmt.Sprintf("Score: %d", g.score), core.AlignRight, core.ColorWhite)
	if g.won && !g.gameOver {
		dst.Text(w/2, 20, fmt.Sprintf("%d reached!", g.cfg.Gameplay.WinTile), core.AlignCenter, core.ColorYellow)
	}

	if g.gameOver {
		gamekit.Banner(dst, "GAME OVER", core.ColorMagenta,
			gamekit.Line{Text: fmt.Sprintf("Score: %d", g.score), Color: core.ColorCyan},
			gamekit.Line{Text: "Press R to restart", Color: core.ColorWhite},
		)
	}
}

package tictactoe

import (
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
)

var markColors = map[Mark]core.Color{
	X: core.ColorMagenta,
	O: core.ColorCyan,
}

// Render draws the grid, marks, the winning line and the turn banner.
func (g *Game) Render(dst core.Canvas) {
	w, h := dst.Size()
	cell := w / Size
	pad := cell * 0.2

	for i := 1; i < Size; i++ {
		p := float64(i) * cell
		dst.Line(p, 0, p, h, core.ColorCyan)
		dst.Line(0, p, w, p, core.ColorCyan)
	}

	for i, m := range g.board {
		x := float64(i%Size) * cell
		y := float64(i/Size) * cell
		switch m {
		case X:
			dst.Line(x+pad, y+pad, x+cell-pad, y+cell-pad, markColors[X])
			dst.Line(x+cell-pad, y+pad, x+pad, y+cell-pad, markColors[X])
		case O:
			dst.FillCircle(x+cell/2, y+cell/2, cell/2-pad, markColors[O])
			dst.FillCircle(x+cell/2, y+cell/2, cell/2-pad-6, core.ColorBlack)
		}
	}

	if g.winLine >= 0 {
		l := lines[g.winLine]
		ax, ay := cellCentre(l[0], cell)
		bx, by := cellCentre(l[2], cell)
		dst.Line(ax, ay, bx, by, markColors[g.winner])
	}

	if !g.gameOver {
		dst.StrokeRect(float64(g.cursor.X)*cell, float64(g.cursor.Y)*cell, cell, cell, core.ColorYellow)
		label := "Player " + g.current.String() + "'s Turn"
		if g.aiPending {
			label = "AI is thinking..."
		}
		dst.Text(w/2, 30, label, core.AlignCenter, markColors[g.current])
	}
	gamekit.ModeLabel(dst, g.rt.Mode, "vs AI Mode", "2-Player Mode")

	if g.gameOver {
		gamekit.Banner(dst, "GAME OVER", core.ColorMagenta,
			gamekit.Line{Text: g.resultText(), Color: core.ColorCyan},
			gamekit.Line{Text: "Click to play again", Color: core.ColorWhite},
		)
	}
}

func cellCentre(i int, cell float64) (float64, float64) {
	return float64(i%Size)*cell + cell/2, float64(i/Size)*cell + cell/2
}

func (g *Game) resultText() string {
	switch {
	case g.winner == Empty:
		return "It's a Tie!"
	case !g.vsAI():
		return "Player " + g.winner.String() + " Wins!"
	case g.winner == X:
		return "You Win!"
	}
	return "AI Wins!"
}

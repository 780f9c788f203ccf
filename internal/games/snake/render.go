package snake

import (
	"fmt"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
)

var snakeColors = [2]core.Color{core.ColorGreen, core.ColorCyan}

// Render draws the board, both snakes, the food and the HUD.
func (g *Game) Render(dst core.Canvas) {
	cell := float64(max(g.cfg.Board.CellSize, 1))
	w, h := dst.Size()
	dst.StrokeRect(0, 0, w, h, core.ColorGray)

	for i := range g.snakes {
		if i == 1 && !g.versus() {
			break
		}
		for _, seg := range g.snakes[i].Body {
			dst.FillRect(float64(seg.X)*cell, float64(seg.Y)*cell, cell, cell, snakeColors[i])
		}
	}

	if g.food.InGrid(g.cols, g.rows) {
		dst.FillCircle(float64(g.food.X)*cell+cell/2, float64(g.food.Y)*cell+cell/2, cell/2, core.ColorMagenta)
	}

	if g.versus() {
		gamekit.Scores(dst, "P1", g.scores[0], snakeColors[0], "P2", g.scores[1], snakeColors[1])
		gamekit.Controls(dst, "P1: arrows", core.AlignLeft)
		gamekit.Controls(dst, "P2: W/A/S/D", core.AlignRight)
	} else {
		gamekit.Score(dst, "Score", g.scores[0])
	}
	gamekit.ModeLabel(dst, g.rt.Mode, "1-Player Mode", "2-Player Mode")

	if !g.gameOver {
		return
	}
	if g.versus() {
		color := core.ColorWhite
		if g.winner != core.PlayerNone {
			color = snakeColors[g.winner-1]
		}
		gamekit.GameOver(dst,
			gamekit.Line{Text: gamekit.Winner(g.winner, "Player 2"), Color: color},
			gamekit.Line{Text: fmt.Sprintf("P1: %d  P2: %d", g.scores[0], g.scores[1]), Color: core.ColorWhite},
		)
		return
	}
	gamekit.GameOver(dst, gamekit.Line{Text: fmt.Sprintf("Score: %d", g.scores[0]), Color: core.ColorCyan})
}

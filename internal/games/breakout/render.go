package breakout

import (
	"fmt"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
)

// Render draws the wall, paddle, ball and HUD.
func (g *Game) Render(dst core.Canvas) {
	w, h := dst.Size()

	// Fixed star pattern
	for i := 0; i < 50; i++ {
		x := float64((i * 19) % int(w))
		y := float64((i * 17) % int(h))
		size := float64(i%3 + 1)
		dst.FillRect(x, y, size, size, core.ColorGray)
	}

	for _, b := range g.level.Bricks {
		if !b.Alive {
			continue
		}
		dst.FillRect(b.Box.X, b.Box.Y, b.Box.W, b.Box.H, b.Color())
	}

	dst.FillRect(g.paddle.X, g.paddle.Y, g.paddle.W, g.paddle.H, core.ColorCyan)
	dst.FillCircle(g.ball.X, g.ball.Y, g.ball.Radius, core.ColorMagenta)

	dst.Text(w/2, 50, fmt.Sprintf("Score: %d", g.score), core.AlignCenter, core.ColorWhite)
	dst.Text(w-10, 30, fmt.Sprintf("Lives: %d", g.lives), core.AlignRight, core.ColorWhite)

	switch {
	case g.won:
		gamekit.Banner(dst, "YOU WIN!", core.ColorGreen,
			gamekit.Line{Text: fmt.Sprintf("Final Score: %d", g.score), Color: core.ColorCyan},
			gamekit.Line{Text: "Click or press SPACE to restart", Color: core.ColorWhite},
		)
	case g.gameOver:
		gamekit.Banner(dst, "GAME OVER", core.ColorMagenta,
			gamekit.Line{Text: fmt.Sprintf("Score: %d", g.score), Color: core.ColorCyan},
			gamekit.Line{Text: "Click or press SPACE to restart", Color: core.ColorWhite},
		)
	default:
		dst.Text(w/2, h-10, "Move with mouse or arrow keys", core.AlignCenter, core.ColorGray)
	}
}

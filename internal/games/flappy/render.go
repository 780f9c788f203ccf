package flappy

import (
	"strconv"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
)

// Render draws the sky, pipes, bird and score.
func (g *Game) Render(dst core.Canvas) {
	w, h := dst.Size()
	g.stars.Draw(dst)

	pw := g.cfg.Pipes.Width
	for _, p := range g.pipes.Pipes() {
		dst.FillRect(p.X, 0, pw, p.TopHeight, core.ColorGreen)
		dst.FillRect(p.X, p.BottomY, pw, h-p.BottomY, core.ColorGreen)
	}

	size := g.cfg.Bird.Size
	dst.FillCircle(g.birdX+size/2, g.birdY+size/2, size/2, core.ColorMagenta)
	dst.FillCircle(g.birdX+size*0.7, g.birdY+size*0.4, size/10, core.ColorBlack)

	dst.Text(w/2, 50, strconv.Itoa(g.score), core.AlignCenter, core.ColorWhite)

	if g.gameOver {
		gamekit.GameOver(dst, gamekit.Line{Text: "Score: " + strconv.Itoa(g.score), Color: core.ColorCyan})
	}
}

package spacerace

import (
	"strconv"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
)

var shipColors = [2]core.Color{core.ColorCyan, core.ColorMagenta}

// Render draws the field, ships, asteroids and scores.
func (g *Game) Render(dst core.Canvas) {
	w, h := dst.Size()
	g.stars.Draw(dst)

	for y := 0.0; y < h; y += 20 {
		dst.Line(w/2, y, w/2, y+5, core.ColorGray)
	}

	dst.Text(w/4, 30, strconv.Itoa(g.ships[0].Score), core.AlignCenter, shipColors[0])
	dst.Text(w/4*3, 30, strconv.Itoa(g.ships[1].Score), core.AlignCenter, shipColors[1])

	size := g.cfg.Ship.Size
	for i, s := range g.ships {
		drawShip(dst, s.X, s.Y, size, shipColors[i])
	}

	for _, a := range g.asteroids {
		dst.FillCircle(a.X, a.Y, a.Size, core.ColorWhite)
	}

	gamekit.ModeLabel(dst, g.rt.Mode, "1-Player Mode", "2-Player Mode")

	if g.gameOver {
		title := "DRAW!"
		switch g.winner {
		case core.Player1:
			title = "P1 WINS!"
		case core.Player2:
			title = "P2 WINS!"
		}
		gamekit.Banner(dst, title, core.ColorMagenta,
			gamekit.Line{Text: "Click to restart", Color: core.ColorWhite},
		)
	}
}

// drawShip outlines the upward-pointing triangle.
func drawShip(dst core.Canvas, x, y, size float64, c core.Color) {
	tipY := y - size
	baseY := y + size/2
	dst.Line(x, tipY, x-size/2, baseY, c)
	dst.Line(x-size/2, baseY, x+size/2, baseY, c)
	dst.Line(x+size/2, baseY, x, tipY, c)
}

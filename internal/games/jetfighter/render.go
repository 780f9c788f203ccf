package jetfighter

import (
	"math"
	"strconv"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
)

var jetColors = [2]core.Color{core.ColorCyan, core.ColorMagenta}

// Render draws the field, jets, missiles and scores.
func (g *Game) Render(dst core.Canvas) {
	w, _ := dst.Size()
	g.stars.Draw(dst)

	dst.Text(30, 30, strconv.Itoa(g.jets[0].Score), core.AlignLeft, jetColors[0])
	dst.Text(w-30, 30, strconv.Itoa(g.jets[1].Score), core.AlignRight, jetColors[1])

	for i := range g.jets {
		j := &g.jets[i]
		if j.Alive {
			drawJet(dst, j, jetColors[i])
		}
		for _, m := range j.Missiles {
			dst.FillCircle(m.X, m.Y, 3, jetColors[i])
		}
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

// drawJet outlines an arrowhead pointing along the jet's heading.
func drawJet(dst core.Canvas, j *Jet, c core.Color) {
	point := func(dist, angle float64) (float64, float64) {
		sin, cos := math.Sincos(j.Angle + angle)
		return j.X + cos*dist, j.Y + sin*dist
	}
	noseX, noseY := point(15, 0)
	leftX, leftY := point(10, 2.5)
	rightX, rightY := point(10, -2.5)

	dst.Line(noseX, noseY, leftX, leftY, c)
	dst.Line(leftX, leftY, j.X, j.Y, c)
	dst.Line(j.X, j.Y, rightX, rightY, c)
	dst.Line(rightX, rightY, noseX, noseY, c)
}

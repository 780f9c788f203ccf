package pong

import (
	"strconv"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/gamekit"
)

// Render draws the court, paddles, ball and scores.
func (g *Game) Render(dst core.Canvas) {
	w, h := dst.Size()
	versus := g.rt.Mode == core.ModeVersus

	// Dashed centre line
	for y := 0.0; y < h; y += 20 {
		dst.Line(w/2, y, w/2, y+10, core.ColorCyan)
	}

	p2Color := core.ColorCyan
	if versus {
		p2Color = core.ColorGreen
	}
	pw, ph := g.cfg.Paddle.Width, g.cfg.Paddle.Height
	dst.FillRect(0, g.paddle1Y, pw, ph, core.ColorCyan)
	dst.FillRect(w-pw, g.paddle2Y, pw, ph, p2Color)

	r := g.cfg.Ball.Size / 2
	dst.FillCircle(g.ballX+r, g.ballY+r, r, core.ColorMagenta)

	dst.Text(w/4, 50, strconv.Itoa(g.score1), core.AlignCenter, core.ColorCyan)
	dst.Text(w/4*3, 50, strconv.Itoa(g.score2), core.AlignCenter, p2Color)

	if versus {
		gamekit.Controls(dst, "P1: up/down", core.AlignLeft)
		gamekit.Controls(dst, "P2: W/S", core.AlignRight)
	}
	gamekit.ModeLabel(dst, g.rt.Mode, "1-Player Mode", "2-Player Mode")

	if g.gameOver {
		gamekit.GameOver(dst, gamekit.Line{Text: g.winnerText(), Color: core.ColorCyan})
	}
}

func (g *Game) winnerText() string {
	if g.rt.Mode == core.ModeVersus {
		return gamekit.Winner(g.winner, "Player 2")
	}
	if g.winner == core.Player1 {
		return "You Win!"
	}
	return "Computer Wins!"
}

// Package breakout implements a Breakout-style brick breaker game.
package breakout

import (
	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
)

// rowColors colours the wall from the top row down, cycling.
var rowColors = []core.Color{
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorOrange,
}

// Brick represents a single brick in the wall.
type Brick struct {
	Box   core.Box
	Row   int
	Alive bool
}

// Level is the brick wall of one round, stored column by column.
type Level struct {
	Bricks []Brick
}

// NewLevel lays out cols×rows bricks. The layout is fixed: a wall that
// spills past the right edge is kept as configured.
func NewLevel(cfg config.BreakoutBricks) *Level {
	l := &Level{Bricks: make([]Brick, 0, cfg.Rows*cfg.Cols)}
	for c := 0; c < cfg.Cols; c++ {
		for r := 0; r < cfg.Rows; r++ {
			x := float64(c)*(cfg.Width+cfg.Padding) + cfg.OffsetLeft
			y := float64(r)*(cfg.Height+cfg.Padding) + cfg.OffsetTop
			l.Bricks = append(l.Bricks, Brick{
				Box:   core.NewBox(x, y, cfg.Width, cfg.Height),
				Row:   r,
				Alive: true,
			})
		}
	}
	return l
}

// CountAlive returns the number of remaining bricks.
func (l *Level) CountAlive() int {
	count := 0
	for _, b := range l.Bricks {
		if b.Alive {
			count++
		}
	}
	return count
}

// Color returns the brick's row colour.
func (b Brick) Color() core.Color {
	return rowColors[b.Row%len(rowColors)]
}

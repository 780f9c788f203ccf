// Package gamekit holds the drawing and bookkeeping helpers shared by the
// arcade games: backgrounds, banners, score lines and state digests.
package gamekit

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// NewRand returns the deterministic generator a round draws from.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Digest fingerprints a snapshot value. Snapshots are plain structs, so a
// marshal failure means a programming error; it yields 0.
func Digest(v any) uint64 {
	data, err := json.Marshal(v)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

// Star is one background dot.
type Star struct {
	X, Y, R float64
}

// Starfield is a static background of dots.
type Starfield []Star

// NewStarfield scatters n stars over a w×h field.
func NewStarfield(rng *rand.Rand, n int, w, h float64) Starfield {
	stars := make(Starfield, n)
	for i := range stars {
		stars[i] = Star{
			X: rng.Float64() * w,
			Y: rng.Float64() * h,
			R: 0.5 + rng.Float64(),
		}
	}
	return stars
}

// Draw paints the stars.
func (s Starfield) Draw(dst core.Canvas) {
	for _, st := range s {
		dst.FillCircle(st.X, st.Y, st.R, core.ColorGray)
	}
}

// Grid draws cell lines every size pixels.
func Grid(dst core.Canvas, size float64, c core.Color) {
	w, h := dst.Size()
	for x := 0.0; x < w; x += size {
		dst.Line(x, 0, x, h, c)
	}
	for y := 0.0; y < h; y += size {
		dst.Line(0, y, w, y, c)
	}
}

// Line is one row of banner text.
type Line struct {
	Text  string
	Color core.Color
}

// Banner draws a centred panel with a title and optional lines below it.
// Games draw it last so it covers the field.
func Banner(dst core.Canvas, title string, titleColor core.Color, lines ...Line) {
	w, h := dst.Size()
	boxH := 60 + float64(len(lines))*30
	boxY := h/2 - boxH/2
	dst.FillRect(20, boxY, w-40, boxH, core.ColorBlack)
	dst.StrokeRect(20, boxY, w-40, boxH, titleColor)

	dst.Text(w/2, boxY+30, title, core.AlignCenter, titleColor)
	for i, l := range lines {
		dst.Text(w/2, boxY+60+float64(i)*30, l.Text, core.AlignCenter, l.Color)
	}
}

// GameOver draws the standard end-of-round banner.
func GameOver(dst core.Canvas, lines ...Line) {
	lines = append(lines, Line{Text: "Click to restart", Color: core.ColorWhite})
	Banner(dst, "GAME OVER", core.ColorMagenta, lines...)
}

// Score draws a single-player score in the top-left corner.
func Score(dst core.Canvas, label string, score int) {
	dst.Text(10, 30, fmt.Sprintf("%s: %d", label, score), core.AlignLeft, core.ColorWhite)
}

// Scores draws both players' scores in the top corners.
func Scores(dst core.Canvas, left string, s1 int, c1 core.Color, right string, s2 int, c2 core.Color) {
	w, _ := dst.Size()
	dst.Text(10, 30, fmt.Sprintf("%s: %d", left, s1), core.AlignLeft, c1)
	dst.Text(w-10, 30, fmt.Sprintf("%s: %d", right, s2), core.AlignRight, c2)
}

// ModeLabel shows the active mode along the bottom edge.
func ModeLabel(dst core.Canvas, mode core.Mode, solo, versus string) {
	w, h := dst.Size()
	label := solo
	if mode == core.ModeVersus {
		label = versus
	}
	dst.Text(w/2, h-8, label+" [M]", core.AlignCenter, core.ColorGray)
}

// Controls prints a hint line in a bottom corner.
func Controls(dst core.Canvas, text string, align core.Align) {
	w, h := dst.Size()
	x := 10.0
	if align == core.AlignRight {
		x = w - 10
	}
	dst.Text(x, h-20, text, align, core.ColorGray)
}

// Restarts reports whether the frame asks to start a new round after the
// game ended: a fresh press of Restart, Confirm or Fire from anyone, or a
// click. Keys still held from play do not count.
func Restarts(in core.MultiInputFrame) bool {
	if in.AnyPressed(core.ActionRestart) || in.AnyPressed(core.ActionConfirm) || in.AnyPressed(core.ActionFire) {
		return true
	}
	_, _, clicked := in.Player1().Clicked()
	return clicked
}

// Winner names a player for banners.
func Winner(p core.PlayerID, p2Name string) string {
	switch p {
	case core.Player1:
		return "Player 1 Wins!"
	case core.Player2:
		return p2Name + " Wins!"
	}
	return "Draw!"
}

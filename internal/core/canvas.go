package core

import "math"

// Align controls horizontal text anchoring.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Canvas is the drawing surface games render into.
// Coordinates are logical pixels with the origin at the top-left corner.
// Games redraw the whole frame on every tick, so implementations keep no
// retained scene.
type Canvas interface {
	// Size returns the logical width and height.
	Size() (w, h float64)
	// Clear paints the whole surface with c.
	Clear(c Color)
	FillRect(x, y, w, h float64, c Color)
	StrokeRect(x, y, w, h float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	Line(x1, y1, x2, y2 float64, c Color)
	// Text draws s with its baseline row at y, anchored at x by align.
	Text(x, y float64, s string, align Align, c Color)
}

// Raster is a Canvas that rasterizes logical pixels onto a character Screen.
// Each cell covers (w/cols) x (h/rows) logical pixels.
type Raster struct {
	screen *Screen
	w, h   float64
}

// NewRaster creates a raster drawing into screen with a logical size of w x h.
func NewRaster(screen *Screen, w, h float64) *Raster {
	return &Raster{screen: screen, w: w, h: h}
}

// Screen returns the underlying character buffer.
func (r *Raster) Screen() *Screen {
	return r.screen
}

func (r *Raster) Size() (float64, float64) {
	return r.w, r.h
}

func (r *Raster) scale() (sx, sy float64) {
	return float64(r.screen.Width()) / r.w, float64(r.screen.Height()) / r.h
}

// cellX maps a logical x coordinate to a column.
func (r *Raster) cellX(x float64) int {
	sx, _ := r.scale()
	return int(math.Floor(x * sx))
}

// cellY maps a logical y coordinate to a row.
func (r *Raster) cellY(y float64) int {
	_, sy := r.scale()
	return int(math.Floor(y * sy))
}

func (r *Raster) Clear(c Color) {
	r.screen.Clear()
}

func (r *Raster) FillRect(x, y, w, h float64, c Color) {
	x0, y0 := r.cellX(x), r.cellY(y)
	x1, y1 := r.cellX(x+w-0.001), r.cellY(y+h-0.001)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			r.screen.Set(cx, cy, '█', c)
		}
	}
}

func (r *Raster) StrokeRect(x, y, w, h float64, c Color) {
	x0, y0 := r.cellX(x), r.cellY(y)
	x1, y1 := r.cellX(x+w-0.001), r.cellY(y+h-0.001)
	r.screen.DrawBox(NewRect(x0, y0, x1-x0+1, y1-y0+1), c)
}

func (r *Raster) FillCircle(cx, cy, radius float64, c Color) {
	sx, sy := r.scale()
	x0, y0 := r.cellX(cx-radius), r.cellY(cy-radius)
	x1, y1 := r.cellX(cx+radius), r.cellY(cy+radius)
	painted := false
	for row := y0; row <= y1; row++ {
		for col := x0; col <= x1; col++ {
			// Center of the cell in logical pixels
			px := (float64(col) + 0.5) / sx
			py := (float64(row) + 0.5) / sy
			if Dist(px, py, cx, cy) <= radius {
				r.screen.Set(col, row, '█', c)
				painted = true
			}
		}
	}
	// Small shapes still need to be visible
	if !painted {
		r.screen.Set(r.cellX(cx), r.cellY(cy), '●', c)
	}
}

func (r *Raster) Line(x1, y1, x2, y2 float64, c Color) {
	cx0, cy0 := r.cellX(x1), r.cellY(y1)
	cx1, cy1 := r.cellX(x2), r.cellY(y2)
	dx, dy := Abs(cx1-cx0), -Abs(cy1-cy0)
	stepX, stepY := 1, 1
	if cx0 > cx1 {
		stepX = -1
	}
	if cy0 > cy1 {
		stepY = -1
	}
	e := dx + dy
	for {
		r.screen.Set(cx0, cy0, '·', c)
		if cx0 == cx1 && cy0 == cy1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			cx0 += stepX
		}
		if e2 <= dx {
			e += dx
			cy0 += stepY
		}
	}
}

func (r *Raster) Text(x, y float64, s string, align Align, c Color) {
	n := len([]rune(s))
	col := r.cellX(x)
	switch align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n
	}
	row := r.cellY(y)
	r.screen.DrawText(col, row, s, c)
}

// DrawOp is one recorded canvas command.
type DrawOp struct {
	Op    string  `json:"op"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	W     float64 `json:"w,omitempty"`
	H     float64 `json:"h,omitempty"`
	R     float64 `json:"r,omitempty"`
	X2    float64 `json:"x2,omitempty"`
	Y2    float64 `json:"y2,omitempty"`
	Text  string  `json:"text,omitempty"`
	Align string  `json:"align,omitempty"`
	Color string  `json:"color"`
}

// DrawList is a Canvas that records draw commands instead of painting.
// The web frontend ships the ops to a browser canvas; tests use it to
// observe what a frame drew.
type DrawList struct {
	w, h float64
	Ops  []DrawOp
}

// NewDrawList creates an empty recording canvas of the given logical size.
func NewDrawList(w, h float64) *DrawList {
	return &DrawList{w: w, h: h}
}

func (d *DrawList) Size() (float64, float64) {
	return d.w, d.h
}

// Reset drops all recorded ops.
func (d *DrawList) Reset() {
	d.Ops = d.Ops[:0]
}

// Len returns the number of recorded ops.
func (d *DrawList) Len() int {
	return len(d.Ops)
}

// Texts returns the strings of all recorded text ops in draw order.
func (d *DrawList) Texts() []string {
	var out []string
	for _, op := range d.Ops {
		if op.Op == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

func (d *DrawList) Clear(c Color) {
	d.Ops = append(d.Ops[:0], DrawOp{Op: "clear", W: d.w, H: d.h, Color: c.Hex()})
}

func (d *DrawList) FillRect(x, y, w, h float64, c Color) {
	d.Ops = append(d.Ops, DrawOp{Op: "rect", X: x, Y: y, W: w, H: h, Color: c.Hex()})
}

func (d *DrawList) StrokeRect(x, y, w, h float64, c Color) {
	d.Ops = append(d.Ops, DrawOp{Op: "stroke", X: x, Y: y, W: w, H: h, Color: c.Hex()})
}

func (d *DrawList) FillCircle(cx, cy, r float64, c Color) {
	d.Ops = append(d.Ops, DrawOp{Op: "circle", X: cx, Y: cy, R: r, Color: c.Hex()})
}

func (d *DrawList) Line(x1, y1, x2, y2 float64, c Color) {
	d.Ops = append(d.Ops, DrawOp{Op: "line", X: x1, Y: y1, X2: x2, Y2: y2, Color: c.Hex()})
}

func (d *DrawList) Text(x, y float64, s string, align Align, c Color) {
	d.Ops = append(d.Ops, DrawOp{Op: "text", X: x, Y: y, Text: s, Align: align.String(), Color: c.Hex()})
}

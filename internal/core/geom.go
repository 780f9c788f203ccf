// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned rectangle in logical canvas pixels.
// Paddles, pipes, bricks and tiles are all boxes.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Intersects returns true if this box overlaps another.
// Touching edges do not count as overlap.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point lies inside the box.
// The left and top edges are inclusive, the right and bottom edges exclusive.
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// CircleHitsBox reports whether the bounding square of a circle overlaps the box.
// This is the coarse ball-versus-brick test used by paddle games.
func CircleHitsBox(cx, cy, r float64, b Box) bool {
	return cx+r > b.X && cx-r < b.Right() && cy+r > b.Y && cy-r < b.Bottom()
}

// Dist returns the euclidean distance between two points.
func Dist(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// CirclesOverlap reports whether two circles intersect.
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	return Dist(ax, ay, bx, by) < ar+br
}

// Cell is a position on an integer grid.
type Cell struct {
	X, Y int
}

// Snap converts a canvas coordinate to the grid cell that contains it.
func Snap(x, y, cellSize float64) Cell {
	return Cell{X: int(math.Floor(x / cellSize)), Y: int(math.Floor(y / cellSize))}
}

// InGrid reports whether the cell lies inside a cols x rows grid.
func (c Cell) InGrid(cols, rows int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < cols && c.Y < rows
}

// Wrap folds v into [0, size) for toroidal playfields.
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return v
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

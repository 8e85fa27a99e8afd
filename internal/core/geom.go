// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea or Ebiten)
// to keep simulation logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are world pixels with a top-left origin; y grows downward.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether this rectangle intersects another.
// Intervals are half-open, so rectangles sharing an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Overlaps is the free-function form of Rect.Overlaps.
func Overlaps(a, b Rect) bool {
	return a.Overlaps(b)
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Bounds describes the playable world area.
type Bounds struct {
	W, H float64
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

// Approach moves v toward zero by step without crossing it.
func Approach(v, step float64) float64 {
	return math.Max(0, v-step)
}

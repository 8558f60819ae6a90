// Package geometry computes where the overlay window sits on screen.
package geometry

import "math"

// Point is a position in global screen coordinates
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the offset from q to p
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is a window rectangle in global screen coordinates
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// TopLeft returns the top-left corner of the rectangle
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// Center returns the center point of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Bottom returns the y coordinate just below the rectangle
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Screen describes a display in global screen coordinates
type Screen struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Origin returns the top-left corner of the screen
func (s Screen) Origin() Point {
	return Point{X: s.X, Y: s.Y}
}

// Placement holds the docking parameters from the config
type Placement struct {
	ScaleX       float64
	ScaleY       float64
	BottomMargin int
	SideOffset   int
}

// Dock places a window of the scaled size horizontally centered on the
// screen, shifted by SideOffset, with its bottom edge BottomMargin pixels
// above the screen bottom. The result is not clamped to the screen.
func Dock(s Screen, p Placement) Rect {
	w := int(math.Floor(float64(s.W) * p.ScaleX))
	h := int(math.Floor(float64(s.H) * p.ScaleY))

	return Rect{
		X: s.X + floorDiv(s.W-w, 2) + p.SideOffset,
		Y: s.Y + s.H - h - p.BottomMargin,
		W: w,
		H: h,
	}
}

// floorDiv divides rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

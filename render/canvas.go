// Package render draws grid blocks onto a per-frame drawing surface.
//
// The surface is a Canvas handed to every draw call by the frame loop.
// Nothing in this package keeps a Canvas past the call that received it.
package render

import (
	"image/color"

	"snake-draw/grid"
)

// Rect is an axis-aligned pixel rectangle given by its top-left corner and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// Min returns the top-left corner.
func (r Rect) Min() grid.Coord {
	return grid.Coord{X: r.X, Y: r.Y}
}

// Max returns the bottom-right corner.
func (r Rect) Max() grid.Coord {
	return grid.Coord{X: r.X + r.W, Y: r.Y + r.H}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() grid.Coord {
	return grid.Coord{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Corners returns the four corners clockwise from the top-left.
func (r Rect) Corners() []grid.Coord {
	return []grid.Coord{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
}

// Canvas is the drawing context for one frame.
type Canvas interface {
	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c color.RGBA)
	// FillEllipse fills the ellipse inscribed in bounds.
	FillEllipse(bounds Rect, c color.RGBA)
	// FillPolygon fills a convex polygon.
	FillPolygon(pts []grid.Coord, c color.RGBA)
}

// Sizer is implemented by canvases that know their pixel size.
type Sizer interface {
	Size() (w, h float64)
}

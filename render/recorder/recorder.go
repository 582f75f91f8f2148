// Package recorder provides a Canvas that stores primitives instead of
// drawing them.
package recorder

import (
	"fmt"
	"image/color"

	"snake-draw/grid"
	"snake-draw/render"
)

// Kind identifies a recorded primitive.
type Kind int

const (
	Rect Kind = iota
	Ellipse
	Polygon
)

func (k Kind) String() string {
	switch k {
	case Rect:
		return "rect"
	case Ellipse:
		return "ellipse"
	case Polygon:
		return "polygon"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Op is one recorded draw call. Bounds is set for Rect and Ellipse,
// Points for Polygon.
type Op struct {
	Kind   Kind
	Bounds render.Rect
	Points []grid.Coord
	Color  color.RGBA
}

func (o Op) String() string {
	if o.Kind == Polygon {
		return fmt.Sprintf("%s %v rgba(%d,%d,%d,%d)", o.Kind, o.Points, o.Color.R, o.Color.G, o.Color.B, o.Color.A)
	}
	return fmt.Sprintf("%s [%g %g %g %g] rgba(%d,%d,%d,%d)", o.Kind,
		o.Bounds.X, o.Bounds.Y, o.Bounds.W, o.Bounds.H, o.Color.R, o.Color.G, o.Color.B, o.Color.A)
}

// Canvas records every primitive it receives.
type Canvas struct {
	ops    []Op
	width  float64
	height float64
}

// New creates a recorder reporting the given pixel size.
func New(width, height float64) *Canvas {
	return &Canvas{width: width, height: height}
}

func (c *Canvas) FillRect(r render.Rect, clr color.RGBA) {
	c.ops = append(c.ops, Op{Kind: Rect, Bounds: r, Color: clr})
}

func (c *Canvas) FillEllipse(bounds render.Rect, clr color.RGBA) {
	c.ops = append(c.ops, Op{Kind: Ellipse, Bounds: bounds, Color: clr})
}

func (c *Canvas) FillPolygon(pts []grid.Coord, clr color.RGBA) {
	// Copy so callers can reuse their slice.
	c.ops = append(c.ops, Op{Kind: Polygon, Points: append([]grid.Coord(nil), pts...), Color: clr})
}

func (c *Canvas) Size() (w, h float64) {
	return c.width, c.height
}

// Ops returns the primitives recorded since the last Reset.
func (c *Canvas) Ops() []Op {
	return c.ops
}

// Reset discards recorded primitives. Slices returned by Ops stay intact.
func (c *Canvas) Reset() {
	c.ops = nil
}

package render

import (
	"image/color"
	"math"

	"golang.org/x/image/math/f64"

	"snake-draw/grid"
)

// ellipseSegments is used when a transform forces an ellipse into a polygon.
const ellipseSegments = 32

// Identity is the transform that leaves coordinates unchanged.
var Identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// Translate returns a transform moving coordinates by (dx, dy).
func Translate(dx, dy float64) f64.Aff3 {
	return f64.Aff3{1, 0, dx, 0, 1, dy}
}

// Scale returns a transform scaling coordinates about the origin.
func Scale(sx, sy float64) f64.Aff3 {
	return f64.Aff3{sx, 0, 0, 0, sy, 0}
}

// Mul returns the transform that applies b and then a.
func Mul(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3], a[0]*b[1] + a[1]*b[4], a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3], a[3]*b[1] + a[4]*b[4], a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

// Apply maps c through m.
func Apply(m f64.Aff3, c grid.Coord) grid.Coord {
	return grid.Coord{
		X: m[0]*c.X + m[1]*c.Y + m[2],
		Y: m[3]*c.X + m[4]*c.Y + m[5],
	}
}

// EllipsePoints approximates the ellipse inscribed in bounds with a
// polygon of at least 8 vertices, clockwise in screen space.
func EllipsePoints(bounds Rect, segments int) []grid.Coord {
	if segments < 8 {
		segments = 8
	}
	center := bounds.Center()
	rx, ry := bounds.W/2, bounds.H/2
	pts := make([]grid.Coord, segments)
	for i := range pts {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		pts[i] = center.Add(rx*math.Cos(angle), ry*math.Sin(angle))
	}
	return pts
}

// Transform wraps cv so every primitive is mapped through m before drawing.
// Nested transforms collapse into one.
func Transform(cv Canvas, m f64.Aff3) Canvas {
	if t, ok := cv.(*transformed); ok {
		return &transformed{dst: t.dst, m: Mul(t.m, m)}
	}
	return &transformed{dst: cv, m: m}
}

type transformed struct {
	dst Canvas
	m   f64.Aff3
}

// axisAligned reports whether rectangles stay rectangles under m.
func (t *transformed) axisAligned() bool {
	return t.m[1] == 0 && t.m[3] == 0
}

func (t *transformed) mapRect(r Rect) Rect {
	lo, hi := Apply(t.m, r.Min()), Apply(t.m, r.Max())
	return Rect{
		X: math.Min(lo.X, hi.X),
		Y: math.Min(lo.Y, hi.Y),
		W: math.Abs(hi.X - lo.X),
		H: math.Abs(hi.Y - lo.Y),
	}
}

func (t *transformed) mapPoints(pts []grid.Coord) []grid.Coord {
	out := make([]grid.Coord, len(pts))
	for i, p := range pts {
		out[i] = Apply(t.m, p)
	}
	return out
}

func (t *transformed) FillRect(r Rect, c color.RGBA) {
	if t.axisAligned() {
		t.dst.FillRect(t.mapRect(r), c)
		return
	}
	t.dst.FillPolygon(t.mapPoints(r.Corners()), c)
}

func (t *transformed) FillEllipse(bounds Rect, c color.RGBA) {
	if t.axisAligned() {
		t.dst.FillEllipse(t.mapRect(bounds), c)
		return
	}
	t.dst.FillPolygon(t.mapPoints(EllipsePoints(bounds, ellipseSegments)), c)
}

func (t *transformed) FillPolygon(pts []grid.Coord, c color.RGBA) {
	t.dst.FillPolygon(t.mapPoints(pts), c)
}

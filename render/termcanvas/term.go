// Package termcanvas draws frames onto a terminal through tcell.
//
// A grid cell is two terminal columns wide and one row tall, so every
// terminal column covers half a cell. A column is painted when the point
// at its center lies inside the primitive. Primitives too small to cover
// any center (the eyes) leave a dot glyph on the column holding their
// center instead.
package termcanvas

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"snake-draw/grid"
	"snake-draw/render"
)

const (
	colWidth  = grid.CellSize / 2
	rowHeight = grid.CellSize
	dotGlyph  = '•'
)

// Screen is the part of tcell.Screen the canvas draws through.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	GetContent(x, y int) (primary rune, combining []rune, style tcell.Style, width int)
	Size() (width, height int)
}

// Canvas paints terminal columns on a Screen.
type Canvas struct {
	screen Screen
}

// New wraps screen for one frame.
func New(screen Screen) *Canvas {
	return &Canvas{screen: screen}
}

// Size reports the screen in canvas pixels.
func (c *Canvas) Size() (w, h float64) {
	cols, rows := c.screen.Size()
	return float64(cols) * colWidth, float64(rows) * rowHeight
}

func (c *Canvas) FillRect(r render.Rect, clr color.RGBA) {
	c.fill(r, clr, func(p grid.Coord) bool {
		return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
	})
}

func (c *Canvas) FillEllipse(bounds render.Rect, clr color.RGBA) {
	center := bounds.Center()
	rx, ry := bounds.W/2, bounds.H/2
	c.fill(bounds, clr, func(p grid.Coord) bool {
		if rx <= 0 || ry <= 0 {
			return false
		}
		nx, ny := (p.X-center.X)/rx, (p.Y-center.Y)/ry
		return nx*nx+ny*ny <= 1
	})
}

func (c *Canvas) FillPolygon(pts []grid.Coord, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	c.fill(boundsOf(pts), clr, func(p grid.Coord) bool {
		return insidePolygon(pts, p)
	})
}

// fill paints every column whose center is inside; a primitive too small
// to cover any center leaves a dot, an empty one leaves nothing.
func (c *Canvas) fill(bounds render.Rect, clr color.RGBA, inside func(grid.Coord) bool) {
	cols, rows := c.screen.Size()
	x0, x1 := span(bounds.X, bounds.X+bounds.W, colWidth, cols)
	y0, y1 := span(bounds.Y, bounds.Y+bounds.H, rowHeight, rows)

	style := tcell.StyleDefault.Background(rgb(clr))
	painted := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if inside(sample(x, y)) {
				c.screen.SetContent(x, y, ' ', nil, style)
				painted = true
			}
		}
	}
	if !painted && bounds.W > 0 && bounds.H > 0 {
		c.dot(bounds.Center(), clr)
	}
}

// dot marks the column under p, keeping whatever background it has.
func (c *Canvas) dot(p grid.Coord, clr color.RGBA) {
	cols, rows := c.screen.Size()
	x, y := int(math.Floor(p.X/colWidth)), int(math.Floor(p.Y/rowHeight))
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	_, _, style, _ := c.screen.GetContent(x, y)
	c.screen.SetContent(x, y, dotGlyph, nil, style.Foreground(rgb(clr)))
}

// sample is the center of terminal column x on row y.
func sample(x, y int) grid.Coord {
	return grid.Coord{X: (float64(x) + 0.5) * colWidth, Y: (float64(y) + 0.5) * rowHeight}
}

// span returns the half-open range of columns or rows whose centers may
// fall inside [lo, hi), clipped to [0, limit).
func span(lo, hi, size float64, limit int) (int, int) {
	from := int(math.Max(0, math.Floor(lo/size)))
	to := int(math.Min(float64(limit), math.Ceil(hi/size)))
	if to < from {
		to = from
	}
	return from, to
}

func boundsOf(pts []grid.Coord) render.Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return render.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// insidePolygon is the even-odd crossing test.
func insidePolygon(pts []grid.Coord, p grid.Coord) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Package rlcanvas draws frames with raylib's immediate-mode API.
package rlcanvas

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-draw/grid"
	"snake-draw/render"
)

// Canvas forwards primitives to raylib. It is only valid between
// BeginDrawing and EndDrawing, so obtain one through Frame.
type Canvas struct{}

// Frame clears the window to bg, lets fn draw the frame and presents it.
func Frame(bg color.RGBA, fn func(cv render.Canvas)) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(bg)
	fn(Canvas{})
}

func (Canvas) Size() (w, h float64) {
	return float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
}

func (Canvas) FillRect(r render.Rect, c color.RGBA) {
	rl.DrawRectangleRec(rl.Rectangle{
		X:      float32(r.X),
		Y:      float32(r.Y),
		Width:  float32(r.W),
		Height: float32(r.H),
	}, c)
}

func (cv Canvas) FillEllipse(bounds render.Rect, c color.RGBA) {
	center := bounds.Center()
	if bounds.W == bounds.H {
		rl.DrawCircleV(vec(center), float32(bounds.W/2), c)
		return
	}
	// DrawEllipse only takes integer centers; go through a polygon instead.
	cv.FillPolygon(render.EllipsePoints(bounds, 32), c)
}

func (Canvas) FillPolygon(pts []grid.Coord, c color.RGBA) {
	for _, tri := range fan(pts) {
		rl.DrawTriangle(vec(tri[0]), vec(tri[1]), vec(tri[2]), c)
	}
}

func vec(c grid.Coord) rl.Vector2 {
	return rl.Vector2{X: float32(c.X), Y: float32(c.Y)}
}

// fan splits a convex polygon into triangles wound counter-clockwise on
// screen, which is the only winding raylib draws.
func fan(pts []grid.Coord) [][3]grid.Coord {
	if len(pts) < 3 {
		return nil
	}
	ordered := pts
	if signedArea(pts) > 0 {
		// Positive area with y pointing down is clockwise on screen.
		ordered = make([]grid.Coord, len(pts))
		for i, p := range pts {
			ordered[len(pts)-1-i] = p
		}
	}
	tris := make([][3]grid.Coord, 0, len(ordered)-2)
	for i := 1; i < len(ordered)-1; i++ {
		tris = append(tris, [3]grid.Coord{ordered[0], ordered[i], ordered[i+1]})
	}
	return tris
}

// signedArea is the shoelace sum over the vertices.
func signedArea(pts []grid.Coord) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

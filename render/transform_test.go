package render_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
	"golang.org/x/image/math/f64"

	"snake-draw/grid"
	"snake-draw/render"
	"snake-draw/render/recorder"
)

func TestTransform_ScaleAndTranslate(t *testing.T) {
	rec := recorder.New(0, 0)
	cv := render.Transform(rec, render.Mul(render.Translate(10, 20), render.Scale(2, 2)))

	render.NewBlock(grid.NewPosition(1, 1), render.Square).Draw(colornames.Red, cv)
	render.NewBlock(grid.NewPosition(0, 0), render.Circle).Draw(colornames.Red, cv)
	render.NewBlock(grid.NewPosition(0, 0), render.Triangle).Draw(colornames.Red, cv)

	ops := rec.Ops()
	require.Len(t, ops, 3)
	assert.Equal(t, render.Rect{X: 34, Y: 44, W: 24, H: 24}, ops[0].Bounds)
	assert.Equal(t, recorder.Ellipse, ops[1].Kind)
	assert.Equal(t, render.Rect{X: 10, Y: 20, W: 24, H: 24}, ops[1].Bounds)
	assert.Equal(t, []grid.Coord{{X: 34, Y: 20}, {X: 10, Y: 44}, {X: 34, Y: 44}}, ops[2].Points)
}

func TestTransform_NestedCollapses(t *testing.T) {
	rec := recorder.New(0, 0)
	cv := render.Transform(render.Transform(rec, render.Translate(5, 5)), render.Scale(3, 3))

	render.DrawRectangle(grid.NewPosition(1, 0), 1, 1, colornames.Blue, cv)
	require.Len(t, rec.Ops(), 1)
	assert.Equal(t, render.Rect{X: 41, Y: 5, W: 36, H: 36}, rec.Ops()[0].Bounds)
}

func TestTransform_NegativeScaleNormalisesRect(t *testing.T) {
	rec := recorder.New(0, 0)
	cv := render.Transform(rec, render.Scale(-1, 1))

	render.DrawRectangle(grid.NewPosition(0, 0), 2, 1, colornames.Blue, cv)
	assert.Equal(t, render.Rect{X: -24, Y: 0, W: 24, H: 12}, rec.Ops()[0].Bounds)
}

func TestTransform_RotationProducesPolygons(t *testing.T) {
	rec := recorder.New(0, 0)
	// 90° rotation: (x, y) -> (-y, x)
	cv := render.Transform(rec, f64.Aff3{0, -1, 0, 1, 0, 0})

	render.NewBlock(grid.NewPosition(0, 0), render.Square).Draw(colornames.Red, cv)
	render.NewBlock(grid.NewPosition(0, 0), render.Circle).Draw(colornames.Red, cv)

	ops := rec.Ops()
	require.Len(t, ops, 2)
	assert.Equal(t, recorder.Polygon, ops[0].Kind)
	assert.Equal(t, []grid.Coord{{X: 0, Y: 0}, {X: 0, Y: 12}, {X: -12, Y: 12}, {X: -12, Y: 0}}, ops[0].Points)
	assert.Equal(t, recorder.Polygon, ops[1].Kind)
	for _, p := range ops[1].Points {
		// rotated circle of radius 6 centered at (-6, 6)
		assert.InDelta(t, 6, math.Hypot(p.X+6, p.Y-6), 1e-9)
	}
}

func TestEllipsePoints(t *testing.T) {
	pts := render.EllipsePoints(render.Rect{X: 0, Y: 0, W: 20, H: 10}, 3)
	require.Len(t, pts, 8)
	assert.InDelta(t, 20, pts[0].X, 1e-9)
	assert.InDelta(t, 5, pts[0].Y, 1e-9)
	for _, p := range pts {
		nx, ny := (p.X-10)/10, (p.Y-5)/5
		assert.InDelta(t, 1, nx*nx+ny*ny, 1e-9)
	}
}

func TestApplyIdentity(t *testing.T) {
	c := grid.NewCoord(3.5, -2)
	assert.Equal(t, c, render.Apply(render.Identity, c))
}

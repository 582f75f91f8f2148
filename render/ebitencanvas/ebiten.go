// Package ebitencanvas draws frames onto an ebiten image.
package ebitencanvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"snake-draw/grid"
	"snake-draw/render"
)

const ellipseSegments = 32

// whiteImage is the source texture for filled paths.
var whiteImage *ebiten.Image

func white() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(1, 1)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}

// Canvas draws onto the screen image handed to Game.Draw.
type Canvas struct {
	dst       *ebiten.Image
	antialias bool
}

// New wraps dst for one frame.
func New(dst *ebiten.Image, antialias bool) *Canvas {
	return &Canvas{dst: dst, antialias: antialias}
}

func (c *Canvas) Size() (w, h float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) FillRect(r render.Rect, clr color.RGBA) {
	vector.FillRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, c.antialias)
}

func (c *Canvas) FillEllipse(bounds render.Rect, clr color.RGBA) {
	c.FillPolygon(render.EllipsePoints(bounds, ellipseSegments), clr)
}

func (c *Canvas) FillPolygon(pts []grid.Coord, clr color.RGBA) {
	path := polygonPath(pts)
	if path == nil {
		return
	}
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	tint(vs, clr)

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = c.antialias
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	c.dst.DrawTriangles(vs, is, white(), op)
}

func polygonPath(pts []grid.Coord) *vector.Path {
	if len(pts) < 3 {
		return nil
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	return &path
}

// tint sets every vertex to the premultiplied color.
func tint(vs []ebiten.Vertex, clr color.RGBA) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
}

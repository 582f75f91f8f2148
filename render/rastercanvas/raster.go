// Package rastercanvas rasterizes frames in software into an RGBA image.
package rastercanvas

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/vector"

	"snake-draw/grid"
	"snake-draw/render"
)

const ellipseSegments = 48

// Canvas draws primitives into an in-memory image.
type Canvas struct {
	img *image.RGBA
	r   *vector.Rasterizer
}

// New creates a transparent canvas of w x h pixels.
func New(w, h int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		r:   vector.NewRasterizer(w, h),
	}
}

// Clear fills the whole image with c.
func (c *Canvas) Clear(clr color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Size() (w, h float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) FillRect(r render.Rect, clr color.RGBA) {
	c.fill(r.Corners(), clr)
}

func (c *Canvas) FillEllipse(bounds render.Rect, clr color.RGBA) {
	c.fill(render.EllipsePoints(bounds, ellipseSegments), clr)
}

func (c *Canvas) FillPolygon(pts []grid.Coord, clr color.RGBA) {
	c.fill(pts, clr)
}

func (c *Canvas) fill(pts []grid.Coord, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	b := c.img.Bounds()
	c.r.Reset(b.Dx(), b.Dy())
	c.r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		c.r.LineTo(float32(p.X), float32(p.Y))
	}
	c.r.ClosePath()
	c.r.Draw(c.img, b, image.NewUniform(clr), image.Point{})
}

// WritePNG encodes the current image as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return errors.Wrap(err, "encode png")
	}
	return nil
}

package rastercanvas

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"snake-draw/grid"
	"snake-draw/render"
)

var transparent = color.RGBA{}

func TestSquareFillsItsCellOnly(t *testing.T) {
	c := New(36, 36)
	render.NewBlock(grid.NewPosition(1, 1), render.Square).Draw(colornames.Red, c)

	img := c.Image()
	assert.Equal(t, colornames.Red, img.RGBAAt(12, 12))
	assert.Equal(t, colornames.Red, img.RGBAAt(23, 23))
	assert.Equal(t, transparent, img.RGBAAt(11, 11))
	assert.Equal(t, transparent, img.RGBAAt(24, 24))
}

func TestTriangleFillsLowerRightHalf(t *testing.T) {
	c := New(12, 12)
	render.NewBlock(grid.NewPosition(0, 0), render.Triangle).Draw(colornames.Lime, c)

	img := c.Image()
	assert.Equal(t, colornames.Lime, img.RGBAAt(10, 10))
	assert.Equal(t, colornames.Lime, img.RGBAAt(11, 3))
	assert.Equal(t, transparent, img.RGBAAt(2, 2))
	assert.Equal(t, transparent, img.RGBAAt(0, 10))
}

func TestCircleLeavesCornersEmpty(t *testing.T) {
	c := New(12, 12)
	render.NewBlock(grid.NewPosition(0, 0), render.Circle).Draw(colornames.Blue, c)

	img := c.Image()
	assert.Equal(t, colornames.Blue, img.RGBAAt(6, 6))
	assert.Equal(t, transparent, img.RGBAAt(0, 0))
	assert.Equal(t, transparent, img.RGBAAt(11, 11))
}

func TestEyesOverHead(t *testing.T) {
	c := New(12, 12)
	c.Clear(colornames.Black)
	head := render.NewBlock(grid.NewPosition(0, 0), render.Square)
	head.Draw(colornames.Green, c)
	render.DrawEyes(head, grid.Up, c)

	img := c.Image()
	// eye centers at (3.6, 3.6) and (8.4, 3.6)
	assert.Equal(t, uint8(255), img.RGBAAt(3, 3).R)
	assert.Equal(t, uint8(255), img.RGBAAt(8, 3).B)
	assert.Equal(t, colornames.Green, img.RGBAAt(6, 9))
}

func TestClearAndSize(t *testing.T) {
	c := New(5, 7)
	c.Clear(colornames.Navy)
	w, h := c.Size()
	assert.Equal(t, 5.0, w)
	assert.Equal(t, 7.0, h)
	assert.Equal(t, colornames.Navy, c.Image().RGBAAt(4, 6))
}

func TestWritePNG(t *testing.T) {
	c := New(24, 12)
	render.DrawRectangle(grid.NewPosition(0, 0), 2, 1, colornames.Orange, c)

	var buf bytes.Buffer
	require.NoError(t, c.WritePNG(&buf))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 24, decoded.Bounds().Dx())
	r, g, b, a := decoded.At(20, 6).RGBA()
	assert.Equal(t, colornames.Orange, color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)})
}

func TestDegeneratePolygonIgnored(t *testing.T) {
	c := New(12, 12)
	c.FillPolygon([]grid.Coord{{X: 0, Y: 0}, {X: 12, Y: 12}}, colornames.Red)
	assert.Equal(t, transparent, c.Image().RGBAAt(6, 6))
}

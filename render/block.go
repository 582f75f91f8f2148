package render

import (
	"fmt"
	"image/color"

	"snake-draw/grid"
)

// Shape selects the geometry a Block is drawn with.
type Shape int

const (
	Square Shape = iota
	Circle
	Triangle
)

func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Circle:
		return "circle"
	case Triangle:
		return "triangle"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Block is one drawable grid cell.
type Block struct {
	position grid.Position
	shape    Shape
}

// NewBlock creates a block at pos.
func NewBlock(pos grid.Position, shape Shape) Block {
	return Block{position: pos, shape: shape}
}

func (b Block) Position() grid.Position {
	return b.position
}

func (b *Block) SetPosition(pos grid.Position) {
	b.position = pos
}

func (b Block) Shape() Shape {
	return b.shape
}

func (b *Block) SetShape(shape Shape) {
	b.shape = shape
}

// Draw issues a single primitive covering the block's cell.
// Triangle fills the lower-right half of the cell.
func (b Block) Draw(c color.RGBA, cv Canvas) {
	origin := b.position.ToCoord()
	cell := Rect{X: origin.X, Y: origin.Y, W: grid.CellSize, H: grid.CellSize}

	switch b.shape {
	case Square:
		cv.FillRect(cell, c)
	case Circle:
		cv.FillEllipse(cell, c)
	case Triangle:
		cv.FillPolygon([]grid.Coord{
			origin.Add(grid.CellSize, 0),
			origin.Add(0, grid.CellSize),
			origin.Add(grid.CellSize, grid.CellSize),
		}, c)
	default:
		panic(fmt.Sprintf("render: cannot draw %s", b.shape))
	}
}

package types

import "snake-draw/grid"

// Grid represents the board dimensions in cells
type Grid struct {
	Width  uint32
	Height uint32
}

// Contains reports whether pos lies on the board
func (g Grid) Contains(pos grid.Position) bool {
	return pos.Col < g.Width && pos.Row < g.Height
}

// Cells returns the number of cells on the board
func (g Grid) Cells() int {
	return int(g.Width) * int(g.Height)
}

// Board defaults
const (
	DefaultWidth     = 40
	DefaultHeight    = 30
	DefaultFood      = 5
	DefaultSnakeSize = 6
	WallThickness    = 1
	MaxSide          = 256 // largest configurable board side
)

// Wall is a solid rectangle of cells
type Wall struct {
	Origin grid.Position
	Width  uint32
	Height uint32
}

// Contains reports whether pos is covered by the wall
func (w Wall) Contains(pos grid.Position) bool {
	return pos.Col >= w.Origin.Col && pos.Col-w.Origin.Col < w.Width &&
		pos.Row >= w.Origin.Row && pos.Row-w.Origin.Row < w.Height
}

package grid

import (
	"fmt"
	"math"
)

// Coord is a pixel coordinate on the drawing surface.
type Coord struct {
	X float64
	Y float64
}

// NewCoord creates a Coord.
func NewCoord(x, y float64) Coord {
	return Coord{X: x, Y: y}
}

// ToPosition returns the cell containing the coordinate. Sub-cell offsets
// are truncated, so this only inverts ToCoord for cell-aligned coordinates.
// Components outside the uint32 range saturate; NaN maps to 0.
func (c Coord) ToPosition() Position {
	return Position{
		Col: toCell(c.X),
		Row: toCell(c.Y),
	}
}

// Add returns the coordinate offset by (dx, dy) pixels.
func (c Coord) Add(dx, dy float64) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// AsArray returns the coordinate as an [x, y] pair.
func (c Coord) AsArray() [2]float64 {
	return [2]float64{c.X, c.Y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%g,%g)", c.X, c.Y)
}

func toCell(v float64) uint32 {
	cell := math.Floor(v / CellSize)
	switch {
	case math.IsNaN(cell), cell <= 0:
		return 0
	case cell >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(cell)
}

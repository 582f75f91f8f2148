package grid

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// CellSize is the side of one grid cell in pixel units.
const CellSize = 12.0

// ErrOutOfRange is returned when a shifted position would leave the
// non-negative grid space.
var ErrOutOfRange = errors.New("position out of range")

// Position is a grid cell address (column, row).
type Position struct {
	Col uint32
	Row uint32
}

// NewPosition creates a Position.
func NewPosition(col, row uint32) Position {
	return Position{Col: col, Row: row}
}

// ToCoord converts the position to the pixel coordinate of the cell's
// top-left corner.
func (p Position) ToCoord() Coord {
	return Coord{
		X: float64(p.Col) * CellSize,
		Y: float64(p.Row) * CellSize,
	}
}

// Shift adds signed deltas to the position. It fails with ErrOutOfRange
// when either component would drop below zero or overflow uint32.
func (p Position) Shift(dCols, dRows int32) (Position, error) {
	col := int64(p.Col) + int64(dCols)
	row := int64(p.Row) + int64(dRows)
	if col < 0 || row < 0 || col > math.MaxUint32 || row > math.MaxUint32 {
		return p, errors.Wrapf(ErrOutOfRange, "%s shifted by (%d,%d)", p, dCols, dRows)
	}
	return Position{Col: uint32(col), Row: uint32(row)}, nil
}

// ShiftedBy is Shift for callers that guarantee the result stays on the
// grid. It panics otherwise; shifting column 0 to the left is a caller bug,
// not a wrap to the far edge.
func (p Position) ShiftedBy(dCols, dRows int32) Position {
	shifted, err := p.Shift(dCols, dRows)
	if err != nil {
		panic(err)
	}
	return shifted
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

package grid

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Direction is a compass direction on the grid.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// ErrUnknownDirection is returned by ParseDirection for unrecognised names.
var ErrUnknownDirection = errors.New("unknown direction")

// Directions returns all directions in declaration order.
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	panic(fmt.Sprintf("grid: invalid direction %d", int(d)))
}

// TurnLeft returns the direction after a 90° counter-clockwise turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	case Right:
		return Up
	}
	panic(fmt.Sprintf("grid: invalid direction %d", int(d)))
}

// TurnRight returns the direction after a 90° clockwise turn.
func (d Direction) TurnRight() Direction {
	return d.TurnLeft().Opposite()
}

// Delta returns the unit step for the direction. Rows grow downwards.
func (d Direction) Delta() (dCols, dRows int32) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	panic(fmt.Sprintf("grid: invalid direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection parses a direction name, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions() {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return Up, errors.Wrapf(ErrUnknownDirection, "%q", s)
}

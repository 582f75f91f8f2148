package entity

import (
	"image/color"
	"math"

	"github.com/pkg/errors"

	"snake-draw/grid"
	"snake-draw/render"
)

type Snake struct {
	Body   []render.Block // tail first, head last
	Facing grid.Direction
	Color  color.RGBA
}

// NewSnake lays out a snake of the given length with its head at head,
// the body trailing away from the facing direction.
func NewSnake(head grid.Position, length int, facing grid.Direction, clr color.RGBA) (*Snake, error) {
	if length < 1 {
		return nil, errors.Errorf("snake length %d must be positive", length)
	}

	if int64(length) > math.MaxUint32 {
		return nil, errors.Wrapf(grid.ErrOutOfRange, "snake of length %d does not fit behind %s", length, head)
	}

	// Walk from the head back to the tail, then reverse into tail-first order.
	dc, dr := facing.Opposite().Delta()
	var body []render.Block
	pos := head
	for {
		body = append(body, render.NewBlock(pos, render.Square))
		if len(body) == length {
			break
		}
		next, err := pos.Shift(dc, dr)
		if err != nil {
			return nil, errors.Wrapf(err, "snake of length %d does not fit behind %s", length, head)
		}
		pos = next
	}
	for i, j := 0, len(body)-1; i < j; i, j = i+1, j-1 {
		body[i], body[j] = body[j], body[i]
	}
	if length > 1 {
		body[0].SetShape(render.Triangle)
	}

	return &Snake{
		Body:   body,
		Facing: facing,
		Color:  clr,
	}, nil
}

func (s *Snake) Head() render.Block {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Tail() render.Block {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on pos
func (s *Snake) Occupies(pos grid.Position) bool {
	for _, b := range s.Body {
		if b.Position() == pos {
			return true
		}
	}
	return false
}

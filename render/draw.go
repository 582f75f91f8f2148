package render

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"snake-draw/grid"
)

// EyeColor is the fill of the eyes drawn by DrawEyes.
var EyeColor = colornames.White

// eyeSize is the side of one eye, a fifth of a cell.
const eyeSize = grid.CellSize / 5

// DrawRectangle fills width x height cells starting at pos.
func DrawRectangle(pos grid.Position, width, height uint32, c color.RGBA, cv Canvas) {
	origin := pos.ToCoord()
	cv.FillRect(Rect{
		X: origin.X,
		Y: origin.Y,
		W: float64(width) * grid.CellSize,
		H: float64(height) * grid.CellSize,
	}, c)
}

// DrawEyes draws two eyes inside the head's cell, placed on the side the
// snake is facing.
func DrawEyes(head Block, dir grid.Direction, cv Canvas) {
	for _, eye := range eyeOffsets(dir) {
		at := head.position.ToCoord().Add(eye[0]*eyeSize, eye[1]*eyeSize)
		cv.FillEllipse(Rect{X: at.X, Y: at.Y, W: eyeSize, H: eyeSize}, EyeColor)
	}
}

// eyeOffsets returns both eye positions in units of eyeSize.
func eyeOffsets(dir grid.Direction) [2][2]float64 {
	switch dir {
	case grid.Up:
		return [2][2]float64{{1, 1}, {3, 1}}
	case grid.Down:
		return [2][2]float64{{1, 3}, {3, 3}}
	case grid.Left:
		return [2][2]float64{{1, 1}, {1, 3}}
	case grid.Right:
		return [2][2]float64{{3, 1}, {3, 3}}
	}
	panic(fmt.Sprintf("render: no eye layout for %s", dir))
}

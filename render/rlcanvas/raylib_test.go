package rlcanvas

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"snake-draw/grid"
)

func TestFan_BlockTriangleIsRewound(t *testing.T) {
	// lower-right triangle of the origin cell, clockwise on screen
	pts := []grid.Coord{{X: 12, Y: 0}, {X: 0, Y: 12}, {X: 12, Y: 12}}
	assert.Less(t, signedArea(pts), 0.0)

	tris := fan(pts)
	assert.Len(t, tris, 1)
	assert.Equal(t, [3]grid.Coord{{X: 12, Y: 0}, {X: 0, Y: 12}, {X: 12, Y: 12}}, tris[0])
}

func TestFan_ClockwiseQuadIsReversed(t *testing.T) {
	pts := []grid.Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	assert.Greater(t, signedArea(pts), 0.0)

	tris := fan(pts)
	assert.Len(t, tris, 2)
	for _, tri := range tris {
		assert.LessOrEqual(t, signedArea(tri[:]), 0.0)
	}
	assert.Equal(t, grid.Coord{X: 0, Y: 10}, tris[0][0])
}

func TestFan_Degenerate(t *testing.T) {
	assert.Nil(t, fan([]grid.Coord{{X: 1, Y: 1}, {X: 2, Y: 2}}))
}

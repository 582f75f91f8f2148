package manager

import (
	"snake-draw/game/entity"
	"snake-draw/game/types"
	"snake-draw/grid"
	"snake-draw/render"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// ValidateSpawnPosition checks that pos is on the board and not covered by
// the snake, a wall or existing food
func (cm *CollisionManager) ValidateSpawnPosition(pos grid.Position, snake *entity.Snake, walls []types.Wall, food []render.Block) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	if snake != nil && snake.Occupies(pos) {
		return false
	}
	if cm.isWallCollision(pos, walls) {
		return false
	}
	for _, f := range food {
		if f.Position() == pos {
			return false
		}
	}
	return true
}

// isWallCollision checks if a position lies inside any wall
func (cm *CollisionManager) isWallCollision(pos grid.Position, walls []types.Wall) bool {
	for _, w := range walls {
		if w.Contains(pos) {
			return true
		}
	}
	return false
}

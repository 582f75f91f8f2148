package manager

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"snake-draw/game/entity"
	"snake-draw/game/types"
	"snake-draw/grid"
	"snake-draw/render"
)

// ErrBoardFull is returned when no free cell is left for food.
var ErrBoardFull = errors.New("no free cell for food")

type FoodManager struct {
	grid         types.Grid
	foodList     []render.Block
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

// NewFoodManager creates a food manager whose placements are fully
// determined by seed
func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		foodList:     make([]render.Block, 0),
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// GenerateFood places one circle on a random free cell
func (fm *FoodManager) GenerateFood(snake *entity.Snake, walls []types.Wall) (render.Block, error) {
	if fm.grid.Cells() == 0 {
		return render.Block{}, errors.Wrap(ErrBoardFull, "empty board")
	}

	// Sample a few cells first, a sparse board almost always hits
	for attempt := 0; attempt < 32; attempt++ {
		pos := grid.NewPosition(
			uint32(fm.rng.Intn(int(fm.grid.Width))),
			uint32(fm.rng.Intn(int(fm.grid.Height))),
		)
		if fm.collisionMgr.ValidateSpawnPosition(pos, snake, walls, fm.foodList) {
			return fm.add(pos), nil
		}
	}

	// Crowded board: choose among the remaining free cells
	free := make([]grid.Position, 0)
	for row := uint32(0); row < fm.grid.Height; row++ {
		for col := uint32(0); col < fm.grid.Width; col++ {
			pos := grid.NewPosition(col, row)
			if fm.collisionMgr.ValidateSpawnPosition(pos, snake, walls, fm.foodList) {
				free = append(free, pos)
			}
		}
	}
	if len(free) == 0 {
		return render.Block{}, errors.Wrapf(ErrBoardFull, "%dx%d board", fm.grid.Width, fm.grid.Height)
	}
	return fm.add(free[fm.rng.Intn(len(free))]), nil
}

func (fm *FoodManager) add(pos grid.Position) render.Block {
	food := render.NewBlock(pos, render.Circle)
	fm.foodList = append(fm.foodList, food)
	return food
}

func (fm *FoodManager) GetFoodList() []render.Block {
	return fm.foodList
}

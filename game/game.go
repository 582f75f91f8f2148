package game

import (
	"image/color"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"snake-draw/game/entity"
	"snake-draw/game/manager"
	"snake-draw/game/types"
	"snake-draw/grid"
	"snake-draw/render"
)

// Scene is one static board handed to the renderer every frame.
type Scene struct {
	Grid  types.Grid
	Snake *entity.Snake
	Food  []render.Block
	Walls []types.Wall
}

// Options controls the demo board layout.
type Options struct {
	Food        int
	Seed        uint64
	Facing      grid.Direction
	SnakeLength int
	SnakeColor  color.RGBA
}

// DefaultOptions returns the layout used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Food:        types.DefaultFood,
		Seed:        1,
		Facing:      grid.Right,
		SnakeLength: types.DefaultSnakeSize,
		SnakeColor:  colornames.Limegreen,
	}
}

// NewDemoScene builds a walled board with a snake in the middle and food
// scattered over the free cells.
func NewDemoScene(g types.Grid, opts Options) (*Scene, error) {
	if g.Width < 3 || g.Height < 3 {
		return nil, errors.Errorf("board %dx%d is too small for walls", g.Width, g.Height)
	}

	walls := borderWalls(g)
	collisionMgr := manager.NewCollisionManager(g)

	head := grid.NewPosition(g.Width/2, g.Height/2)
	snake, err := entity.NewSnake(head, opts.SnakeLength, opts.Facing, opts.SnakeColor)
	if err != nil {
		return nil, errors.Wrap(err, "place snake")
	}
	for _, b := range snake.Body {
		if !collisionMgr.ValidateSpawnPosition(b.Position(), nil, walls, nil) {
			return nil, errors.Errorf("snake segment %s runs into a wall", b.Position())
		}
	}

	foodMgr := manager.NewFoodManager(g, collisionMgr, opts.Seed)
	for i := 0; i < opts.Food; i++ {
		if _, err := foodMgr.GenerateFood(snake, walls); err != nil {
			return nil, errors.Wrapf(err, "place food %d of %d", i+1, opts.Food)
		}
	}

	return &Scene{
		Grid:  g,
		Snake: snake,
		Food:  foodMgr.GetFoodList(),
		Walls: walls,
	}, nil
}

func borderWalls(g types.Grid) []types.Wall {
	t := uint32(types.WallThickness)
	return []types.Wall{
		{Origin: grid.NewPosition(0, 0), Width: g.Width, Height: t},
		{Origin: grid.NewPosition(0, g.Height-t), Width: g.Width, Height: t},
		{Origin: grid.NewPosition(0, t), Width: t, Height: g.Height - 2*t},
		{Origin: grid.NewPosition(g.Width-t, t), Width: t, Height: g.Height - 2*t},
	}
}

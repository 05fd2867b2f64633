package manager

import (
	"pixel-snake/game/entity"
	"pixel-snake/game/types"

	"github.com/pkg/errors"
)

// ErrBoardFull is returned when the snake covers every cell of the grid.
var ErrBoardFull = errors.New("no free cell left on the board")

// Rand is the subset of *rand.Rand the spawner needs.
type Rand interface {
	Intn(n int) int
}

type FoodManager struct {
	grid         types.Grid
	rng          Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// RandomCell draws a cell uniformly from the whole grid.
func (fm *FoodManager) RandomCell() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

// GenerateFood picks a random cell not covered by the snake. Cells are drawn
// until a free one comes up.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, error) {
	occupied := fm.collisionMgr.Occupancy(snake)
	if occupied.Len() >= fm.grid.Cells() {
		return types.Point{}, ErrBoardFull
	}

	for {
		food := fm.RandomCell()
		if fm.collisionMgr.ValidateSpawnPosition(food, occupied) {
			return food, nil
		}
	}
}

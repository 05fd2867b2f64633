package manager

import (
	"pixel-snake/game/entity"
	"pixel-snake/game/types"

	"github.com/kamstrup/intmap"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsWallCollision checks if a position is outside the grid
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// Occupancy indexes every in-grid cell of the snake by its row-major index.
func (cm *CollisionManager) Occupancy(snake *entity.Snake) *intmap.Map[int, struct{}] {
	occupied := intmap.New[int, struct{}](snake.Len())
	for _, part := range snake.Body {
		if cm.grid.Contains(part) {
			occupied.Put(cm.grid.Index(part), struct{}{})
		}
	}
	return occupied
}

// ValidateSpawnPosition checks if pos is a free in-grid cell
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, occupied *intmap.Map[int, struct{}]) bool {
	if cm.IsWallCollision(pos) {
		return false
	}
	return !occupied.Has(cm.grid.Index(pos))
}

package game

import (
	"time"

	"pixel-snake/game/entity"
	"pixel-snake/game/manager"
	"pixel-snake/game/types"

	"github.com/pkg/errors"
)

// CollisionType represents the reason a game ended
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	BoardFull // the snake covers every cell, nothing left to eat
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall-collision"
	case SelfCollision:
		return "self-collision"
	case BoardFull:
		return "board-full"
	default:
		return "none"
	}
}

// State is everything a tick reads and writes.
type State struct {
	Snake     *entity.Snake
	Food      types.Point
	Direction types.Direction
	Over      bool
	Reason    CollisionType
}

// Result tells the caller what a single tick did. Over is the only signal
// that the game ended; Step never panics on a collision.
type Result struct {
	Ate    bool
	Over   bool
	Reason CollisionType
}

type Game struct {
	Grid  types.Grid
	State State
	Stats *manager.StateManager

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// NewGame places a one-cell snake and a fruit at random free cells.
func NewGame(grid types.Grid, rng manager.Rand, now time.Time) (*Game, error) {
	g := newGame(grid, rng, now)

	snake := entity.NewSnake(g.foodMgr.RandomCell())
	food, err := g.foodMgr.GenerateFood(snake)
	if err != nil {
		return nil, errors.Wrap(err, "place first fruit")
	}

	g.State = State{
		Snake: snake,
		Food:  food,
	}
	return g, nil
}

// FromState resumes a game from an explicit state. The state is owned by the
// returned game from now on.
func FromState(grid types.Grid, rng manager.Rand, state State, now time.Time) *Game {
	g := newGame(grid, rng, now)
	g.State = state
	return g
}

func newGame(grid types.Grid, rng manager.Rand, now time.Time) *Game {
	collisionMgr := manager.NewCollisionManager(grid)
	return &Game{
		Grid:         grid,
		Stats:        manager.NewStateManager(now),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, collisionMgr),
	}
}

// Step advances the game by exactly one tick in direction dir. Once the game
// is over Step leaves the state untouched and repeats the final result.
func (g *Game) Step(dir types.Direction) Result {
	if g.State.Over {
		return Result{Over: true, Reason: g.State.Reason}
	}
	g.State.Direction = dir

	snake := g.State.Snake
	newHead := snake.GetHead().Add(dir.ToPoint())

	var res Result
	if newHead == g.State.Food {
		snake.Grow(newHead)
		res.Ate = true

		food, err := g.foodMgr.GenerateFood(snake)
		if err != nil {
			// ErrBoardFull: the old fruit stays under the head
			res.Over = true
			res.Reason = BoardFull
		} else {
			g.State.Food = food
		}
	} else if snake.Move(newHead) {
		res.Over = true
		res.Reason = SelfCollision
	}

	if g.collisionMgr.IsWallCollision(newHead) {
		res.Over = true
		res.Reason = WallCollision
	}

	g.Stats.RecordTick(res.Ate, snake.Len())
	g.State.Over = res.Over
	g.State.Reason = res.Reason
	return res
}

package types

import "time"

// Game constants
const (
	GridWidth  = 20
	GridHeight = 10
	StepTime   = 80 * time.Millisecond // Time between two snake moves
)

// Point is a single grid cell
type Point struct {
	X, Y int
}

// Add returns p moved by the vector d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid is the board the game is played on.
func DefaultGrid() Grid {
	return Grid{Width: GridWidth, Height: GridHeight}
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Index maps p to its row-major position. p must be inside the grid.
func (g Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Direction is a cardinal direction, or None before the first key press
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// ToPoint converts a Direction to its movement vector
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

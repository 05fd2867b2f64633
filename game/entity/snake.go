package entity

import (
	"pixel-snake/game/types"
)

// Snake is the ordered list of occupied cells, head first.
type Snake struct {
	Body []types.Point
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body: []types.Point{startPos},
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether any segment occupies p
func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Grow duplicates the head right behind itself and then moves the head to
// newHead. The tail stays where it is.
func (s *Snake) Grow(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[2:], s.Body[1:])
	s.Body[1] = s.Body[0]
	s.Body[0] = newHead
}

// Move shifts every segment one place towards the head, tail first, and then
// places the head on newHead. It reports whether a shifted segment landed on
// newHead.
func (s *Snake) Move(newHead types.Point) (bitten bool) {
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
		if s.Body[i] == newHead {
			bitten = true
		}
	}
	s.Body[0] = newHead
	return bitten
}

// Clone returns a copy that shares no memory with s
func (s *Snake) Clone() *Snake {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return &Snake{Body: body}
}

package entity

import (
	"snakebox/game/types"
)

// Snake is a head plus its trailing segments, nearest the head first.
// The head is tracked apart from Segments so a move can shift the body
// into the head's old tile.
type Snake struct {
	Head      types.Point
	Segments  []types.Point
	Direction types.Direction // applied by the last move
	Pending   types.Direction // applied by the next move
}

func NewSnake(start types.Point, dir types.Direction) *Snake {
	return &Snake{
		Head:      start,
		Segments:  make([]types.Point, 0),
		Direction: dir,
		Pending:   dir,
	}
}

// Len is the number of body segments, which is also the score.
func (s *Snake) Len() int {
	return len(s.Segments)
}

// Grow appends a segment at p.
func (s *Snake) Grow(p types.Point) {
	s.Segments = append(s.Segments, p)
}

// SetDirection records dir as the pending direction unless it would reverse
// the snake onto itself.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.None || dir == s.Direction.Opposite() {
		return false
	}
	s.Pending = dir
	return true
}

// Move shifts every segment into the tile of the one ahead of it, then
// advances the head one tile along the pending direction.
func (s *Snake) Move() {
	for i := len(s.Segments) - 1; i > 0; i-- {
		s.Segments[i] = s.Segments[i-1]
	}
	if len(s.Segments) > 0 {
		s.Segments[0] = s.Head
	}
	s.Direction = s.Pending
	s.Head = s.Head.Add(s.Direction.Delta())
}

// Occupies reports whether any body segment sits on p. The head is not
// checked.
func (s *Snake) Occupies(p types.Point) bool {
	for _, seg := range s.Segments {
		if seg == p {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (s *Snake) Clone() *Snake {
	c := *s
	c.Segments = make([]types.Point, len(s.Segments))
	copy(c.Segments, s.Segments)
	return &c
}

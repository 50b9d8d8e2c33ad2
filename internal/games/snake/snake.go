package snake

import (
	"github.com/vovakirdan/snakeworld/internal/core"
)

// Heading represents the snake's movement direction.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingDown
	HeadingLeft
	HeadingUp
)

func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}

// delta returns the unit step for the heading.
func (h Heading) delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	}
	return 0, 0
}

// HeadingFor maps a direction action to a heading.
func HeadingFor(a core.Action) (Heading, bool) {
	switch a {
	case core.ActionUp:
		return HeadingUp, true
	case core.ActionDown:
		return HeadingDown, true
	case core.ActionLeft:
		return HeadingLeft, true
	case core.ActionRight:
		return HeadingRight, true
	}
	return 0, false
}

// Segment is one cell of the snake body. A segment added by Grow is not
// Placed until the next Walk shifts a real position into it; unplaced
// segments take no part in collision checks and are not drawn.
type Segment struct {
	Pos    core.Position
	Placed bool
}

// Snake is an ordered list of segments, head first, moving in a heading.
type Snake struct {
	segments []Segment
	heading  Heading
	cellSize int
}

// NewSnake creates a snake of length 1 at start.
func NewSnake(start core.Position, heading Heading, cellSize int) *Snake {
	return &Snake{
		segments: []Segment{{Pos: start, Placed: true}},
		heading:  heading,
		cellSize: cellSize,
	}
}

// SetHeading sets the heading used by the next Walk.
// Reversing into the body is allowed and ends the game on a later tick.
func (s *Snake) SetHeading(h Heading) {
	s.heading = h
}

// Heading returns the current heading.
func (s *Snake) Heading() Heading {
	return s.heading
}

// Grow appends one unplaced segment to the tail.
func (s *Snake) Grow() {
	s.segments = append(s.segments, Segment{})
}

// Walk shifts every trailing segment onto its predecessor's position and
// advances the head one cell in the current heading.
func (s *Snake) Walk() {
	if len(s.segments) == 0 {
		return
	}
	// Tail first, so no predecessor is overwritten before it is copied.
	for i := len(s.segments) - 1; i > 0; i-- {
		s.segments[i] = s.segments[i-1]
	}

	dx, dy := s.heading.delta()
	head := &s.segments[0]
	head.Pos = head.Pos.Add(dx*s.cellSize, dy*s.cellSize)
	head.Placed = true
}

// Len returns the number of segments, including unplaced ones.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Head returns the head position. It reports false for an empty snake.
func (s *Snake) Head() (core.Position, bool) {
	if len(s.segments) == 0 {
		return core.Position{}, false
	}
	return s.segments[0].Pos, true
}

// Segment returns the segment at index i (0 is the head).
func (s *Snake) Segment(i int) Segment {
	return s.segments[i]
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/snakeworld/internal/core"
)

// Outcome classifies the result of one Step.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeAte
	OutcomeSelfCollision
	OutcomeOutOfBounds
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeAte:
		return "ate"
	case OutcomeSelfCollision:
		return "collided with self"
	case OutcomeOutOfBounds:
		return "out of bounds"
	default:
		return "unknown"
	}
}

// Fatal reports whether the outcome ends the game.
func (o Outcome) Fatal() bool {
	return o == OutcomeSelfCollision || o == OutcomeOutOfBounds
}

// Report describes one Step. Ate is set whenever food was eaten, even when
// the same step also ended the game.
type Report struct {
	Outcome Outcome
	Ate     bool
}

// Errors for broken session state. They are faults, never game-over outcomes.
var (
	ErrNoSegments = errors.New("snake: snake has no segments")
	ErrNoFood     = errors.New("snake: session has no food")
)

// selfCheckFrom is the first body index tested against the head. Index 1
// always trails the head by one cell and is never a real collision.
const selfCheckFrom = 2

// Step advances the game by one tick: walk, eat, self check, bounds check.
// A paused session does not advance.
func (s *Session) Step() (Report, error) {
	if s.snake == nil || s.snake.Len() == 0 {
		return Report{}, ErrNoSegments
	}
	if s.food == nil {
		return Report{}, ErrNoFood
	}
	if s.paused {
		return Report{Outcome: OutcomeContinue}, nil
	}

	s.tick++
	s.snake.Walk()
	head, _ := s.snake.Head()

	report := Report{Outcome: OutcomeContinue}

	if core.CellsCollide(head, s.food.Position(), s.rules.CellSize) {
		s.snake.Grow()
		s.speed = s.rules.nextInterval(s.speed)
		s.food.Relocate(s.rng)
		s.eaten++
		report.Ate = true
		report.Outcome = OutcomeAte
	}

	if s.hitsSelf(head) {
		report.Outcome = OutcomeSelfCollision
		return report, nil
	}

	if !s.rules.InBounds(head) {
		report.Outcome = OutcomeOutOfBounds
		return report, nil
	}

	return report, nil
}

// hitsSelf tests the head against every placed segment from selfCheckFrom on.
func (s *Session) hitsSelf(head core.Position) bool {
	for i := selfCheckFrom; i < s.snake.Len(); i++ {
		seg := s.snake.Segment(i)
		if !seg.Placed {
			continue
		}
		if core.CellsCollide(head, seg.Pos, s.rules.CellSize) {
			return true
		}
	}
	return false
}

// String summarises the session for logs and debugging.
func (s *Session) String() string {
	if s.snake == nil || s.food == nil {
		return "session(invalid)"
	}
	head, _ := s.snake.Head()
	return fmt.Sprintf("tick=%d len=%d head=(%d,%d) heading=%s food=(%d,%d) speed=%v paused=%v",
		s.tick, s.snake.Len(), head.X, head.Y, s.snake.Heading(),
		s.food.Position().X, s.food.Position().Y, s.speed, s.paused)
}

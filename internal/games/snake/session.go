package snake

import (
	"errors"
	"math/rand"
	"time"
)

// Session is the state of one game: the snake, the food, the tick interval
// and the pause flag. Restarting a game means building a new Session.
type Session struct {
	rules  Rules
	rng    *rand.Rand
	snake  *Snake
	food   *Food
	speed  time.Duration
	paused bool
	tick   uint64
	eaten  int
}

// ErrNilRand is returned when a session is built without a random source.
var ErrNilRand = errors.New("snake: nil random source")

// NewSession builds a fresh game from rules. The random source drives food
// relocation and is shared with later sessions by the caller.
func NewSession(rules Rules, rng *rand.Rand) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	return &Session{
		rules: rules,
		rng:   rng,
		snake: NewSnake(rules.Start, rules.StartHeading, rules.CellSize),
		food:  NewFood(rules.FoodStart, rules),
		speed: rules.InitialInterval,
	}, nil
}

// Rules returns the rule set the session was built with.
func (s *Session) Rules() Rules {
	return s.rules
}

// Snake returns the snake.
func (s *Session) Snake() *Snake {
	return s.snake
}

// Food returns the food item.
func (s *Session) Food() *Food {
	return s.food
}

// Speed returns the current tick interval. Lower is faster.
func (s *Session) Speed() time.Duration {
	return s.speed
}

// Paused reports whether gameplay is suspended.
func (s *Session) Paused() bool {
	return s.paused
}

// SetPaused suspends or resumes gameplay.
func (s *Session) SetPaused(paused bool) {
	s.paused = paused
}

// Tick returns the number of completed steps.
func (s *Session) Tick() uint64 {
	return s.tick
}

// Eaten returns how many food items were eaten in this session.
func (s *Session) Eaten() int {
	return s.eaten
}

// Score is the number of segments grown, i.e. length minus the initial head.
func (s *Session) Score() int {
	return s.snake.Len() - 1
}

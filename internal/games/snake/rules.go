// Package snake implements the Snake World game state: the snake body and its
// motion, the food item, and the per-tick update engine.
package snake

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/snakeworld/internal/core"
)

// GameID is the identifier used for score storage.
const GameID = "snake"

// Rules holds the fixed constants of the game. They are not user-configurable;
// DefaultRules is the only rule set the game ships with.
type Rules struct {
	CellSize int // Edge length of one grid cell in source units
	BoardW   int // Board width in source units
	BoardH   int // Board height in source units

	Start        core.Position // Initial head position
	StartHeading Heading
	FoodStart    core.Position // Initial food position

	InitialInterval time.Duration // Tick interval at game start
	IntervalStep    time.Duration // Interval decrease per food eaten
	MinInterval     time.Duration // Interval floor (maximum speed)
}

// DefaultRules returns the classic board: 40-unit cells on a 1000x900 board.
func DefaultRules() Rules {
	return Rules{
		CellSize:        40,
		BoardW:          1000,
		BoardH:          900,
		Start:           core.Pos(40, 40),
		StartHeading:    HeadingRight,
		FoodStart:       core.Pos(120, 120),
		InitialInterval: 250 * time.Millisecond,
		IntervalStep:    12500 * time.Microsecond,
		MinInterval:     75 * time.Millisecond,
	}
}

// ErrInvalidRules is returned when a rule set cannot produce a playable board.
var ErrInvalidRules = errors.New("snake: invalid rules")

// Validate checks that the rules describe a playable board.
func (r Rules) Validate() error {
	switch {
	case r.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalidRules, r.CellSize)
	case r.BoardW < 3*r.CellSize || r.BoardH < 3*r.CellSize:
		return fmt.Errorf("%w: board %dx%d too small for cell size %d", ErrInvalidRules, r.BoardW, r.BoardH, r.CellSize)
	case r.MinInterval <= 0 || r.InitialInterval < r.MinInterval:
		return fmt.Errorf("%w: interval %v below floor %v", ErrInvalidRules, r.InitialInterval, r.MinInterval)
	case r.IntervalStep < 0:
		return fmt.Errorf("%w: negative interval step %v", ErrInvalidRules, r.IntervalStep)
	case !r.InBounds(r.Start):
		return fmt.Errorf("%w: start %v off board", ErrInvalidRules, r.Start)
	}
	return nil
}

// InBounds reports whether p lies on the board. Both edges are inclusive,
// so (BoardW, BoardH) itself is still on the board.
func (r Rules) InBounds(p core.Position) bool {
	return p.X >= 0 && p.X <= r.BoardW && p.Y >= 0 && p.Y <= r.BoardH
}

// Columns returns the number of grid columns a head can occupy.
func (r Rules) Columns() int {
	return r.BoardW/r.CellSize + 1
}

// Rows returns the number of grid rows a head can occupy.
func (r Rules) Rows() int {
	return r.BoardH/r.CellSize + 1
}

// nextInterval applies one eat event to the tick interval.
func (r Rules) nextInterval(current time.Duration) time.Duration {
	next := current - r.IntervalStep
	if next < r.MinInterval {
		return r.MinInterval
	}
	return next
}

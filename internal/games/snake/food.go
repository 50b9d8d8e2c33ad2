package snake

import (
	"math/rand"

	"github.com/vovakirdan/snakeworld/internal/core"
)

// Food is the single item the snake eats.
type Food struct {
	pos    core.Position
	cell   int
	maxCol int // Highest column index a relocation may pick
	maxRow int // Highest row index a relocation may pick
}

// NewFood places food at pos on the board described by rules.
func NewFood(pos core.Position, rules Rules) *Food {
	// One-cell margin on every side, counting partially visible cells.
	return &Food{
		pos:    pos,
		cell:   rules.CellSize,
		maxCol: core.CeilDiv(rules.BoardW, rules.CellSize) - 2,
		maxRow: core.CeilDiv(rules.BoardH, rules.CellSize) - 2,
	}
}

// Position returns the current food position.
func (f *Food) Position() core.Position {
	return f.pos
}

// Relocate moves the food to a uniformly random cell inside the margin.
// The snake body is not avoided: food may land on it.
func (f *Food) Relocate(rng *rand.Rand) {
	col := 1 + rng.Intn(f.maxCol)
	row := 1 + rng.Intn(f.maxRow)
	f.pos = core.Pos(col*f.cell, row*f.cell)
}

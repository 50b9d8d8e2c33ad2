package core

import "testing"

func TestCellsCollide(t *testing.T) {
	const size = 40

	tests := []struct {
		name     string
		a, b     Position
		expected bool
	}{
		{"same cell", Pos(120, 120), Pos(120, 120), true},
		{"inside range", Pos(130, 150), Pos(120, 120), true},
		{"last inclusive unit", Pos(159, 159), Pos(120, 120), true},
		{"one past range on x", Pos(160, 120), Pos(120, 120), false},
		{"one past range on y", Pos(120, 160), Pos(120, 120), false},
		{"neighbour left", Pos(80, 120), Pos(120, 120), false},
		{"neighbour above", Pos(120, 80), Pos(120, 120), false},
		{"negative coords", Pos(-40, -40), Pos(-40, -40), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CellsCollide(tc.a, tc.b, size)
			if result != tc.expected {
				t.Errorf("CellsCollide(%v, %v) = %v, expected %v", tc.a, tc.b, result, tc.expected)
			}
		})
	}
}

func TestCellsCollideSymmetricOnGrid(t *testing.T) {
	const size = 40
	cells := []Position{Pos(0, 0), Pos(40, 0), Pos(0, 40), Pos(40, 40), Pos(1000, 880), Pos(-40, 0)}

	for _, a := range cells {
		for _, b := range cells {
			if CellsCollide(a, b, size) != CellsCollide(b, a, size) {
				t.Errorf("CellsCollide not symmetric for %v and %v", a, b)
			}
		}
	}
}

func TestPositionCell(t *testing.T) {
	tests := []struct {
		p        Position
		col, row int
	}{
		{Pos(0, 0), 0, 0},
		{Pos(40, 80), 1, 2},
		{Pos(1000, 880), 25, 22},
		{Pos(-40, -1), -1, -1},
	}

	for _, tc := range tests {
		col, row := tc.p.Cell(40)
		if col != tc.col || row != tc.row {
			t.Errorf("Cell(%v) = (%d, %d), expected (%d, %d)", tc.p, col, row, tc.col, tc.row)
		}
	}
}

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{1000, 40, 25},
		{900, 40, 23},
		{880, 40, 22},
		{0, 40, 0},
	}

	for _, tc := range tests {
		if got := CeilDiv(tc.a, tc.b); got != tc.expected {
			t.Errorf("CeilDiv(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if !r.Contains(5, 10) || r.Contains(25, 25) {
		t.Error("Contains() edge semantics wrong")
	}
}

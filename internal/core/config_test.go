package core

import "testing"

func TestRuntimeConfigFits(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		w, h int
		want bool
	}{
		{"exact", 54, 26, true},
		{"larger", 120, 40, true},
		{"too narrow", 53, 26, false},
		{"too short", 54, 25, false},
		{"classic 80x24", 80, 24, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.Fits(tt.w, tt.h); got != tt.want {
				t.Errorf("Fits(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

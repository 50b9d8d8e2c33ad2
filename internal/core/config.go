package core

// RuntimeConfig is what the platform layer needs from the terminal, and the
// seed it plays with.
type RuntimeConfig struct {
	ScreenW int   // Minimum terminal width in characters
	ScreenH int   // Minimum terminal height in characters
	Seed    int64 // RNG seed for deterministic food placement
}

// DefaultConfig returns the needs of the default board: 26 columns of two
// characters and 23 rows inside a border, plus a help line.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 54,
		ScreenH: 26,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Fits reports whether a terminal of w by h characters can show the board.
func (c RuntimeConfig) Fits(w, h int) bool {
	return w >= c.ScreenW && h >= c.ScreenH
}

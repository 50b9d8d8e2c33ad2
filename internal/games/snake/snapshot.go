package snake

// Snapshot captures the session state for determinism testing and replay output.
type Snapshot struct {
	Tick      uint64 `yaml:"tick"`
	Score     int    `yaml:"score"`
	Eaten     int    `yaml:"eaten"`
	SnakeLen  int    `yaml:"snake_len"`
	HeadX     int    `yaml:"head_x"`
	HeadY     int    `yaml:"head_y"`
	Heading   string `yaml:"heading"`
	FoodX     int    `yaml:"food_x"`
	FoodY     int    `yaml:"food_y"`
	IntervalM int64  `yaml:"interval_ms"`
	Paused    bool   `yaml:"paused"`
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	head, _ := s.snake.Head()
	food := s.food.Position()

	return Snapshot{
		Tick:      s.tick,
		Score:     s.Score(),
		Eaten:     s.eaten,
		SnakeLen:  s.snake.Len(),
		HeadX:     head.X,
		HeadY:     head.Y,
		Heading:   s.snake.Heading().String(),
		FoodX:     food.X,
		FoodY:     food.Y,
		IntervalM: s.speed.Milliseconds(),
		Paused:    s.paused,
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/snakeworld.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/snakeworld.yaml and is used if the embedded file fails to parse.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Head:   Glyph{Rune: "@", Color: "bright_green"},
			Body:   Glyph{Rune: "o", Color: "green"},
			Food:   Glyph{Rune: "*", Color: "bright_red"},
			Border: "gray",
			Text:   "bright_white",
		},
		Audio: AudioConfig{
			Enabled:      true,
			SampleRate:   44100,
			MasterVolume: 0.6,
			MusicLoops:   10,
			Effects: map[string]float64{
				"point": 0.8,
				"over":  0.9,
				"walk":  0.15,
				"music": 0.35,
			},
		},
		Storage: StorageConfig{
			Enabled: true,
			Path:    "~/.snakeworld/scores.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.snakeworld/snakeworld.log",
		},
	}
}

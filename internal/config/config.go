// Package config provides YAML-based configuration loading for Snake World.
// Only presentation, audio, storage and logging are configurable; the game
// rules themselves are fixed.
package config

// Config is the root of the configuration file.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// Glyph describes how one sprite is drawn in the terminal.
type Glyph struct {
	Rune  string `yaml:"rune"`
	Color string `yaml:"color"`
}

// DisplayConfig defines sprite glyphs and UI colors.
type DisplayConfig struct {
	Head   Glyph  `yaml:"head"`
	Body   Glyph  `yaml:"body"`
	Food   Glyph  `yaml:"food"`
	Border string `yaml:"border"`
	Text   string `yaml:"text"`
}

// AudioConfig defines synthesized sound settings.
type AudioConfig struct {
	Enabled      bool               `yaml:"enabled"`
	SampleRate   int                `yaml:"sample_rate"`
	MasterVolume float64            `yaml:"master_volume"`
	MusicLoops   int                `yaml:"music_loops"`
	Effects      map[string]float64 `yaml:"effects"` // Per-sound volume, keyed by sound name
}

// StorageConfig defines where finished-game scores are kept.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogConfig defines the log level and log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty means stderr
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snakeworld/internal/core"
)

// Load loads the Snake World configuration.
// Search order: customPath -> ~/.snakeworld/config.yaml -> ./configs/snakeworld.yaml -> embedded default.
// Files are applied on top of the embedded default, so they may set only the keys they change.
func Load(customPath string) (Config, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "snakeworld.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := embeddedDefault()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if err := candidate.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", path, err)
		}
		return candidate, nil
	}

	return cfg, nil
}

// embeddedDefault parses the embedded YAML, falling back to DefaultConfig.
func embeddedDefault() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snakeworld", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Validate checks glyphs, colors, volumes and the log level.
func (c Config) Validate() error {
	glyphs := map[string]Glyph{"head": c.Display.Head, "body": c.Display.Body, "food": c.Display.Food}
	for name, g := range glyphs {
		if utf8.RuneCountInString(g.Rune) != 1 {
			return fmt.Errorf("config: display.%s.rune must be a single character, got %q", name, g.Rune)
		}
		if _, err := core.ParseColor(g.Color); err != nil {
			return fmt.Errorf("config: display.%s.color: %w", name, err)
		}
	}
	for name, color := range map[string]string{"border": c.Display.Border, "text": c.Display.Text} {
		if _, err := core.ParseColor(color); err != nil {
			return fmt.Errorf("config: display.%s: %w", name, err)
		}
	}

	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("config: audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("config: audio.master_volume must be within [0, 1], got %v", c.Audio.MasterVolume)
	}
	for name, v := range c.Audio.Effects {
		if v < 0 || v > 1 {
			return fmt.Errorf("config: audio.effects.%s must be within [0, 1], got %v", name, v)
		}
	}

	if c.Storage.Enabled && strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("config: storage.path is required when storage is enabled")
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}

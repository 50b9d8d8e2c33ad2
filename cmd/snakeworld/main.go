// snakeworld is a terminal edition of the Snake World arcade game.
//
// Usage:
//
//	snakeworld               - Play (same as 'snakeworld play')
//	snakeworld play          - Play the game
//	snakeworld scores        - Show the leaderboard
//	snakeworld simulate <f>  - Replay a scripted input file headlessly
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible food placement
//	--db <path>         - Set database path (default from config: ~/.snakeworld/scores.db)
//	--config <path>     - Use a custom config file
//	--log-level <level> - Override the configured log level
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snakeworld/internal/config"
	"github.com/vovakirdan/snakeworld/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakeworld",
	Short: "Snake World - the classic snake game in your terminal",
	Long: `Snake World is a terminal snake game. Steer the snake to the food,
grow with every bite and avoid the walls and your own tail.

Available commands:
  play      - Play the game (default)
  scores    - View the leaderboard
  simulate  - Replay a scripted input file without a terminal UI

Examples:
  snakeworld
  snakeworld play --seed 42
  snakeworld scores --plain
  snakeworld simulate ./replay.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Enabled = true
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger builds the application logger. It writes to the configured file,
// or to fallback when no file is set. The returned closer releases the file.
func newLogger(cfg config.LogConfig, fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	var w io.Writer = fallback
	var closer io.Closer = io.NopCloser(nil)

	if cfg.File != "" {
		path, err := config.ExpandHome(cfg.File)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snakeworld",
		Level:           level,
	})
	return logger, closer, nil
}

// openStore opens the score database, or returns nil when storage is disabled.
func openStore(cfg config.StorageConfig) (*storage.Store, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	return storage.Open(cfg.Path)
}

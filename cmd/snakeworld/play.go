package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snakeworld/internal/audio"
	"github.com/vovakirdan/snakeworld/internal/config"
	"github.com/vovakirdan/snakeworld/internal/games/snake"
	"github.com/vovakirdan/snakeworld/internal/loop"
	"github.com/vovakirdan/snakeworld/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake World",
	Long: `Start a game of Snake World.

Controls:
  Arrows/WASD  - Steer
  Enter        - Start, resume, play again
  P            - Pause
  Esc/Q        - Quit
  ?            - Toggle help

Examples:
  snakeworld play
  snakeworld play --seed 42
  snakeworld play --config ./my-snakeworld.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := playGame(cfg, resolveSeed(flagSeed)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveSeed returns seed, or a clock-based seed when it is 0, so the value
// can be logged and replayed with --seed.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// newPlayLogger builds the logger for the TUI. Without a log file output is
// dropped, since the terminal belongs to the board.
func newPlayLogger(cfg config.LogConfig) (*log.Logger, io.Closer, error) {
	return newLogger(cfg, io.Discard)
}

// playGame runs one interactive session. Every resource it opens is released
// before it returns.
func playGame(cfg config.Config, seed int64) error {
	logger, logCloser, err := newPlayLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	rules := snake.DefaultRules()
	presenter, err := tui.NewScreenPresenter(cfg.Display, rules)
	if err != nil {
		logger.Error("invalid display settings", "error", err)
		return err
	}

	// The board has a fixed size; refuse to start in a terminal that cannot show it.
	runtime := presenter.Runtime(seed)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && !runtime.Fits(w, h) {
		return fmt.Errorf("terminal is %dx%d, Snake World needs at least %dx%d",
			w, h, runtime.ScreenW, runtime.ScreenH)
	}

	opts := loop.Options{
		Rules:      rules,
		Seed:       runtime.Seed,
		Presenter:  presenter,
		Logger:     logger,
		MusicLoops: cfg.Audio.MusicLoops,
	}

	// Open score storage
	store, err := openStore(cfg.Storage)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
	}
	if store != nil {
		defer store.Close()
		opts.Scores = store
	}

	player := audio.NewPlayer(cfg.Audio, logger)
	if err := player.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", err)
	}
	defer player.Close()
	opts.Audio = player

	ctrl, err := loop.New(opts)
	if err != nil {
		logger.Error("cannot start game", "error", err)
		return err
	}

	logger.Info("session started", "seed", runtime.Seed, "audio", player.Enabled(), "scores", store != nil)
	if err := tui.Run(ctrl, presenter, tui.DefaultKeyMap()); err != nil {
		logger.Error("game stopped", "error", err)
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("session ended", "games", ctrl.GamesPlayed(), "last_score", ctrl.LastScore(), "best_score", ctrl.BestScore())
	if ctrl.GamesPlayed() > 0 {
		fmt.Printf("Games played: %d, last score: %d\n", ctrl.GamesPlayed(), ctrl.LastScore())
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/snakeworld/internal/config"
	"github.com/vovakirdan/snakeworld/internal/games/snake"
	"github.com/vovakirdan/snakeworld/internal/loop"
	"github.com/vovakirdan/snakeworld/internal/platform/tui"
)

var (
	flagRealtime bool
	flagRecord   bool
	flagNoFrame  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <script.yaml>",
	Short: "Replay a scripted input file without a terminal UI",
	Long: `Run the game loop headlessly, feeding one batch of actions per tick
from a YAML script, then print the final frame and a state report.
The run ends with a quit once the script is exhausted.

Script format:
  seed: 7
  steps:
    - actions: [start]
    - actions: [down]
    - repeat: 10          # ten ticks without input

Action names: up, down, left, right, start, pause, quit.

Examples:
  snakeworld simulate ./replay.yaml
  snakeworld simulate ./replay.yaml --seed 42 --realtime`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Sleep for the tick interval between ticks")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Save finished games to the scores database")
	simulateCmd.Flags().BoolVar(&flagNoFrame, "no-frame", false, "Print only the state report")
}

// simulationReport is printed after a scripted run.
type simulationReport struct {
	Ticks       int            `yaml:"ticks"`
	GamesPlayed int            `yaml:"games_played"`
	LastScore   int            `yaml:"last_score"`
	LastOutcome string         `yaml:"last_outcome,omitempty"`
	Phase       string         `yaml:"phase"`
	Session     snake.Snapshot `yaml:"session"`
}

// simulation holds everything one scripted run needs.
type simulation struct {
	script   loop.Script
	seed     int64
	display  config.DisplayConfig
	scores   loop.ScoreRecorder
	logger   *log.Logger
	realtime bool
	frame    bool
}

func runSimulate(cmd *cobra.Command, args []string) {
	if err := simulate(cmd.OutOrStdout(), args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// simulate loads the script at path and runs it. Every resource it opens is
// released before it returns.
func simulate(out io.Writer, path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	script, err := loop.LoadScript(path)
	if err != nil {
		return err
	}

	// Headless runs log to stderr unless a file is configured explicitly.
	logCfg := cfg.Log
	if flagConfig == "" {
		logCfg.File = ""
	}
	logger, logCloser, err := newLogger(logCfg, os.Stderr)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	sim := simulation{
		script:   script,
		seed:     script.Seed,
		display:  cfg.Display,
		logger:   logger,
		realtime: flagRealtime,
		frame:    !flagNoFrame,
	}
	if flagSeed != 0 {
		sim.seed = flagSeed
	}

	if flagRecord {
		store, err := openStore(cfg.Storage)
		if err != nil {
			return fmt.Errorf("opening scores database: %w", err)
		}
		if store != nil {
			defer store.Close()
			sim.scores = store
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return sim.run(ctx, out)
}

// run replays the script through the reference loop and writes the report.
func (s simulation) run(ctx context.Context, out io.Writer) error {
	if s.seed == 0 {
		return fmt.Errorf("simulate: a non-zero seed is required for a reproducible run")
	}

	presenter, err := tui.NewScreenPresenter(s.display, snake.DefaultRules())
	if err != nil {
		return err
	}

	ctrl, err := loop.New(loop.Options{
		Seed:      s.seed,
		Presenter: presenter,
		Scores:    s.scores,
		Logger:    s.logger,
	})
	if err != nil {
		return err
	}

	batches := s.script.Batches()
	in := loop.NewScriptInput(batches)

	sleep := loop.SleepContext
	if !s.realtime {
		sleep = func(ctx context.Context, _ time.Duration) error { return ctx.Err() }
	}

	if err := ctrl.Run(ctx, in, sleep); err != nil {
		return err
	}

	if s.frame {
		fmt.Fprintln(out, presenter.Screen().String())
	}

	report := simulationReport{
		Ticks:       len(batches) - in.Remaining(),
		GamesPlayed: ctrl.GamesPlayed(),
		LastScore:   ctrl.LastScore(),
		Phase:       ctrl.Phase().String(),
		Session:     ctrl.Session().Snapshot(),
	}
	if ctrl.GamesPlayed() > 0 {
		report.LastOutcome = ctrl.LastOutcome().String()
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("simulate: cannot write report: %w", err)
	}
	return enc.Close()
}

package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakeworld/internal/core"
	"github.com/vovakirdan/snakeworld/internal/games/snake"
)

// Errors returned by the controller.
var (
	ErrNoPresenter = errors.New("loop: presenter is required")
	ErrTerminated  = errors.New("loop: controller terminated")
)

const defaultMusicLoops = 10

// Banner text.
const (
	titleStartup  = "Snake World"
	promptStartup = "Press Enter to start the game!"
	titlePaused   = "Paused"
	promptPaused  = "Press Enter to resume. To exit press Escape!"
	promptReplay  = "To play again press Enter. To exit press Escape!"
)

// Options configures a Controller.
type Options struct {
	Rules      snake.Rules // Zero value means snake.DefaultRules()
	Seed       int64       // 0 means seed from the clock
	Presenter  Presenter
	Audio      Audio         // Optional
	Scores     ScoreRecorder // Optional
	Logger     *log.Logger   // Optional
	GameID     string        // Defaults to snake.GameID
	MusicLoops int           // Defaults to 10
}

// Controller owns the current session and the phase state machine.
// It is not safe for concurrent use; one goroutine feeds it ticks.
type Controller struct {
	rules     snake.Rules
	rng       *rand.Rand
	session   *snake.Session
	phase     Phase
	presenter Presenter
	audio     Audio
	scores    ScoreRecorder
	logger    *log.Logger
	gameID    string
	loops     int

	lastScore   int
	bestScore   int
	lastOutcome snake.Outcome
	games       int
}

// New builds a controller in the Startup phase, starts the background music
// with the walk channel paused and presents the startup screen.
func New(opts Options) (*Controller, error) {
	if opts.Presenter == nil {
		return nil, ErrNoPresenter
	}
	if opts.Rules == (snake.Rules{}) {
		opts.Rules = snake.DefaultRules()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = NopAudio{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.GameID == "" {
		opts.GameID = snake.GameID
	}
	if opts.MusicLoops <= 0 {
		opts.MusicLoops = defaultMusicLoops
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	session, err := snake.NewSession(opts.Rules, rng)
	if err != nil {
		return nil, fmt.Errorf("loop: cannot create session: %w", err)
	}

	c := &Controller{
		rules:     opts.Rules,
		rng:       rng,
		session:   session,
		phase:     PhaseStartup,
		presenter: opts.Presenter,
		audio:     opts.Audio,
		scores:    opts.Scores,
		logger:    opts.Logger,
		gameID:    opts.GameID,
		loops:     opts.MusicLoops,
	}

	c.audio.PlayMusic(TrackBackground, c.loops)
	c.audio.PauseChannel(ChannelWalk)

	if err := c.present(); err != nil {
		return nil, err
	}
	return c, nil
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Session returns the current session. After a game over this is already the
// fresh session that the next resume will play.
func (c *Controller) Session() *snake.Session {
	return c.session
}

// LastScore returns the score of the most recently finished game.
func (c *Controller) LastScore() int {
	return c.lastScore
}

// BestScore returns the best recorded score as of the last game over, or 0
// without a recorder.
func (c *Controller) BestScore() int {
	return c.bestScore
}

// LastOutcome returns why the most recently finished game ended.
func (c *Controller) LastOutcome() snake.Outcome {
	return c.lastOutcome
}

// GamesPlayed returns how many games have ended since the controller started.
func (c *Controller) GamesPlayed() int {
	return c.games
}

// Interval is the delay before the next tick. A speed change made by the
// last step applies here, never retroactively.
func (c *Controller) Interval() time.Duration {
	return c.session.Speed()
}

// Tick consumes one batch of input, advances the engine when running and
// presents the result. Game over is handled internally; any returned error
// is an unexpected fault.
func (c *Controller) Tick(events []core.Action) error {
	if c.phase == PhaseTerminated {
		return ErrTerminated
	}

	for _, a := range events {
		c.apply(a)
		if c.phase == PhaseTerminated {
			return nil
		}
	}

	if c.phase.Active() {
		if err := c.step(); err != nil {
			return err
		}
	}

	return c.present()
}

func (c *Controller) apply(a core.Action) {
	if a == core.ActionQuit {
		c.setPhase(PhaseTerminated)
		return
	}

	switch c.phase {
	case PhaseStartup:
		if a == core.ActionStart {
			c.resume()
		}

	case PhaseRunning:
		if a.IsDirection() {
			if h, ok := snake.HeadingFor(a); ok {
				c.session.Snake().SetHeading(h)
			}
			return
		}
		if a == core.ActionPause {
			c.session.SetPaused(true)
			c.audio.PauseChannel(ChannelWalk)
			c.setPhase(PhasePaused)
		}

	case PhasePaused:
		if a == core.ActionStart || a == core.ActionPause {
			c.resume()
		}

	case PhaseGameOver:
		if a == core.ActionStart {
			c.audio.PlayMusic(TrackBackground, c.loops)
			c.resume()
		}
	}
}

func (c *Controller) resume() {
	c.session.SetPaused(false)
	c.audio.ResumeChannel(ChannelWalk)
	c.setPhase(PhaseRunning)
}

func (c *Controller) step() error {
	report, err := c.session.Step()
	if err != nil {
		c.logger.Error("engine fault", "error", err, "session", c.session)
		return fmt.Errorf("loop: step: %w", err)
	}

	if report.Ate {
		c.audio.PlayEffect(SoundPoint)
		c.logger.Debug("food eaten", "length", c.session.Snake().Len(), "interval", c.session.Speed())
	}

	switch report.Outcome {
	case snake.OutcomeSelfCollision, snake.OutcomeOutOfBounds:
		return c.gameOver(report.Outcome)
	}
	return nil
}

func (c *Controller) gameOver(outcome snake.Outcome) error {
	finished := c.session
	score := finished.Score()

	c.audio.PlayEffect(SoundOver)
	c.audio.PauseMusic()
	c.audio.PauseChannel(ChannelWalk)

	c.lastScore = score
	c.lastOutcome = outcome
	c.games++
	c.logger.Info("game over", "reason", outcome, "score", score, "ticks", finished.Tick())

	c.record(GameResult{
		GameID: c.gameID,
		Score:  score,
		Reason: outcome.String(),
		Ticks:  finished.Tick(),
	})

	fresh, err := snake.NewSession(c.rules, c.rng)
	if err != nil {
		return fmt.Errorf("loop: cannot reset session: %w", err)
	}
	fresh.SetPaused(true)
	c.session = fresh
	c.setPhase(PhaseGameOver)
	return nil
}

// record saves the result when it has a positive score and refreshes the
// best score. Failures are logged and otherwise ignored.
func (c *Controller) record(r GameResult) {
	if c.scores == nil {
		return
	}
	if r.Score > 0 {
		if err := c.scores.SaveGameResult(r); err != nil {
			c.logger.Warn("cannot save score", "error", err)
		}
	}
	best, err := c.scores.HighScore(r.GameID)
	if err != nil {
		c.logger.Warn("cannot read high score", "error", err)
		return
	}
	c.bestScore = best
}

func (c *Controller) setPhase(p Phase) {
	if p == c.phase {
		return
	}
	c.logger.Debug("phase", "from", c.phase, "to", p)
	c.phase = p
}

func (c *Controller) present() error {
	c.presenter.Clear()

	switch c.phase {
	case PhaseStartup:
		c.presenter.DrawBanner(titleStartup, promptStartup)

	case PhaseGameOver:
		lines := []string{promptReplay}
		if c.bestScore > 0 {
			lines = []string{fmt.Sprintf("Best score: %d", c.bestScore), promptReplay}
		}
		c.presenter.DrawBanner(fmt.Sprintf("Game is over! Your score is %d", c.lastScore), lines...)

	case PhaseRunning, PhasePaused:
		if err := c.drawBoard(); err != nil {
			return err
		}
		if c.phase == PhasePaused {
			c.presenter.DrawBanner(titlePaused, promptPaused)
		}

	case PhaseTerminated:
		return nil
	}

	if err := c.presenter.Flip(); err != nil {
		return fmt.Errorf("loop: flip: %w", err)
	}
	return nil
}

func (c *Controller) drawBoard() error {
	if err := c.presenter.DrawEntity(SpriteFood, c.session.Food().Position()); err != nil {
		return fmt.Errorf("loop: draw food: %w", err)
	}

	segments := c.session.Snake().Segments()
	// Tail first so the head is drawn on top.
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		if !seg.Placed {
			continue
		}
		sprite := SpriteBody
		if i == 0 {
			sprite = SpriteHead
		}
		if err := c.presenter.DrawEntity(sprite, seg.Pos); err != nil {
			return fmt.Errorf("loop: draw %s: %w", sprite, err)
		}
	}

	c.presenter.DrawScore(c.session.Snake().Len())
	return nil
}

// Run is the reference sleep-paced loop: poll, tick, present, sleep for the
// current interval. It returns nil after a quit, the context error on
// cancellation, or the first unexpected fault.
func (c *Controller) Run(ctx context.Context, in Input, sleep Sleeper) error {
	if sleep == nil {
		sleep = SleepContext
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Tick(in.Poll()); err != nil {
			return err
		}
		if c.phase == PhaseTerminated {
			return nil
		}
		if err := sleep(ctx, c.Interval()); err != nil {
			return err
		}
	}
}

package loop

import (
	"context"
	"time"

	"github.com/vovakirdan/snakeworld/internal/core"
)

// Sprite names an image the presenter knows how to draw.
type Sprite int

const (
	SpriteHead Sprite = iota
	SpriteBody
	SpriteFood
)

func (s Sprite) String() string {
	switch s {
	case SpriteHead:
		return "head"
	case SpriteBody:
		return "body"
	case SpriteFood:
		return "food"
	default:
		return "unknown"
	}
}

// Presenter receives draw calls once per tick. The controller never reads
// anything back from it.
type Presenter interface {
	Clear()
	DrawEntity(sprite Sprite, pos core.Position) error
	DrawScore(score int)
	DrawBanner(title string, lines ...string)
	Flip() error
}

// Named sounds and channels used by the controller.
const (
	SoundPoint      = "point"
	SoundOver       = "over"
	TrackBackground = "background"
	ChannelWalk     = "walk"
)

// Audio plays named effects and music. Calls are fire-and-forget.
type Audio interface {
	PlayEffect(name string)
	PlayMusic(track string, loops int)
	PauseMusic()
	PauseChannel(name string)
	ResumeChannel(name string)
}

// NopAudio discards every call.
type NopAudio struct{}

func (NopAudio) PlayEffect(string)     {}
func (NopAudio) PlayMusic(string, int) {}
func (NopAudio) PauseMusic()           {}
func (NopAudio) PauseChannel(string)   {}
func (NopAudio) ResumeChannel(string)  {}

// Input returns the actions that arrived since the previous poll.
type Input interface {
	Poll() []core.Action
}

// GameResult is the summary of one finished game.
type GameResult struct {
	GameID string
	Score  int
	Reason string
	Ticks  uint64
}

// ScoreRecorder persists finished games and reports the best recorded score.
type ScoreRecorder interface {
	SaveGameResult(r GameResult) error
	HighScore(gameID string) (int, error)
}

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// SleepContext is the default Sleeper backed by a timer.
func SleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

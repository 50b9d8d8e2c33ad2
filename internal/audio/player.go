package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/snakeworld/internal/config"
	"github.com/vovakirdan/snakeworld/internal/loop"
)

const bufferDuration = 100 * time.Millisecond

// output is the audio device. The speaker package is the only real one.
type output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, n int) error { return speaker.Init(rate, n) }
func (speakerOutput) Play(s ...beep.Streamer)                { speaker.Play(s...) }
func (speakerOutput) Lock()                                  { speaker.Lock() }
func (speakerOutput) Unlock()                                { speaker.Unlock() }
func (speakerOutput) Close()                                 { speaker.Close() }

// Player implements loop.Audio on top of a single beep mixer.
// Until Start succeeds every call is a no-op, so the game runs unchanged on
// machines without a sound device.
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	out         output
	logger      *log.Logger
	mixer       *beep.Mixer
	music       *beep.Ctrl
	channels    map[string]*beep.Ctrl
	initialized bool
}

var _ loop.Audio = (*Player)(nil)

// NewPlayer creates a player for the given settings. Call Start to open the device.
func NewPlayer(cfg config.AudioConfig, logger *log.Logger) *Player {
	return newPlayer(cfg, logger, speakerOutput{})
}

func newPlayer(cfg config.AudioConfig, logger *log.Logger, out output) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		cfg:      cfg,
		rate:     beep.SampleRate(cfg.SampleRate),
		out:      out,
		logger:   logger,
		mixer:    &beep.Mixer{},
		channels: make(map[string]*beep.Ctrl),
	}
}

// Start opens the audio device. A disabled player stays silent and returns nil.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := p.out.Init(p.rate, p.rate.N(bufferDuration)); err != nil {
		p.logger.Warn("audio disabled", "error", err)
		return err
	}

	p.out.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio started", "rate", int(p.rate))
	return nil
}

// Close stops all sounds and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.out.Lock()
	p.mixer.Clear()
	p.out.Unlock()
	p.out.Close()

	p.music = nil
	p.channels = make(map[string]*beep.Ctrl)
	p.initialized = false
}

// Enabled reports whether the device is open.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

func (p *Player) volume(name string) float64 {
	return p.cfg.Effects[name] * p.cfg.MasterVolume
}

// PlayEffect plays a one-shot sound.
func (p *Player) PlayEffect(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	var s beep.Streamer
	switch name {
	case loop.SoundPoint:
		s = newPointSound(p.rate)
	case loop.SoundOver:
		s = newOverSound(p.rate)
	default:
		p.logger.Debug("unknown effect", "name", name)
		return
	}

	p.out.Lock()
	p.mixer.Add(newVolume(s, p.volume(name)))
	p.out.Unlock()
}

// PlayMusic starts track from the beginning, replacing any running track.
func (p *Player) PlayMusic(track string, loops int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if track != loop.TrackBackground {
		p.logger.Debug("unknown track", "name", track)
		return
	}

	rate := p.rate
	pass := newRepeater(max(loops, 1), func() beep.Streamer {
		return newBackgroundPass(rate)
	})
	ctrl := &beep.Ctrl{Streamer: newVolume(pass, p.volume("music"))}

	p.out.Lock()
	if p.music != nil {
		// A nil streamer drains the old control out of the mixer.
		p.music.Streamer = nil
	}
	p.music = ctrl
	p.mixer.Add(ctrl)
	p.out.Unlock()
}

// PauseMusic pauses the current track.
func (p *Player) PauseMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.music == nil {
		return
	}

	p.out.Lock()
	p.music.Paused = true
	p.out.Unlock()
}

// PauseChannel pauses a looping channel, creating it paused on first use.
func (p *Player) PauseChannel(name string) {
	p.setChannelPaused(name, true)
}

// ResumeChannel resumes a looping channel.
func (p *Player) ResumeChannel(name string) {
	p.setChannelPaused(name, false)
}

func (p *Player) setChannelPaused(name string, paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.out.Lock()
	defer p.out.Unlock()

	ctrl, ok := p.channels[name]
	if !ok {
		s := p.channelStreamer(name)
		if s == nil {
			p.logger.Debug("unknown channel", "name", name)
			return
		}
		ctrl = &beep.Ctrl{Streamer: newVolume(s, p.volume(name))}
		p.channels[name] = ctrl
		p.mixer.Add(ctrl)
	}
	ctrl.Paused = paused
}

func (p *Player) channelStreamer(name string) beep.Streamer {
	rate := p.rate
	switch name {
	case loop.ChannelWalk:
		return newRepeater(-1, func() beep.Streamer { return newWalkStep(rate) })
	default:
		return nil
	}
}

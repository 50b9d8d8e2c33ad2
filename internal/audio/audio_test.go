package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/snakeworld/internal/config"
	"github.com/vovakirdan/snakeworld/internal/loop"
)

// drain streams s to completion and returns the sample count, capped at limit
func drain(s beep.Streamer, limit int) int {
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	return total
}

func TestOscillatorSineRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Stream() = %d, %v; want 100, true", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Errorf("sample %d out of range: %f", i, samples[i][0])
		}
	}
}

func TestOscillatorStopsAtDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 50*time.Millisecond, WaveSquare, rate)

	if got := drain(osc, 10000); got != 50 {
		t.Errorf("streamed %d samples, want 50", got)
	}
	if n, ok := osc.Stream(make([][2]float64, 10)); n != 0 || ok {
		t.Errorf("exhausted oscillator returned %d, %v", n, ok)
	}
}

func TestEnvelopeAttackStartsSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // Constant 1.0
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("streamed %d samples, want 100", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("sustain sample = %f, want 1", samples[50][0])
	}
	if samples[99][0] >= samples[90][0] {
		t.Errorf("release did not fade: %f >= %f", samples[99][0], samples[90][0])
	}
}

func TestRepeaterCounts(t *testing.T) {
	rate := beep.SampleRate(1000)
	builds := 0
	r := newRepeater(3, func() beep.Streamer {
		builds++
		return NewOscillator(0, 10*time.Millisecond, WaveSine, rate)
	})

	if got := drain(r, 10000); got != 30 {
		t.Errorf("streamed %d samples, want 30", got)
	}
	if builds != 3 {
		t.Errorf("built %d passes, want 3", builds)
	}
}

func TestRepeaterForever(t *testing.T) {
	rate := beep.SampleRate(1000)
	r := newRepeater(-1, func() beep.Streamer {
		return NewOscillator(0, 10*time.Millisecond, WaveSine, rate)
	})

	if got := drain(r, 5000); got < 5000 {
		t.Errorf("infinite repeater stopped after %d samples", got)
	}
}

func TestRepeaterEmptyPassStops(t *testing.T) {
	r := newRepeater(-1, func() beep.Streamer { return beep.Silence(0) })

	if got := drain(r, 1000); got != 0 {
		t.Errorf("streamed %d samples from empty passes", got)
	}
}

func TestSoundsAreFinite(t *testing.T) {
	rate := beep.SampleRate(8000)
	tests := []struct {
		name string
		s    beep.Streamer
	}{
		{"point", newPointSound(rate)},
		{"over", newOverSound(rate)},
		{"walk step", newWalkStep(rate)},
		{"background pass", newBackgroundPass(rate)},
	}

	limit := rate.N(10 * time.Second)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drain(tt.s, limit)
			if got == 0 || got >= limit {
				t.Errorf("streamed %d samples", got)
			}
		})
	}
}

type fakeOutput struct {
	initErr error
	inits   int
	played  []beep.Streamer
	closed  bool
}

func (o *fakeOutput) Init(beep.SampleRate, int) error {
	o.inits++
	return o.initErr
}
func (o *fakeOutput) Play(s ...beep.Streamer) { o.played = append(o.played, s...) }
func (o *fakeOutput) Lock()                   {}
func (o *fakeOutput) Unlock()                 {}
func (o *fakeOutput) Close()                  { o.closed = true }

func testAudioConfig() config.AudioConfig {
	return config.AudioConfig{
		Enabled:      true,
		SampleRate:   8000,
		MasterVolume: 0.5,
		MusicLoops:   2,
		Effects:      map[string]float64{"point": 1, "over": 1, "walk": 0.2, "music": 0.3},
	}
}

func TestPlayerDisabledIsSilent(t *testing.T) {
	cfg := testAudioConfig()
	cfg.Enabled = false
	out := &fakeOutput{}
	p := newPlayer(cfg, nil, out)

	if err := p.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	p.PlayEffect(loop.SoundPoint)
	p.PlayMusic(loop.TrackBackground, 1)
	p.PauseChannel(loop.ChannelWalk)

	if out.inits != 0 || p.Enabled() {
		t.Error("disabled player opened the device")
	}
	if p.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers, want 0", p.mixer.Len())
	}
}

func TestPlayerInitFailureIsNoop(t *testing.T) {
	out := &fakeOutput{initErr: errors.New("no device")}
	p := newPlayer(testAudioConfig(), nil, out)

	if err := p.Start(); err == nil {
		t.Fatal("expected Start() error")
	}
	p.PlayEffect(loop.SoundOver)
	p.ResumeChannel(loop.ChannelWalk)

	if p.Enabled() || p.mixer.Len() != 0 {
		t.Error("failed player should stay silent")
	}
}

func TestPlayerStartPlaysMixer(t *testing.T) {
	out := &fakeOutput{}
	p := newPlayer(testAudioConfig(), nil, out)

	if err := p.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if err := p.Start(); err != nil {
		t.Fatalf("second Start() failed: %v", err)
	}

	if out.inits != 1 {
		t.Errorf("Init called %d times, want 1", out.inits)
	}
	if len(out.played) != 1 || out.played[0] != beep.Streamer(p.mixer) {
		t.Errorf("mixer was not handed to the device")
	}
}

func TestPlayerEffects(t *testing.T) {
	p := newPlayer(testAudioConfig(), nil, &fakeOutput{})
	if err := p.Start(); err != nil {
		t.Fatal(err)
	}

	p.PlayEffect(loop.SoundPoint)
	p.PlayEffect(loop.SoundOver)
	p.PlayEffect("fanfare")

	if p.mixer.Len() != 2 {
		t.Errorf("mixer has %d streamers, want 2", p.mixer.Len())
	}
}

func TestPlayerMusic(t *testing.T) {
	p := newPlayer(testAudioConfig(), nil, &fakeOutput{})
	if err := p.Start(); err != nil {
		t.Fatal(err)
	}

	p.PlayMusic(loop.TrackBackground, 10)
	first := p.music
	if first == nil || first.Paused {
		t.Fatal("music should be playing")
	}

	p.PauseMusic()
	if !first.Paused {
		t.Error("PauseMusic() did not pause the track")
	}

	p.PlayMusic(loop.TrackBackground, 10)
	if p.music == first || p.music.Paused {
		t.Error("PlayMusic() should start a fresh track")
	}
	if first.Streamer != nil {
		t.Error("replaced track should be drained")
	}

	p.PlayMusic("unknown", 1)
	if p.mixer.Len() != 2 {
		t.Errorf("mixer has %d streamers, want 2", p.mixer.Len())
	}
}

func TestPlayerChannels(t *testing.T) {
	p := newPlayer(testAudioConfig(), nil, &fakeOutput{})
	if err := p.Start(); err != nil {
		t.Fatal(err)
	}

	p.PauseChannel(loop.ChannelWalk)
	walk := p.channels[loop.ChannelWalk]
	if walk == nil || !walk.Paused {
		t.Fatal("walk channel should exist and be paused")
	}

	p.ResumeChannel(loop.ChannelWalk)
	if walk.Paused {
		t.Error("ResumeChannel() did not resume")
	}
	if p.channels[loop.ChannelWalk] != walk || p.mixer.Len() != 1 {
		t.Error("channel should be created once")
	}

	p.ResumeChannel("engine")
	if _, ok := p.channels["engine"]; ok {
		t.Error("unknown channel should not be created")
	}
}

func TestPlayerClose(t *testing.T) {
	out := &fakeOutput{}
	p := newPlayer(testAudioConfig(), nil, out)
	if err := p.Start(); err != nil {
		t.Fatal(err)
	}
	p.ResumeChannel(loop.ChannelWalk)

	p.Close()

	if !out.closed || p.Enabled() || p.mixer.Len() != 0 {
		t.Error("Close() should clear the mixer and release the device")
	}
	p.PlayEffect(loop.SoundPoint)
	if p.mixer.Len() != 0 {
		t.Error("closed player should be silent")
	}
}

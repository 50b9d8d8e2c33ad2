// Package audio synthesizes and plays the game's sounds with beep.
// Every sound is generated from oscillators, so no asset files are needed.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// repeater plays a freshly built streamer count times. A negative count
// repeats forever. Generated streamers cannot seek, so beep.Loop does not apply.
type repeater struct {
	build     func() beep.Streamer
	remaining int
	current   beep.Streamer
}

func newRepeater(count int, build func() beep.Streamer) beep.Streamer {
	return &repeater{build: build, remaining: count}
}

func (r *repeater) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		fresh := false
		if r.current == nil {
			if r.remaining == 0 {
				return n, n > 0
			}
			if r.remaining > 0 {
				r.remaining--
			}
			r.current = r.build()
			fresh = true
		}
		m, more := r.current.Stream(samples[n:])
		n += m
		if !more {
			r.current = nil
			if fresh && m == 0 {
				// An empty pass would spin forever.
				r.remaining = 0
			}
		}
	}
	return n, true
}

func (r *repeater) Err() error {
	if r.current != nil {
		return r.current.Err()
	}
	return nil
}

// newVolume scales s linearly; zero or negative volume is silent.
// math.Log2(0) is -Inf, so silence is handled explicitly.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one enveloped oscillator note
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	att := d / 20
	rel := d / 3
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, att, rel, rate)
}

// newPointSound is a rising two-note chime
func newPointSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(1318.51, 60*time.Millisecond, WaveSine, rate),  // E6
		tone(1760.00, 120*time.Millisecond, WaveSine, rate), // A6
	)
}

// newOverSound is a falling square-wave phrase
func newOverSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		tone(440.00, 150*time.Millisecond, WaveSquare, rate),
		tone(349.23, 150*time.Millisecond, WaveSquare, rate),
		tone(261.63, 150*time.Millisecond, WaveSquare, rate),
		tone(174.61, 400*time.Millisecond, WaveSquare, rate),
	)
}

// newWalkStep is one soft footstep: a short noise burst then silence
func newWalkStep(rate beep.SampleRate) beep.Streamer {
	burst := 25 * time.Millisecond
	noise := NewEnvelope(NewOscillator(0, burst, WaveNoise, rate), burst, time.Millisecond, 20*time.Millisecond, rate)
	return beep.Seq(noise, beep.Silence(rate.N(200*time.Millisecond)))
}

// backgroundMelody is one pass of the background track, in Hz per beat; 0 rests
var backgroundMelody = []float64{
	261.63, 329.63, 392.00, 329.63,
	293.66, 349.23, 440.00, 349.23,
	246.94, 293.66, 392.00, 293.66,
	261.63, 0, 196.00, 0,
}

const backgroundBeat = 220 * time.Millisecond

// newBackgroundPass builds one pass of the melody over a triangle-ish saw bass
func newBackgroundPass(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(backgroundMelody))
	for _, freq := range backgroundMelody {
		if freq == 0 {
			notes = append(notes, beep.Silence(rate.N(backgroundBeat)))
			continue
		}
		notes = append(notes, beep.Mix(
			newVolume(tone(freq, backgroundBeat, WaveSquare, rate), 0.5),
			newVolume(tone(freq/2, backgroundBeat, WaveSaw, rate), 0.3),
		))
	}
	return beep.Seq(notes...)
}

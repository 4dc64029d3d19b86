package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Effect timings
const (
	flapDuration  = 90 * time.Millisecond
	flapAttack    = 5 * time.Millisecond
	flapRelease   = 60 * time.Millisecond
	scoreNote     = 70 * time.Millisecond
	scoreAttack   = 3 * time.Millisecond
	scoreRelease  = 40 * time.Millisecond
	hitDuration   = 250 * time.Millisecond
	hitAttack     = 2 * time.Millisecond
	hitRelease    = 200 * time.Millisecond
	defaultVolume = 0.5
)

// oscillator generates raw audio waves. sweep is added to freq every
// second, so a positive sweep gives a rising chirp.
type oscillator struct {
	freq     float64
	sweep    float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one pitch to another.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	sweep := 0.0
	if samples > 0 {
		sweep = (to - from) / float64(samples)
	}
	return &oscillator{
		freq:     from,
		sweep:    sweep,
		duration: samples,
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
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.freq += o.sweep
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

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
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. math.Log2(0) is -Inf, so zero
// volume becomes a silent stream.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateFlapSound generates a short rising chirp.
func CreateFlapSound(rate beep.SampleRate, vol float64) beep.Streamer {
	chirp := NewSweep(320, 720, flapDuration, WaveSquare, rate)
	shaped := NewEnvelope(chirp, flapDuration, flapAttack, flapRelease, rate)
	return newVolume(shaped, vol*0.4)
}

// CreateScoreSound generates a two-note sine chime (E6, then A6).
func CreateScoreSound(rate beep.SampleRate, vol float64) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, 2)
	for _, freq := range []float64{1318.51, 1760.0} {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, fmt.Errorf("audio: score tone %.0f Hz: %w", freq, err)
		}
		note := beep.Take(rate.N(scoreNote), tone)
		notes = append(notes, NewEnvelope(note, scoreNote, scoreAttack, scoreRelease, rate))
	}
	return newVolume(beep.Seq(notes...), vol), nil
}

// CreateHitSound generates a noisy thud with a falling saw underneath.
func CreateHitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	noise := NewOscillator(0, hitDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, hitDuration, hitAttack, hitRelease, rate)

	thud := NewSweep(180, 60, hitDuration, WaveSaw, rate)
	thudShaped := NewEnvelope(thud, hitDuration, hitAttack, hitRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.5),
		newVolume(thudShaped, 0.6),
	)
	return newVolume(mixed, vol)
}

// Effect returns a fresh streamer for the given sound.
func Effect(st SoundType, rate beep.SampleRate, vol float64) (beep.Streamer, error) {
	switch st {
	case SoundFlap:
		return CreateFlapSound(rate, vol), nil
	case SoundScore:
		return CreateScoreSound(rate, vol)
	case SoundHit:
		return CreateHitSound(rate, vol), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSound, int(st))
	}
}

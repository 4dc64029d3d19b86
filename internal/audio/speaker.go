package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// closeDevice releases the audio device; tests replace it.
var closeDevice = speaker.Close

// Speaker plays effects through the system audio device. All effects share
// one mixer so overlapping sounds blend instead of cutting each other off.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
	logger *log.Logger
}

// NewSpeaker opens the audio device. The device can only be opened once per
// process.
func NewSpeaker(volume float64, logger *log.Logger) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}

	s := &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// New returns a speaker-backed Player, or Mute when enabled is false or the
// device cannot be opened. Failing to open audio is never fatal.
func New(enabled bool, logger *log.Logger) Player {
	if !enabled {
		return Mute{}
	}
	s, err := NewSpeaker(defaultVolume, logger)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return Mute{}
	}
	logger.Debug("sound enabled", "rate", int(sampleRate))
	return s
}

// Play queues an effect on the mixer and returns immediately.
func (s *Speaker) Play(st SoundType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	streamer, err := Effect(st, sampleRate, s.volume)
	if err != nil {
		s.logger.Debug("effect unavailable", "sound", st, "err", err)
		return
	}

	// The speaker goroutine reads the mixer concurrently
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close silences everything still playing and releases the audio device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	closeDevice()
	s.closed = true
}

// Package audio synthesizes the game's sound effects and plays them through
// the system speaker.
package audio

import "errors"

// SoundType identifies a sound effect.
type SoundType int

const (
	SoundFlap  SoundType = iota // Bird jumped
	SoundScore                  // Pipe passed
	SoundHit                    // Run ended
	soundTypeCount
)

// String returns the sound name.
func (st SoundType) String() string {
	switch st {
	case SoundFlap:
		return "flap"
	case SoundScore:
		return "score"
	case SoundHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Player plays sound effects. Implementations never block the caller.
type Player interface {
	Play(st SoundType)
	Close()
}

// ErrUnknownSound is returned for a SoundType without an effect.
var ErrUnknownSound = errors.New("audio: unknown sound")

// Mute is a Player that plays nothing.
type Mute struct{}

// Play does nothing.
func (Mute) Play(SoundType) {}

// Close does nothing.
func (Mute) Close() {}

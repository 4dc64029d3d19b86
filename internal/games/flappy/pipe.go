package flappy

import (
	"github.com/vovakirdan/flappy-tui/internal/config"
)

// Rand is the random source pipes draw their gap from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Pipe is one obstacle: a top piece hanging down to the gap and a bottom
// piece rising from it. Only X changes after creation.
type Pipe struct {
	X         float64
	GapCenter int  // drawn once at creation
	Top       int  // Y of the top piece's origin (gap center minus sprite height)
	Bottom    int  // Y of the bottom piece's origin
	Passed    bool // set once the pipe falls behind the bird

	velocity float64
}

// NewPipe creates a pipe at spawnX with a random gap center in
// [MinGapCenter, MaxGapCenter). pipeHeight is the height of the pipe sprite.
func NewPipe(spawnX float64, cfg config.Pipes, pipeHeight int, rng Rand) *Pipe {
	center := cfg.MinGapCenter
	if span := cfg.MaxGapCenter - cfg.MinGapCenter; span > 0 {
		center += rng.Intn(span)
	}

	return &Pipe{
		X:         spawnX,
		GapCenter: center,
		Top:       center - pipeHeight,
		Bottom:    center + cfg.Gap,
		velocity:  cfg.Velocity,
	}
}

// Advance scrolls the pipe left by its fixed velocity.
func (p *Pipe) Advance() {
	p.X -= p.velocity
}

// MarkPassed sets Passed the first time the pipe is left of birdX.
// It returns true only on that transition.
func (p *Pipe) MarkPassed(birdX float64) bool {
	if p.Passed || p.X >= birdX {
		return false
	}
	p.Passed = true
	return true
}

// OffScreen reports whether the pipe's right edge is left of x = 0.
func (p *Pipe) OffScreen(width int) bool {
	return p.X+float64(width) < 0
}

package flappy

import (
	"github.com/vovakirdan/flappy-tui/internal/config"
)

// StreamResult reports what happened to the pipes during one tick.
type StreamResult struct {
	Scored  int // pipes that fell behind the bird this tick
	Spawned int
	Evicted int
}

// PipeStream handles spawning, movement, scoring and removal of pipes.
type PipeStream struct {
	pipes []*Pipe
	rng   Rand
	cfg   config.Pipes
	pipeW int
	pipeH int
}

// NewPipeStream creates a stream with one pipe waiting off-screen.
// pipeW and pipeH are the pipe sprite dimensions.
func NewPipeStream(cfg config.Pipes, pipeW, pipeH int, rng Rand) *PipeStream {
	s := &PipeStream{
		pipes: make([]*Pipe, 0, 4),
		rng:   rng,
		cfg:   cfg,
		pipeW: pipeW,
		pipeH: pipeH,
	}
	s.Reset()
	return s
}

// Reset drops all pipes and pre-spawns a single one at the spawn point.
func (s *PipeStream) Reset() {
	s.pipes = s.pipes[:0]
	s.spawn()
}

// Step advances every pipe, scores the ones that just passed birdX, spawns
// one replacement per scored pipe and evicts pipes that left the screen.
func (s *PipeStream) Step(birdX float64) StreamResult {
	var res StreamResult

	for _, p := range s.pipes {
		p.Advance()
	}

	for _, p := range s.pipes {
		if p.MarkPassed(birdX) {
			res.Scored++
		}
	}
	for i := 0; i < res.Scored; i++ {
		s.spawn()
		res.Spawned++
	}

	kept := s.pipes[:0]
	for _, p := range s.pipes {
		if p.OffScreen(s.pipeW) {
			res.Evicted++
			continue
		}
		kept = append(kept, p)
	}
	// Drop references held past the new length
	for i := len(kept); i < len(s.pipes); i++ {
		s.pipes[i] = nil
	}
	s.pipes = kept

	return res
}

// spawn appends a new pipe at the configured spawn point.
func (s *PipeStream) spawn() {
	s.pipes = append(s.pipes, NewPipe(s.cfg.SpawnX, s.cfg, s.pipeH, s.rng))
}

// Pipes returns the live pipes in creation order.
func (s *PipeStream) Pipes() []*Pipe {
	return s.pipes
}

// Size returns the pipe sprite dimensions.
func (s *PipeStream) Size() (int, int) {
	return s.pipeW, s.pipeH
}

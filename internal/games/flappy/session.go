package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Renderer receives the draw calls for one frame.
// Positions are world coordinates of the sprite's top-left corner; rotation
// is in degrees counterclockwise around the sprite center.
type Renderer interface {
	DrawSprite(id core.SpriteID, pos core.Vec, rotation float64)
	DrawText(text string, pos core.Vec, align core.Align)
}

// State is the session phase.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StepResult is returned by Session.Step after each tick.
type StepResult struct {
	State   core.GameState
	Quit    bool // a quit event was consumed
	Flapped bool // the bird jumped this tick
	Scored  int  // pipes passed this tick
	Crashed bool // the run ended this tick
	Reset   bool // the session was reset this tick
}

// Session owns one run of the game: bird, pipes, ground, score and phase.
type Session struct {
	cfg    config.FlappyConfig
	sheet  SpriteSheet
	oracle *Oracle
	rng    Rand

	bird   *Bird
	pipes  *PipeStream
	ground *Ground

	score int
	best  int
	ticks int
	state State
}

// NewSession creates a session ready to play.
func NewSession(cfg config.FlappyConfig, sheet SpriteSheet, rng Rand) *Session {
	s := &Session{
		cfg:    cfg,
		sheet:  sheet,
		oracle: NewOracle(sheet),
		rng:    rng,
	}
	s.Reset()
	return s
}

// Reset restarts the run. The best score survives.
func (s *Session) Reset() {
	baseW, _ := s.sheet.Size(core.SpriteBase)
	pipeW, pipeH := s.sheet.Size(core.SpritePipeTop)

	s.bird = NewBird(s.cfg.Bird.StartX, s.cfg.Bird.StartY, s.cfg.Bird)
	s.ground = NewGround(s.cfg.Ground.Y, baseW, s.cfg.Ground)
	if s.pipes == nil {
		s.pipes = NewPipeStream(s.cfg.Pipes, pipeW, pipeH, s.rng)
	} else {
		s.pipes.Reset()
	}

	s.score = 0
	s.ticks = 0
	s.state = StatePlaying
}

// Step consumes one frame's events in order and, while playing, advances
// the simulation by one tick: bird, ground, pipes, then collisions. A frame
// carrying a quit event does not advance.
func (s *Session) Step(events []core.Event) StepResult {
	var res StepResult

	for _, e := range events {
		switch e.Kind {
		case core.EventQuit:
			res.Quit = true
		case core.EventJump:
			if s.state == StatePlaying {
				s.bird.Jump()
				res.Flapped = true
			}
		case core.EventClick:
			if s.resetButton().ContainsVec(e.Pos) {
				s.Reset()
				res.Reset = true
			}
		case core.EventReset:
			s.Reset()
			res.Reset = true
		}
	}

	if res.Quit {
		res.State = s.State()
		return res
	}

	if s.state == StatePlaying {
		s.ticks++
		s.bird.Advance()
		s.ground.Advance()

		stream := s.pipes.Step(s.bird.X)
		s.score += stream.Scored
		res.Scored = stream.Scored
		if s.score > s.best {
			s.best = s.score
		}

		if s.collided() {
			s.state = StateGameOver
			res.Crashed = true
		}
	}

	res.State = s.State()
	return res
}

// collided checks every pipe and the ground line.
func (s *Session) collided() bool {
	for _, p := range s.pipes.Pipes() {
		if s.oracle.Collides(s.bird, p) {
			return true
		}
	}
	return s.oracle.GroundContact(s.bird, s.ground.Y)
}

// resetButton returns the reset control's hit region.
func (s *Session) resetButton() core.Rect {
	b := s.cfg.Controls.ResetButton
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Render draws the current frame. A finished run stays frozen under the
// game-over overlay.
func (s *Session) Render(r Renderer) {
	r.DrawSprite(core.SpriteBackground, core.Vec{}, 0)

	for _, p := range s.pipes.Pipes() {
		r.DrawSprite(core.SpritePipeTop, core.Vec{X: p.X, Y: float64(p.Top)}, 0)
		r.DrawSprite(core.SpritePipeBottom, core.Vec{X: p.X, Y: float64(p.Bottom)}, 0)
	}

	r.DrawSprite(core.SpriteBase, core.Vec{X: s.ground.X1, Y: s.ground.Y}, 0)
	r.DrawSprite(core.SpriteBase, core.Vec{X: s.ground.X2, Y: s.ground.Y}, 0)

	r.DrawSprite(s.bird.Frame(), core.Vec{X: s.bird.X, Y: s.bird.Y}, s.bird.Tilt)

	w := float64(s.cfg.World.Width)
	h := float64(s.cfg.World.Height)
	r.DrawText(fmt.Sprintf("Score: %d", s.score), core.Vec{X: w - 15, Y: 10}, core.AlignRight)

	cx, cy := s.resetButton().Center()
	r.DrawText(s.cfg.Controls.ResetButton.Label, core.Vec{X: float64(cx), Y: float64(cy)}, core.AlignCenter)

	if s.state == StateGameOver {
		r.DrawText("GAME OVER", core.Vec{X: w / 2, Y: h/2 - 60}, core.AlignCenter)
		r.DrawText(fmt.Sprintf("Score: %d  Best: %d", s.score, s.best), core.Vec{X: w / 2, Y: h / 2}, core.AlignCenter)
		r.DrawText("Press R or click "+s.cfg.Controls.ResetButton.Label, core.Vec{X: w / 2, Y: h/2 + 60}, core.AlignCenter)
	}
}

// State returns the snapshot frontends display.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Best:     s.best,
		Tick:     s.ticks,
		GameOver: s.state == StateGameOver,
	}
}

// Phase returns the current state machine phase.
func (s *Session) Phase() State {
	return s.state
}

// Bird returns the bird for inspection.
func (s *Session) Bird() *Bird {
	return s.bird
}

// Pipes returns the pipe stream for inspection.
func (s *Session) Pipes() *PipeStream {
	return s.pipes
}

// Ground returns the ground scroller for inspection.
func (s *Session) Ground() *Ground {
	return s.ground
}

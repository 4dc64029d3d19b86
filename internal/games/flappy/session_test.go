package flappy

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/flappy-tui/internal/assets"
	"github.com/vovakirdan/flappy-tui/internal/core"
)

func newTestSession() *Session {
	return NewSession(defaultCfg(), newRectSheet(68, 48, 104, 640), &stubRand{values: []int{200}})
}

// crash runs the session without input until the bird hits the ground.
func crash(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 100; i++ {
		if s.Step(nil).Crashed {
			return
		}
	}
	t.Fatal("bird never crashed")
}

func TestNewSession(t *testing.T) {
	s := newTestSession()

	st := s.State()
	if st.Score != 0 || st.Best != 0 || st.Tick != 0 || st.GameOver {
		t.Errorf("initial state = %+v", st)
	}
	if s.Phase() != StatePlaying {
		t.Errorf("Phase() = %v, expected playing", s.Phase())
	}
	if b := s.Bird(); b.X != 230 || b.Y != 350 || b.Tilt != 0 {
		t.Errorf("bird = %+v", b)
	}
	if n := len(s.Pipes().Pipes()); n != 1 {
		t.Errorf("expected 1 pipe, got %d", n)
	}
	if g := s.Ground(); g.X1 != 0 || g.X2 != 672 || g.Y != 730 {
		t.Errorf("ground = %+v", g)
	}
}

func TestSessionFallsToGround(t *testing.T) {
	s := newTestSession()

	var res StepResult
	tick := 0
	for tick < 100 {
		tick++
		res = s.Step(nil)
		if res.Crashed {
			break
		}
	}

	// 350 + 0.75 + 3 + 6.75 + 33*10; 690.5 + 48 reaches 730
	if tick != 36 {
		t.Errorf("crashed at tick %d, expected 36", tick)
	}
	if s.Bird().Y != 690.5 {
		t.Errorf("Y at crash = %v, expected 690.5", s.Bird().Y)
	}
	if !res.State.GameOver || s.Phase() != StateGameOver {
		t.Errorf("expected game over, got %+v", res.State)
	}
	if res.State.Tick != 36 {
		t.Errorf("Tick = %d, expected 36", res.State.Tick)
	}
}

func TestGameOverFreezes(t *testing.T) {
	s := newTestSession()
	crash(t, s)

	y := s.Bird().Y
	pipeX := s.Pipes().Pipes()[0].X
	groundX := s.Ground().X1
	frame := s.Bird().Frame()
	before := s.State()

	for i := 0; i < 10; i++ {
		res := s.Step([]core.Event{{Kind: core.EventJump}})
		if res.Flapped || res.Crashed || res.Scored != 0 {
			t.Fatalf("frozen step reported activity: %+v", res)
		}
	}

	if s.Bird().Y != y || s.Pipes().Pipes()[0].X != pipeX || s.Ground().X1 != groundX {
		t.Error("world moved after game over")
	}
	if s.Bird().Frame() != frame {
		t.Error("wing animation ran after game over")
	}
	if s.State() != before {
		t.Errorf("state changed: %+v -> %+v", before, s.State())
	}
}

func TestResetByClick(t *testing.T) {
	tests := []struct {
		name  string
		pos   core.Vec
		reset bool
	}{
		{"center of button", core.Vec{X: 60, Y: 35}, true},
		{"top-left corner", core.Vec{X: 10, Y: 10}, true},
		{"just past right edge", core.Vec{X: 110, Y: 30}, false},
		{"middle of screen", core.Vec{X: 250, Y: 400}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession()
			crash(t, s)

			res := s.Step([]core.Event{{Kind: core.EventClick, Pos: tt.pos}})

			if res.Reset != tt.reset {
				t.Errorf("Reset = %v, expected %v", res.Reset, tt.reset)
			}
			if tt.reset && (s.Phase() != StatePlaying || res.State.Tick != 1) {
				t.Errorf("expected fresh run one tick in, got %v %+v", s.Phase(), res.State)
			}
			if !tt.reset && s.Phase() != StateGameOver {
				t.Errorf("click outside button changed phase to %v", s.Phase())
			}
		})
	}
}

func TestResetWhilePlaying(t *testing.T) {
	s := newTestSession()
	for i := 0; i < 20; i++ {
		s.Step(nil)
	}

	res := s.Step([]core.Event{{Kind: core.EventReset}})

	if !res.Reset {
		t.Fatal("expected reset")
	}
	// Reset, then one tick of fall from the start
	if s.Bird().Y != 350.75 {
		t.Errorf("Y = %v, expected 350.75", s.Bird().Y)
	}
	if p := s.Pipes().Pipes(); len(p) != 1 || p[0].X != 696 {
		t.Errorf("expected one pipe at 696, got %d", len(p))
	}
}

func TestEventOrderMatters(t *testing.T) {
	tests := []struct {
		name    string
		events  []core.Event
		y       float64
		flapped bool
	}{
		{
			name:    "jump before reset is dropped",
			events:  []core.Event{{Kind: core.EventJump}, {Kind: core.EventReset}},
			y:       350.75,
			flapped: false,
		},
		{
			name:    "jump after reset flaps the new bird",
			events:  []core.Event{{Kind: core.EventReset}, {Kind: core.EventJump}},
			y:       343.75,
			flapped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession()
			crash(t, s)

			res := s.Step(tt.events)

			if res.Flapped != tt.flapped {
				t.Errorf("Flapped = %v, expected %v", res.Flapped, tt.flapped)
			}
			if s.Bird().Y != tt.y {
				t.Errorf("Y = %v, expected %v", s.Bird().Y, tt.y)
			}
		})
	}
}

func TestQuitEvent(t *testing.T) {
	s := newTestSession()

	y := s.Bird().Y
	res := s.Step([]core.Event{{Kind: core.EventJump}, {Kind: core.EventQuit}})
	if !res.Quit {
		t.Error("expected Quit")
	}
	if res.State.Tick != 0 || s.Bird().Y != y {
		t.Errorf("quit frame advanced: tick %d, y %v (was %v)", res.State.Tick, s.Bird().Y, y)
	}
	if s.Pipes().Pipes()[0].X != 700 {
		t.Errorf("pipe moved to %v on the quit frame", s.Pipes().Pipes()[0].X)
	}

	res = s.Step(nil)
	if res.Quit {
		t.Error("Quit should not persist across steps")
	}
}

func TestScoringAndBest(t *testing.T) {
	cfg := defaultCfg()
	cfg.Ground.Y = 1e9 // never touch the ground
	sheet := newRectSheet(68, 48, 104, 640).hollowBird()
	s := NewSession(cfg, sheet, &stubRand{values: []int{200}})

	for i := 0; i < 117; i++ {
		s.Step(nil)
	}
	if s.State().Score != 0 {
		t.Fatalf("score before passing = %d", s.State().Score)
	}

	res := s.Step(nil)
	if res.Scored != 1 || res.State.Score != 1 || res.State.Best != 1 {
		t.Fatalf("tick 118 = %+v, expected the first point", res)
	}
	if res.Crashed {
		t.Fatal("hollow bird should never crash")
	}

	s.Step([]core.Event{{Kind: core.EventReset}})
	st := s.State()
	if st.Score != 0 || st.Best != 1 {
		t.Errorf("after reset = %+v, expected score 0 best 1", st)
	}
}

func TestSessionDeterministic(t *testing.T) {
	script := func(tick int) []core.Event {
		if tick%9 == 0 {
			return []core.Event{{Kind: core.EventJump}}
		}
		return nil
	}

	run := func() ([]StepResult, []Pipe) {
		s := NewSession(defaultCfg(), assets.Procedural(), rand.New(rand.NewSource(2024)))
		var results []StepResult
		for tick := 0; tick < 400; tick++ {
			results = append(results, s.Step(script(tick)))
		}
		var pipes []Pipe
		for _, p := range s.Pipes().Pipes() {
			pipes = append(pipes, *p)
		}
		return results, pipes
	}

	r1, p1 := run()
	r2, p2 := run()
	if !reflect.DeepEqual(r1, r2) {
		t.Error("step results diverged for the same seed and input")
	}
	if !reflect.DeepEqual(p1, p2) {
		t.Error("pipes diverged for the same seed and input")
	}
}

func TestPipeCollisionEndsRun(t *testing.T) {
	s := NewSession(defaultCfg(), assets.Procedural(), &stubRand{values: []int{200}})

	p := s.Pipes().Pipes()[0]
	p.X = 234
	p.Top = -1000
	p.Bottom = 355

	res := s.Step(nil)
	if !res.Crashed || !res.State.GameOver {
		t.Fatalf("expected crash into the bottom piece, got %+v", res)
	}
	if res.Scored != 0 {
		t.Errorf("pipe level with the bird should not score, got %d", res.Scored)
	}
}

func TestRenderOrder(t *testing.T) {
	s := newTestSession()
	r := &recorder{}
	s.Render(r)

	var sprites []core.SpriteID
	for _, c := range r.calls {
		if !c.isText {
			sprites = append(sprites, c.sprite)
		}
	}
	expected := []core.SpriteID{
		core.SpriteBackground,
		core.SpritePipeTop,
		core.SpritePipeBottom,
		core.SpriteBase,
		core.SpriteBase,
		core.SpriteBird0,
	}
	if !reflect.DeepEqual(sprites, expected) {
		t.Errorf("sprites = %v, expected %v", sprites, expected)
	}

	if texts := r.texts(); !reflect.DeepEqual(texts, []string{"Score: 0", "Reset"}) {
		t.Errorf("texts = %q", texts)
	}

	pipe := r.calls[1]
	if pipe.pos != (core.Vec{X: 700, Y: -390}) {
		t.Errorf("top pipe drawn at %+v", pipe.pos)
	}
	score := r.calls[6]
	if score.align != core.AlignRight || score.pos != (core.Vec{X: 485, Y: 10}) {
		t.Errorf("score text at %+v align %v", score.pos, score.align)
	}
}

func TestRenderGameOver(t *testing.T) {
	s := newTestSession()
	crash(t, s)

	r := &recorder{}
	s.Render(r)

	expected := []string{
		"Score: 0",
		"Reset",
		"GAME OVER",
		"Score: 0  Best: 0",
		"Press R or click Reset",
	}
	if texts := r.texts(); !reflect.DeepEqual(texts, expected) {
		t.Errorf("texts = %q, expected %q", texts, expected)
	}

	last := r.calls[len(r.calls)-6]
	if last.isText || last.rotation != s.Bird().Tilt {
		t.Errorf("bird drawn with rotation %v, expected %v", last.rotation, s.Bird().Tilt)
	}
}

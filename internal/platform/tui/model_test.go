package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-tui/internal/audio"
	"github.com/vovakirdan/flappy-tui/internal/config"
)

// soundLog records played effects.
type soundLog struct {
	played []audio.SoundType
	closed bool
}

func (s *soundLog) Play(st audio.SoundType) { s.played = append(s.played, st) }
func (s *soundLog) Close()                  { s.closed = true }

func newTestModel(sound audio.Player) Model {
	return NewModel(Options{
		Config: config.DefaultFlappyConfig(),
		Seed:   1,
		Sound:  sound,
		Width:  50,
		Height: 41, // 40 canvas rows plus the help line
	})
}

// send feeds one message and returns the updated model and command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestInputWaitsForTick(t *testing.T) {
	m := newTestModel(nil)

	m, _ = send(t, m, runeKey(' '))
	if y := m.session.Bird().Y; y != 350 {
		t.Fatalf("bird moved before the tick: %v", y)
	}

	m, cmd := send(t, m, TickMsg{})
	if y := m.session.Bird().Y; y != 343.75 {
		t.Errorf("Y after flap tick = %v, expected 343.75", y)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.events.Len() != 0 {
		t.Errorf("queue not drained: %d events", m.events.Len())
	}
}

func TestQuitOnNextTick(t *testing.T) {
	sound := &soundLog{}
	m := newTestModel(sound)

	m, cmd := send(t, m, runeKey('q'))
	if cmd != nil || m.quitting {
		t.Fatal("quit should wait for the tick")
	}

	m, cmd = send(t, m, TickMsg{})
	if !m.quitting {
		t.Error("model not quitting")
	}
	if m.State().Tick != 0 {
		t.Errorf("quit tick advanced the game to tick %d", m.State().Tick)
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("command returned %T, expected tea.QuitMsg", cmd())
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestClickResetButton(t *testing.T) {
	m := newTestModel(nil)
	for i := 0; i < 100 && !m.State().GameOver; i++ {
		m, _ = send(t, m, TickMsg{})
	}
	if !m.State().GameOver {
		t.Fatal("bird never crashed")
	}

	// Cell (6, 1) maps to world (65, 30), inside the button
	m, _ = send(t, m, tea.MouseMsg{X: 6, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, TickMsg{})

	st := m.State()
	if st.GameOver || st.Tick != 1 {
		t.Errorf("expected a fresh run, got %+v", st)
	}
}

func TestMouseIgnoresOtherButtons(t *testing.T) {
	m := newTestModel(nil)

	msgs := []tea.MouseMsg{
		{X: 6, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		{X: 6, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		{X: 6, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
	}
	for _, msg := range msgs {
		m, _ = send(t, m, msg)
	}
	if m.events.Len() != 0 {
		t.Errorf("expected no events, got %d", m.events.Len())
	}
}

func TestSoundsFollowGame(t *testing.T) {
	sound := &soundLog{}
	m := newTestModel(sound)

	m, _ = send(t, m, runeKey('w'))
	m, _ = send(t, m, TickMsg{})
	if len(sound.played) != 1 || sound.played[0] != audio.SoundFlap {
		t.Fatalf("played %v, expected [flap]", sound.played)
	}

	for i := 0; i < 100 && !m.State().GameOver; i++ {
		m, _ = send(t, m, TickMsg{})
	}
	if last := sound.played[len(sound.played)-1]; last != audio.SoundHit {
		t.Errorf("last sound = %v, expected hit", last)
	}
}

func TestResizeAndHelp(t *testing.T) {
	m := newTestModel(nil)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 51})
	if cols, rows := m.canvas.Size(); cols != 120 || rows != 50 {
		t.Errorf("canvas size = %d,%d, expected 120,50", cols, rows)
	}

	m, _ = send(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
	if m.events.Len() != 0 {
		t.Error("help toggle should not reach the game")
	}
}

func TestViewShowsHUD(t *testing.T) {
	m := newTestModel(nil)

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("view missing score")
	}
	if !strings.Contains(view, "Reset") {
		t.Error("view missing reset button")
	}
	if !strings.Contains(view, "flap") {
		t.Error("view missing help line")
	}
}

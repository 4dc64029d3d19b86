package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-tui/internal/assets"
	"github.com/vovakirdan/flappy-tui/internal/audio"
	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/games/flappy"
)

// footerHeight is the number of rows reserved for the help line.
const footerHeight = 1

// Options configure a game model.
type Options struct {
	Config config.FlappyConfig
	Assets *assets.Assets
	Seed   int64 // 0 picks a time-based seed
	Sound  audio.Player
	Logger *log.Logger
	// Renderer styles the output; nil uses the local terminal.
	Renderer *lipgloss.Renderer
	// Initial terminal size; a WindowSizeMsg replaces it.
	Width, Height int
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	session  *flappy.Session
	canvas   *Canvas
	events   *core.EventQueue
	keys     KeyMap
	help     help.Model
	sound    audio.Player
	logger   *log.Logger
	renderer *lipgloss.Renderer
	button   core.Rect
	tickRate int
	seed     int64
	quitting bool
}

// NewModel creates a new Bubble Tea model for one game session.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Assets == nil {
		opts.Assets = assets.Procedural()
	}
	if opts.Sound == nil {
		opts.Sound = audio.Mute{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}

	cfg := opts.Config
	b := cfg.Controls.ResetButton
	h := help.New()

	return Model{
		session:  flappy.NewSession(cfg, opts.Assets, rand.New(rand.NewSource(opts.Seed))),
		canvas:   NewCanvas(opts.Assets, cfg.World.Width, cfg.World.Height, opts.Width, opts.Height-footerHeight),
		events:   &core.EventQueue{},
		keys:     DefaultKeyMap(),
		help:     h,
		sound:    opts.Sound,
		logger:   opts.Logger,
		renderer: opts.Renderer,
		button:   core.NewRect(b.X, b.Y, b.W, b.H),
		tickRate: cfg.TickRate,
		seed:     opts.Seed,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "seed", m.seed, "tick_rate", m.tickRate)
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height-footerHeight)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the event for the next tick. Only the help toggle acts
// immediately since it never touches the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if kind := m.keys.EventFor(msg); kind != core.EventNone {
		m.events.Push(core.Event{Kind: kind})
	}
	return m, nil
}

// handleMouse turns left clicks inside the world into click events.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if pos, ok := m.canvas.CellToWorld(msg.X, msg.Y); ok {
		m.events.Push(core.Event{Kind: core.EventClick, Pos: pos})
	}
	return m, nil
}

// handleTick feeds the queued events to the session and advances one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.session.Step(m.events.Drain())

	if res.Flapped {
		m.sound.Play(audio.SoundFlap)
	}
	if res.Scored > 0 {
		m.sound.Play(audio.SoundScore)
		m.logger.Debug("pipe passed", "score", res.State.Score)
	}
	if res.Reset {
		m.logger.Debug("session reset", "best", res.State.Best)
	}
	if res.Crashed {
		m.sound.Play(audio.SoundHit)
		m.logger.Info("game over",
			"score", res.State.Score,
			"best", res.State.Best,
			"ticks", res.State.Tick,
		)
	}

	if res.Quit {
		m.quitting = true
		m.logger.Info("quit", "score", res.State.Score, "best", res.State.Best)
		return m, tea.Quit
	}

	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Begin()
	m.canvas.SetButton(m.button)
	m.session.Render(m.canvas)
	screen := m.canvas.Frame()

	return RenderScreen(screen, m.renderer) + "\n" + m.help.View(m.keys)
}

// State returns the current game snapshot.
func (m Model) State() core.GameState {
	return m.session.State()
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks reach the reset button
	)

	_, err := p.Run()
	model.sound.Close()
	return err
}

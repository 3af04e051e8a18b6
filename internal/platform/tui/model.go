package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

// Publisher receives per-tick telemetry from the running game.
type Publisher interface {
	Publish(game string, t core.Telemetry)
}

// flightInfo is implemented by games that report flight progress.
type flightInfo interface {
	Level() int
	Ticks() int
	Fuel() float64
}

// Options configures a game model.
type Options struct {
	Store     *storage.Store
	Publisher Publisher
	HoldTicks int  // ticks a key press stays held; 0 means a quarter second
	ShowFPS   bool // draw the measured frame rate in the top-right corner
	Embedded  bool // running inside a session: back returns to the menu
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	opts      Options
	config    core.RuntimeConfig
	keys      *KeyMapper
	held      *core.HeldKeys
	help      help.Model
	fps       *fpsMeter
	gameState core.GameState

	flightStart int // game ticks when the current flight began
	scoreSaved  bool
	showHelp    bool
	quitting    bool
	backToMenu  bool
	status      string
	fixedSeed   bool // seed came from the caller; restarts reuse it
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.HoldTicks <= 0 {
		opts.HoldTicks = cfg.TickRate / 4
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:   opts,
		config: cfg,
		keys:   NewKeyMapper(),
		held:   core.NewHeldKeys(opts.HoldTicks),
		help:   help.New(),
		fps:    &fpsMeter{},

		fixedSeed: fixedSeed,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys.Keys()
	switch {
	case key.Matches(msg, k.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + filepath.Base(path)
		}
		return m, nil

	case key.Matches(msg, k.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, k.Back):
		if m.gameState.GameOver || m.gameState.Paused {
			m.finish()
			m.backToMenu = true
			if !m.opts.Embedded {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, nil
	}

	if m.keys.MapKeyToHeld(msg, m.held) {
		m.finish()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	if msg.Width == m.screen.Width() && msg.Height == m.screen.Height() {
		return m, nil
	}
	m.screen.Resize(msg.Width, msg.Height)

	// The playfield is sized to the terminal, so a resize starts over
	if !m.gameState.GameOver {
		m.finish()
		m.restart()
	}

	return m, nil
}

// restart begins a new game on the current playfield.
func (m *Model) restart() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.flightStart = 0
	m.held.Reset()
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.fps.Frame(now)
	in := m.held.Frame()

	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in)
	m.gameState = result.State
	m.held.Tick()

	for _, ev := range result.Events {
		switch ev {
		case core.EventLanded:
			m.logFlight(storage.OutcomeLanded)
		case core.EventCrashed:
			m.logFlight(storage.OutcomeCrashed)
		}
	}

	if m.gameState.GameOver {
		m.saveScore()
	}

	if m.opts.Publisher != nil {
		if src, ok := m.game.(core.TelemetrySource); ok {
			m.opts.Publisher.Publish(m.game.ID(), src.Telemetry())
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// finish records an abandoned flight and the score reached so far.
func (m *Model) finish() {
	if !m.gameState.GameOver {
		m.logFlight(storage.OutcomeQuit)
	}
	m.saveScore()
}

// saveScore stores the score once per game.
func (m *Model) saveScore() {
	if m.scoreSaved || m.gameState.Score <= 0 {
		return
	}
	if m.opts.Store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.opts.Store.SaveScore(m.game.ID(), m.gameState.Score)
	}
	m.scoreSaved = true
}

// logFlight appends the current flight to the flight log.
func (m *Model) logFlight(outcome storage.Outcome) {
	fi, ok := m.game.(flightInfo)
	if !ok {
		return
	}
	ticks := fi.Ticks()
	if outcome == storage.OutcomeQuit && ticks == m.flightStart {
		return
	}

	if m.opts.Store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.opts.Store.SaveFlight(storage.Flight{
			GameID:        m.game.ID(),
			Level:         fi.Level(),
			Outcome:       outcome,
			Score:         m.gameState.Score,
			FuelLeft:      fi.Fuel(),
			DurationTicks: ticks - m.flightStart,
		})
	}
	m.flightStart = ticks
}

// saveScreenshot writes the current screen as text to
// ~/.lander/screenshots/<game>_<timestamp>.txt.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	dir := filepath.Join(home, ".lander", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.drawOverlay()

	if !m.showHelp {
		return RenderScreen(m.screen)
	}
	m.help.ShowAll = true
	helpView := m.help.View(m.keys.Keys())
	rows := m.screen.Height() - lineCount(helpView)
	return RenderRows(m.screen, rows) + "\n" + helpView
}

// drawOverlay draws the FPS counter and status line over the game.
func (m Model) drawOverlay() {
	w := m.screen.Width()
	if m.opts.ShowFPS {
		text := fmt.Sprintf("FPS %3.0f", m.fps.fps)
		m.screen.DrawTextColor(w-len(text)-1, 0, text, core.ColorGray)
	}
	if m.status != "" {
		m.screen.DrawTextColor(1, m.screen.Height()-1, m.status, core.ColorGray)
	}
}

func lineCount(s string) int {
	n := 1
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting && !m.backToMenu
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

package tui

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

// fakeGame lands on the first thrust tick and crashes on the first retro tick.
type fakeGame struct {
	state  core.GameState
	ticks  int
	level  int
	resets int
	seeds  []int64
}

func (g *fakeGame) ID() string    { return "test_pilot" }
func (g *fakeGame) Title() string { return "Test Pilot" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.seeds = append(g.seeds, cfg.Seed)
	g.state = core.GameState{}
	g.ticks = 0
	g.level = 1
	g.resets++
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if g.state.GameOver {
		return core.StepResult{State: g.state}
	}
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if g.state.Paused {
		return core.StepResult{State: g.state}
	}
	g.ticks++

	var events []core.Event
	switch {
	case in.Has(core.ActionThrustUp):
		g.state.Score += 100
		g.level++
		events = append(events, core.EventLanded)
	case in.Has(core.ActionThrustDown):
		g.state.GameOver = true
		events = append(events, core.EventCrashed)
	}
	return core.StepResult{State: g.state, Events: events}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 1, "PILOT")
}

func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Level() int            { return g.level }
func (g *fakeGame) Ticks() int            { return g.ticks }
func (g *fakeGame) Fuel() float64         { return 42 }

func (g *fakeGame) Telemetry() core.Telemetry {
	return core.Telemetry{Tick: g.ticks, Score: g.state.Score}
}

func init() {
	registry.Register("test_pilot", func() registry.Game { return &fakeGame{} })
}

type recordingPublisher struct {
	mu     sync.Mutex
	frames []core.Telemetry
}

func (p *recordingPublisher) Publish(_ string, t core.Telemetry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frames = append(p.frames, t)
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
}

// press sends a key and then one tick.
func press(t *testing.T, m Model, k string) Model {
	t.Helper()
	next, _ := m.Update(keyMsg(k))
	m = next.(Model)
	next, _ = m.Update(TickMsg(time.Now()))
	return next.(Model)
}

func TestModelLogsFlightsAndScore(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{}
	m := NewModel(game, testRuntime(), Options{Store: store, HoldTicks: 1})
	m.Init()

	m = press(t, m, "w") // land
	m = press(t, m, "s") // crash
	if !m.gameState.GameOver {
		t.Fatal("expected game over after crash")
	}

	// Further ticks must not save again
	for i := 0; i < 5; i++ {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}

	scores, err := store.TopScores("test_pilot", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 100 {
		t.Errorf("expected one saved score of 100, got %+v", scores)
	}

	flights, err := store.RecentFlights("test_pilot", 10)
	if err != nil {
		t.Fatalf("RecentFlights() failed: %v", err)
	}
	if len(flights) != 2 {
		t.Fatalf("expected 2 flights, got %d", len(flights))
	}
	if flights[0].Outcome != storage.OutcomeCrashed || flights[1].Outcome != storage.OutcomeLanded {
		t.Errorf("unexpected outcomes: %s, %s", flights[0].Outcome, flights[1].Outcome)
	}
	if flights[1].FuelLeft != 42 {
		t.Errorf("expected fuel 42, got %v", flights[1].FuelLeft)
	}
}

func TestModelHeldKeysPersistAcrossTicks(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testRuntime(), Options{HoldTicks: 3})
	m.Init()

	m = press(t, m, "w")
	for i := 0; i < 5; i++ {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}

	// One press lands on three consecutive ticks
	if game.state.Score != 300 {
		t.Errorf("score = %d, want 300", game.state.Score)
	}
}

func TestModelRestart(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testRuntime(), Options{HoldTicks: 1})
	m.Init()

	m = press(t, m, "s")
	if !m.gameState.GameOver {
		t.Fatal("expected game over")
	}

	m = press(t, m, "r")
	if m.gameState.GameOver {
		t.Error("restart should clear game over")
	}
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
}

func TestModelRestartKeepsGivenSeed(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testRuntime(), Options{HoldTicks: 1})
	m.Init()

	m = press(t, m, "s")
	m = press(t, m, "r")

	if len(game.seeds) != 2 || game.seeds[0] != 1 || game.seeds[1] != 1 {
		t.Errorf("seeds = %v, want [1 1]", game.seeds)
	}
}

func TestModelRestartPicksNewSeedWhenUnset(t *testing.T) {
	game := &fakeGame{}
	rt := testRuntime()
	rt.Seed = 0
	m := NewModel(game, rt, Options{HoldTicks: 1})
	m.Init()

	m = press(t, m, "s")
	time.Sleep(time.Millisecond)
	m = press(t, m, "r")

	if len(game.seeds) != 2 || game.seeds[0] == 0 || game.seeds[0] == game.seeds[1] {
		t.Errorf("seeds = %v, want two distinct non-zero seeds", game.seeds)
	}
}

func TestModelResizeSavesUnfinishedGame(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{}
	m := NewModel(game, testRuntime(), Options{Store: store, HoldTicks: 1})
	m.Init()

	m = press(t, m, "w")
	m = press(t, m, "w")
	next, _ := m.Update(TickMsg(time.Now())) // fly a little past the last pad
	m = next.(Model)

	// Same size is not a resize
	next, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	m = next.(Model)
	if game.resets != 1 {
		t.Fatalf("resets = %d after same-size message, want 1", game.resets)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	m = next.(Model)

	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if m.gameState.Score != 0 || m.scoreSaved {
		t.Errorf("new game should start clean: score %d, saved %v", m.gameState.Score, m.scoreSaved)
	}

	scores, err := store.TopScores("test_pilot", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 200 {
		t.Errorf("expected the 200 points reached before the resize, got %+v", scores)
	}

	flights, err := store.RecentFlights("test_pilot", 10)
	if err != nil {
		t.Fatalf("RecentFlights() failed: %v", err)
	}
	if len(flights) != 3 || flights[0].Outcome != storage.OutcomeQuit {
		t.Errorf("expected two landings and a quit flight, got %+v", flights)
	}
}

func TestModelPublishesTelemetry(t *testing.T) {
	pub := &recordingPublisher{}
	m := NewModel(&fakeGame{}, testRuntime(), Options{Publisher: pub})
	m.Init()

	for i := 0; i < 3; i++ {
		next, _ := m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}

	if len(pub.frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(pub.frames))
	}
	if pub.frames[2].Tick != 3 {
		t.Errorf("last frame tick = %d, want 3", pub.frames[2].Tick)
	}
}

func TestModelBackOnlyWhenPaused(t *testing.T) {
	store := openStore(t)
	m := NewModel(&fakeGame{}, testRuntime(), Options{Store: store, Embedded: true, HoldTicks: 1})
	m.Init()

	m = press(t, m, "esc")
	if m.BackToMenu() {
		t.Fatal("back should be ignored while flying")
	}

	m = press(t, m, "p")
	next, _ := m.Update(keyMsg("esc"))
	m = next.(Model)
	if !m.BackToMenu() {
		t.Fatal("back should work while paused")
	}
	if m.IsQuitting() {
		t.Error("embedded back must not quit")
	}

	flights, _ := store.RecentFlights("test_pilot", 10)
	if len(flights) != 1 || flights[0].Outcome != storage.OutcomeQuit {
		t.Errorf("expected one abandoned flight, got %+v", flights)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, testRuntime(), Options{})
	m.Init()

	next, cmd := m.Update(keyMsg("ctrl+c"))
	m = next.(Model)
	if !m.IsQuitting() {
		t.Error("ctrl+c should quit")
	}
	if cmd == nil {
		t.Error("expected tea.Quit command")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelViewFPSAndHelp(t *testing.T) {
	m := NewModel(&fakeGame{}, testRuntime(), Options{ShowFPS: true})
	m.Init()

	view := m.View()
	if !strings.Contains(view, "PILOT") || !strings.Contains(view, "FPS") {
		t.Errorf("view missing game or FPS overlay:\n%s", view)
	}

	next, _ := m.Update(keyMsg("?"))
	m = next.(Model)
	if !strings.Contains(m.View(), "main engine") {
		t.Error("help overlay should list key bindings")
	}
}

func TestFPSMeter(t *testing.T) {
	var f fpsMeter
	start := time.Unix(0, 0)
	for i := 0; i <= 30; i++ {
		f.Frame(start.Add(time.Duration(i) * time.Second / 30))
	}
	if f.fps < 29 || f.fps > 32 {
		t.Errorf("fps = %v, want about 30", f.fps)
	}
}

func TestSessionFlow(t *testing.T) {
	var m tea.Model = NewSessionModel(testRuntime(), Options{Store: openStore(t)})

	// Move the cursor onto the test game and select it
	items := m.(SessionModel).menu.items
	for i, item := range items {
		if item.GameID == "test_pilot" {
			for j := 0; j < i; j++ {
				m, _ = m.Update(keyMsg("down"))
			}
		}
	}
	m, cmd := m.Update(keyMsg("enter"))
	s := m.(SessionModel)
	if s.screen != screenGame || s.game == nil {
		t.Fatalf("expected game screen, got %v", s.screen)
	}
	if cmd == nil {
		t.Error("expected the game tick command")
	}

	// Crash, then go back to the menu
	m, _ = m.Update(keyMsg("s"))
	m, _ = m.Update(TickMsg(time.Now()))
	m, _ = m.Update(keyMsg("esc"))
	if s := m.(SessionModel); s.screen != screenMenu {
		t.Fatalf("expected menu after back, got %v", s.screen)
	}

	// Scoreboard and back
	m, _ = m.Update(keyMsg("tab"))
	if s := m.(SessionModel); s.screen != screenScores {
		t.Fatalf("expected scoreboard, got %v", s.screen)
	}
	m, _ = m.Update(keyMsg("esc"))
	if s := m.(SessionModel); s.screen != screenMenu {
		t.Fatalf("expected menu after scoreboard, got %v", s.screen)
	}
}

package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bigbrick/internal/core"
	"github.com/vovakirdan/bigbrick/internal/storage"
)

// stubGame records what the model feeds it.
type stubGame struct {
	resets  int
	steps   int
	last    core.InputFrame
	state   core.GameState
	events  []core.Event
	resized [2]int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Level: 1}
}
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in.Clone()
	return core.StepResult{State: g.state, Events: g.events}
}
func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState   { return g.state }
func (g *stubGame) Resize(w, h int)         { g.resized = [2]int{w, h} }

func newTestModel(t *testing.T, store *storage.Store) (Model, *stubGame) {
	t.Helper()
	g := &stubGame{}
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	cfg.Player = "alice"
	m := NewModel(g, store, nil, cfg)
	m.Init()
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

func TestModelKeysReachGame(t *testing.T) {
	m, g := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, TickMsg{})

	if !g.last.Has(core.ActionLeft) || !g.last.Has(core.ActionRotate) {
		t.Errorf("game saw %v, want Left and Rotate", g.last)
	}

	update(t, m, TickMsg{})
	if g.last.Len() != 0 {
		t.Errorf("input not cleared between ticks: %v", g.last)
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	m, g := newTestModel(t, nil)

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if g.resets != 1 {
		t.Fatalf("resets = %d, want 1 (restart ignored while playing)", g.resets)
	}

	g.state = core.GameState{Score: 10, GameOver: true}
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey('r'))
	update(t, m, TickMsg{})

	if g.resets != 2 {
		t.Errorf("resets = %d, want 2 after restart", g.resets)
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	m, g := newTestModel(t, store)
	g.state = core.GameState{Score: 150, GameOver: true}
	g.events = []core.Event{{Kind: core.EventGameOver, Value: 150}}

	for range 3 {
		m = update(t, m, TickMsg{})
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if scores[0].Player != "alice" || scores[0].Score != 150 {
		t.Errorf("saved %+v, want alice/150", scores[0])
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m, g := newTestModel(t, nil)

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resized != [2]int{100, 40} {
		t.Errorf("resized = %v, want [100 40]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, resize should not restart", g.resets)
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	back := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() {
		t.Error("esc should return to menu")
	}
	if back.View() != "" {
		t.Error("view should be empty after leaving")
	}

	quit := update(t, m, runeKey('q'))
	if quit.BackToMenu() {
		t.Error("q should quit, not return to menu")
	}
}

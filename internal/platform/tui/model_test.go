package tui

import (
	"maps"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// fakeGame records what the host feeds it and returns a scripted state.
type fakeGame struct {
	frames  []core.InputFrame
	state   core.GameState
	quit    bool
	resets  int
	resized [2]int
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState    { return g.state }
func (g *fakeGame) Resize(w, h int)          { g.resized = [2]int{w, h} }
func (g *fakeGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "fake frame") }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	// The model reuses its frame, so keep a copy.
	g.frames = append(g.frames, core.InputFrame{Actions: maps.Clone(in.Actions)})
	return core.StepResult{State: g.state, Quit: g.quit}
}

func newTestModel(t *testing.T, store *storage.Store) (Model, *fakeGame) {
	t.Helper()
	g := &fakeGame{}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, nil)
	m.screenshotDir = t.TempDir()
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestKeysReachNextTick(t *testing.T) {
	m, g := newTestModel(t, nil)

	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	if len(g.frames) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionLeft) || !g.frames[0].Has(core.ActionFire) {
		t.Errorf("first frame = %v", g.frames[0].Actions)
	}
	if len(g.frames[1].Actions) != 0 {
		t.Errorf("second frame not cleared: %v", g.frames[1].Actions)
	}
}

func TestScoreSavedOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	m, g := newTestModel(t, store)
	g.state = core.GameState{Score: 120, Level: 3, GameOver: true}
	for range 5 {
		m, _ = update(t, m, TickMsg{})
	}

	// A restart followed by a second game over saves again.
	g.state = core.GameState{Score: 0, Level: 1}
	m, _ = update(t, m, TickMsg{})
	g.state = core.GameState{Score: 40, Level: 1, GameOver: true}
	update(t, m, TickMsg{})

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 {
		t.Fatalf("saved %d scores, want 2", len(scores))
	}
	if scores[0].Score != 120 || scores[0].Level != 3 {
		t.Errorf("best = %+v", scores[0])
	}
}

func TestQuitKey(t *testing.T) {
	m, g := newTestModel(t, nil)
	m, cmd := update(t, m, runeKey('q'))

	if !isQuit(cmd) {
		t.Error("expected tea.Quit")
	}
	if len(g.frames) != 1 || !g.frames[0].Has(core.ActionQuit) {
		t.Error("game was not told about the quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestGameRequestedQuit(t *testing.T) {
	m, g := newTestModel(t, nil)
	g.quit = true
	if _, cmd := update(t, m, TickMsg{}); !isQuit(cmd) {
		t.Error("expected tea.Quit when the game asks to stop")
	}
}

func TestBackToMenu(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if !isQuit(cmd) || !m.back {
		t.Error("esc should leave to the menu")
	}
}

func TestResizeUsesResizer(t *testing.T) {
	m, g := newTestModel(t, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resized != [2]int{100, 30} {
		t.Errorf("resized = %v", g.resized)
	}
	if g.resets != 0 {
		t.Errorf("resets = %d, want 0", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestScreenshot(t *testing.T) {
	m, _ := newTestModel(t, nil)
	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.screenshotDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "fake_") {
		t.Fatalf("entries = %v", entries)
	}
	data, _ := os.ReadFile(filepath.Join(m.screenshotDir, entries[0].Name()))
	if !strings.Contains(string(data), "fake frame") {
		t.Errorf("screenshot = %q", data)
	}
}

func TestViewRendersGame(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if !strings.Contains(m.View(), "fake frame") {
		t.Error("view does not contain the game frame")
	}
}

package viz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/epicycles/internal/config"
	"github.com/san-kum/epicycles/internal/session"
	"github.com/san-kum/epicycles/internal/stroke"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func drag(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Coefficients = 9
	cfg.FrameRate = 10
	cfg.SecondsPerCycle = 2
	return cfg
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func drawingModel(t *testing.T) Model {
	t.Helper()
	s, err := session.New(testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(s, nil, WithSize(40, 12), WithOutputDir(t.TempDir()))
}

func replayModel(t *testing.T) Model {
	t.Helper()
	pts, _ := stroke.Shape("heart", 50)
	s, err := session.NewReplay(pts, testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(s, nil, WithSize(40, 12), WithOutputDir(t.TempDir()))
}

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		key  string
		want session.Command
		ok   bool
	}{
		{" ", session.Finish(), true},
		{"x", session.Pause(), true},
		{"y", session.Resume(), true},
		{"p", session.TogglePause(), true},
		{"r", session.Restart(), true},
		{"0", session.Reveal(0), true},
		{"7", session.Reveal(7), true},
		{"z", session.Command{}, false},
		{"q", session.Command{}, false},
	}
	for _, tt := range tests {
		got, ok := CommandForKey(tt.key)
		if ok != tt.ok || got != tt.want {
			t.Errorf("CommandForKey(%q) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMouseDrawing(t *testing.T) {
	m := drawingModel(t)
	m = send(t, m, press(5, 3), drag(6, 3), drag(7, 4))

	got := m.Session().Drawing()
	if len(got) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(got))
	}
	// Cell (5, 3) is canvas cell (3, 2); its center sub-pixel is (7, 10).
	if got[0].X != 7 || got[0].Y != 10 {
		t.Errorf("first sample = %+v, want (7, 10)", got[0])
	}
}

func TestMouseIgnored(t *testing.T) {
	m := drawingModel(t)
	release := tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	right := tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	outside := press(0, 0)
	m = send(t, m, release, right, outside, press(500, 5))

	if n := len(m.Session().Drawing()); n != 0 {
		t.Errorf("expected no samples, got %d", n)
	}
}

func TestFinishEmptyDrawing(t *testing.T) {
	m := drawingModel(t)
	m = send(t, m, key(" "))

	if m.Session().Phase() != session.PhaseDrawing {
		t.Error("empty drawing must stay in drawing phase")
	}
	if m.Status() != "nothing drawn yet" {
		t.Errorf("status = %q", m.Status())
	}
}

func TestDrawThenReconstruct(t *testing.T) {
	m := drawingModel(t)
	m = send(t, m, press(5, 3), drag(15, 3), drag(15, 8), drag(5, 8), key(" "))

	if m.Session().Phase() != session.PhaseReconstructing {
		t.Fatal("space should start the reconstruction")
	}
	if !strings.Contains(m.Status(), "epicycles") {
		t.Errorf("status = %q", m.Status())
	}

	m = send(t, m, TickMsg(time.Now()), TickMsg(time.Now()))
	if m.Session().Frames() != 2 {
		t.Errorf("expected 2 frames, got %d", m.Session().Frames())
	}

	// Drawing is over; pointer input is ignored.
	m = send(t, m, press(20, 5))
	if n := len(m.Session().Drawing()); n != 4 {
		t.Errorf("drawing changed after finish: %d samples", n)
	}
}

func TestPauseStopsTicks(t *testing.T) {
	m := replayModel(t)
	m = send(t, m, TickMsg(time.Now()), key("x"), TickMsg(time.Now()), TickMsg(time.Now()))
	if m.Session().Frames() != 1 {
		t.Errorf("paused model advanced to %d frames", m.Session().Frames())
	}
	m = send(t, m, key("y"), TickMsg(time.Now()))
	if m.Session().Frames() != 2 {
		t.Errorf("resumed model at %d frames, want 2", m.Session().Frames())
	}
	m = send(t, m, key("p"))
	if !m.Session().Paused() {
		t.Error("p should toggle pause")
	}
}

func TestRevealAndRestart(t *testing.T) {
	m := replayModel(t)
	m = send(t, m, key("3"))
	if m.Session().Visible() != 3 {
		t.Errorf("visible = %d, want 3", m.Session().Visible())
	}
	m = send(t, m, TickMsg(time.Now()), TickMsg(time.Now()), key("r"))
	if m.Session().Time() != 0 || len(m.Session().Trace()) != 0 {
		t.Error("restart should rewind the period")
	}
}

func TestQuit(t *testing.T) {
	m := replayModel(t)
	for _, k := range []tea.KeyMsg{key("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestThemeAndHelpToggle(t *testing.T) {
	m := replayModel(t)
	first := m.Theme().Name
	m = send(t, m, key("t"), key("?"))
	if m.Theme().Name == first {
		t.Error("t should change theme")
	}
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help overlay missing")
	}
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	pts, _ := stroke.Shape("square", 40)
	s, _ := session.NewReplay(pts, testConfig(), nil)
	m := NewModel(s, nil, WithSize(40, 12), WithOutputDir(dir))

	m = send(t, m, key("s"))
	if m.Status() != "nothing to snapshot yet" {
		t.Errorf("status = %q", m.Status())
	}

	m = send(t, m, TickMsg(time.Now()), TickMsg(time.Now()), key("s"))
	data, err := os.ReadFile(filepath.Join(dir, "epicycles-001.svg"))
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("snapshot is not SVG")
	}
}

func TestRecording(t *testing.T) {
	dir := t.TempDir()
	pts, _ := stroke.Shape("circle", 40)
	s, _ := session.NewReplay(pts, testConfig(), nil)
	m := NewModel(s, nil, WithSize(20, 6), WithOutputDir(dir))

	m = send(t, m, key("g"), TickMsg(time.Now()), TickMsg(time.Now()))
	if !m.Recording() {
		t.Fatal("g should start recording")
	}
	m = send(t, m, key("g"))
	if m.Recording() {
		t.Error("second g should stop recording")
	}
	if _, err := os.Stat(filepath.Join(dir, "epicycles.gif")); err != nil {
		t.Errorf("recording not saved: %v", err)
	}
}

func TestWindowResize(t *testing.T) {
	m := replayModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40}, TickMsg(time.Now()))
	if m.width != 120-statsWidth-2*canvasOffsetX-2 || m.height != 40-2*canvasOffsetY {
		t.Errorf("canvas %dx%d after resize", m.width, m.height)
	}
	w, h := float64(m.canvas.trace.SubWidth()), float64(m.canvas.trace.SubHeight())
	for _, p := range m.Session().Drawing() {
		if x, y := m.proj.Apply(p); x < 0 || y < 0 || x > w || y > h {
			t.Fatalf("fitted point (%.1f, %.1f) outside %vx%v", x, y, w, h)
		}
	}
	if !strings.Contains(m.View(), "RUNNING") {
		t.Error("view should report running state")
	}
}

func TestDrawingView(t *testing.T) {
	m := drawingModel(t)
	view := m.View()
	if !strings.Contains(view, "DRAWING") || !strings.Contains(view, "EPICYCLES") {
		t.Error("drawing view missing header or status")
	}
}

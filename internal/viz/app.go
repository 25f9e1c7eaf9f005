package viz

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/epicycles/internal/analysis"
	"github.com/san-kum/epicycles/internal/config"
	"github.com/san-kum/epicycles/internal/epicycle"
	"github.com/san-kum/epicycles/internal/export"
	"github.com/san-kum/epicycles/internal/logging"
	"github.com/san-kum/epicycles/internal/metrics"
	"github.com/san-kum/epicycles/internal/session"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	statsWidth    = 45

	// Terminal cell of the canvas's top-left corner; see canvasStyle.
	canvasOffsetX = 2
	canvasOffsetY = 1

	// Longest amplitude profile plotted in the stats panel.
	profileLen = 40
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(statsWidth)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

type layers struct {
	samples, circles, chain, trace *Canvas
}

func newLayers(w, h int) layers {
	return layers{
		samples: NewCanvas(w, h),
		circles: NewCanvas(w, h),
		chain:   NewCanvas(w, h),
		trace:   NewCanvas(w, h),
	}
}

// Model is the interactive drawing and replay screen.
type Model struct {
	session       *session.Session
	log           *logging.Logger
	cfg           config.Config
	width, height int
	outputDir     string

	canvas layers
	proj   export.Projection
	fitted bool

	frame      session.Frame
	amplitudes []float64
	captured   float64

	theme       Theme
	showCircles bool
	showHelp    bool
	status      string
	recorder    *Recorder
	snapshots   int
}

type Option func(*Model)

// WithOutputDir sets where snapshots and recordings are written.
func WithOutputDir(dir string) Option {
	return func(m *Model) { m.outputDir = dir }
}

// WithSize sets the canvas size in terminal cells.
func WithSize(w, h int) Option {
	return func(m *Model) { m.width, m.height = w, h }
}

// NewModel wraps s. A session that is already reconstructing (a replay) is
// fitted to the canvas; a drawing session keeps canvas coordinates.
func NewModel(s *session.Session, log *logging.Logger, opts ...Option) Model {
	if log == nil {
		log = logging.Nop()
	}
	cfg := s.Config()
	m := Model{
		session:     s,
		log:         log,
		cfg:         cfg,
		width:       defaultWidth,
		height:      defaultHeight,
		outputDir:   ".",
		proj:        export.Identity(),
		theme:       GetTheme(cfg.Display.Theme),
		showCircles: cfg.Display.ShowCircles,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.canvas = newLayers(m.width, m.height)

	if s.Phase() == session.PhaseReconstructing {
		m.fitted = true
		m.refit()
		m.onFinish()
	} else {
		m.status = "hold the left mouse button to draw"
	}
	m.draw()
	return m
}

func (m Model) Session() *session.Session { return m.session }
func (m Model) Status() string            { return m.status }
func (m Model) Theme() Theme              { return m.theme }
func (m Model) Recording() bool           { return m.recorder != nil }

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	interval := time.Duration(float64(time.Second) / m.cfg.FrameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the reconstruction.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.resize(msg.Width-statsWidth-2*canvasOffsetX-2, msg.Height-2*canvasOffsetY)
		return m, nil
	case TickMsg:
		if m.session.Phase() == session.PhaseReconstructing && !m.session.Paused() {
			f, err := m.session.Step()
			if err != nil {
				m.fail(err)
			} else {
				m.frame = f
			}
		}
		m.draw()
		if m.recorder != nil {
			m.recorder.Capture(m.composite())
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.status = "theme " + m.theme.Name
		return m, nil
	case "c":
		m.showCircles = !m.showCircles
		m.draw()
		return m, nil
	case "s":
		m.snapshot()
		return m, nil
	case "g":
		m.toggleRecording()
		return m, nil
	}

	cmd, ok := CommandForKey(key)
	if !ok {
		return m, nil
	}
	if err := m.session.Apply(cmd); err != nil {
		m.fail(err)
		return m, nil
	}
	switch cmd.Kind {
	case session.CmdFinish:
		m.onFinish()
	case session.CmdReveal:
		if cmd.N == 0 {
			m.status = "showing all epicycles"
		} else {
			m.status = fmt.Sprintf("showing %d epicycles", cmd.N)
		}
	case session.CmdRestart:
		m.frame = session.Frame{}
		m.status = "restarted"
	default:
		m.status = ""
	}
	m.draw()
	return m, nil
}

// handleMouse records pointer samples while the left button is held.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.session.Phase() != session.PhaseDrawing || msg.Button != tea.MouseButtonLeft {
		return
	}
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return
	}
	p, ok := m.pointerToCanvas(msg.X, msg.Y)
	if !ok {
		return
	}
	if err := m.session.AddSample(p); err != nil {
		m.fail(err)
		return
	}
	m.status = fmt.Sprintf("%d samples", len(m.session.Drawing()))
	m.draw()
}

// pointerToCanvas converts a terminal cell to the sub-pixel at its center.
func (m *Model) pointerToCanvas(x, y int) (epicycle.Point, bool) {
	col, row := x-canvasOffsetX, y-canvasOffsetY
	if col < 0 || row < 0 || col >= m.width || row >= m.height {
		return epicycle.Point{}, false
	}
	return m.proj.Invert(float64(col*2+1), float64(row*4+2)), true
}

func (m *Model) resize(w, h int) {
	w, h = max(w, 10), max(h, 5)
	if w == m.width && h == m.height {
		return
	}
	m.width, m.height = w, h
	m.canvas = newLayers(w, h)
	if m.fitted {
		m.refit()
	}
	m.draw()
}

func (m *Model) refit() {
	c := m.canvas.trace
	m.proj = export.Fit(m.session.Drawing(), float64(c.SubWidth()), float64(c.SubHeight()), 0.1)
}

func (m *Model) onFinish() {
	coeffs := m.session.Coefficients()
	m.amplitudes = analysis.AmplitudeProfile(coeffs)
	if len(m.amplitudes) > profileLen {
		m.amplitudes = m.amplitudes[:profileLen]
	}
	captured, err := metrics.CapturedEnergy(m.session.Drawing(), coeffs)
	if err != nil {
		m.log.Warn("captured energy unavailable", "error", err)
	}
	m.captured = captured
	m.status = fmt.Sprintf("reconstructing with %d epicycles", coeffs.Len())
}

func (m *Model) fail(err error) {
	switch {
	case errors.Is(err, epicycle.ErrInvalidInput):
		m.status = "nothing drawn yet"
	default:
		m.status = err.Error()
	}
	m.log.Warn("command rejected", "error", err)
}

func (m *Model) snapshot() {
	if m.session.Phase() != session.PhaseReconstructing || len(m.frame.Trace) == 0 {
		m.status = "nothing to snapshot yet"
		return
	}
	m.snapshots++
	ext := ".svg"
	if m.cfg.Export.Gzip {
		ext = ".svgz"
	}
	path := filepath.Join(m.outputDir, fmt.Sprintf("epicycles-%03d%s", m.snapshots, ext))
	svg := export.FrameToSVG(m.frame, export.OptionsFromConfig(&m.cfg))
	if err := export.WriteSVG(path, svg, m.cfg.Export.Gzip); err != nil {
		m.fail(err)
		return
	}
	m.log.Info("snapshot saved", "path", path)
	m.status = "saved " + path
}

func (m *Model) toggleRecording() {
	if m.recorder == nil {
		m.recorder = NewRecorder(m.cfg.FrameRate)
		m.status = "recording"
		return
	}
	path := filepath.Join(m.outputDir, "epicycles.gif")
	err := m.recorder.Save(path)
	m.recorder = nil
	if err != nil {
		m.fail(err)
		return
	}
	m.log.Info("recording saved", "path", path)
	m.status = "saved " + path
}

func (m *Model) point(p epicycle.Point) (int, int) {
	x, y := m.proj.Apply(p)
	return int(math.Round(x)), int(math.Round(y))
}

func (m *Model) polyline(c *Canvas, pts []epicycle.Point) {
	for i := range pts {
		x1, y1 := m.point(pts[i])
		if i == 0 {
			c.Set(x1, y1)
			continue
		}
		x0, y0 := m.point(pts[i-1])
		c.DrawLine(x0, y0, x1, y1)
	}
}

// draw rasterizes the current state onto the canvas layers.
func (m *Model) draw() {
	m.canvas.samples.Clear()
	m.canvas.circles.Clear()
	m.canvas.chain.Clear()
	m.canvas.trace.Clear()

	drawing := m.session.Drawing()
	if m.session.Phase() == session.PhaseDrawing || m.cfg.Display.ShowSamples {
		m.polyline(m.canvas.samples, drawing)
	}
	if m.session.Phase() == session.PhaseDrawing {
		return
	}

	f := m.frame
	if m.showCircles {
		var center epicycle.Point
		for _, end := range f.Chain {
			r := int(math.Round(m.proj.Length(center.Dist(end))))
			if r >= 1 {
				cx, cy := m.point(center)
				m.canvas.circles.DrawCircle(cx, cy, r)
			}
			center = end
		}
	}
	if len(f.Chain) > 0 {
		m.polyline(m.canvas.chain, append([]epicycle.Point{{}}, f.Chain...))
	}
	m.polyline(m.canvas.trace, f.Trace)
}

func (m Model) composite() *Canvas {
	c := NewCanvas(m.width, m.height)
	c.Or(m.canvas.samples)
	c.Or(m.canvas.circles)
	c.Or(m.canvas.chain)
	c.Or(m.canvas.trace)
	return c
}

func (m Model) renderCanvas() string {
	sampleColor := m.theme.Samples
	if m.session.Phase() == session.PhaseDrawing {
		sampleColor = m.theme.Stroke
	}
	return Compose(
		Layer{Canvas: m.canvas.samples, Style: m.theme.fg(sampleColor)},
		Layer{Canvas: m.canvas.circles, Style: m.theme.fg(m.theme.Circles)},
		Layer{Canvas: m.canvas.chain, Style: m.theme.fg(m.theme.Chain)},
		Layer{Canvas: m.canvas.trace, Style: m.theme.fg(m.theme.Trace)},
	)
}

// View renders the TUI interface.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("EPICYCLES") + "\n")
	s.WriteString(m.statusLine() + "\n\n")

	if m.session.Phase() == session.PhaseDrawing {
		s.WriteString(labelStyle.Render("Samples") + MetricValue.Render(fmt.Sprintf("%d", len(m.session.Drawing()))) + "\n")
		s.WriteString(labelStyle.Render("Epicycles") + MetricValue.Render(fmt.Sprintf("%d", m.cfg.Coefficients)) + "\n")
	} else {
		coeffs := m.session.Coefficients()
		if len(m.amplitudes) > 1 {
			chart := asciigraph.Plot(m.amplitudes, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Amplitude"))
			s.WriteString(graphStyle.Render(chart) + "\n\n")
		}
		visible := m.session.Visible()
		if visible == 0 || visible > coeffs.Len() {
			visible = coeffs.Len()
		}
		s.WriteString(labelStyle.Render("Time") + MetricValue.Render(fmt.Sprintf("%.3f", m.session.Time())) + "\n")
		s.WriteString(labelStyle.Render("Period") + ProgressBar(m.session.Time()/epicycle.Period, 20) + "\n")
		s.WriteString(labelStyle.Render("Epicycles") + MetricValue.Render(fmt.Sprintf("%d / %d", visible, coeffs.Len())) + "\n")
		s.WriteString(labelStyle.Render("Samples") + MetricValue.Render(fmt.Sprintf("%d", len(m.session.Drawing()))) + "\n")
		s.WriteString(labelStyle.Render("Energy") + MetricValue.Render(fmt.Sprintf("%.2f%%", m.captured*100)) + "\n")
		s.WriteString(labelStyle.Render("Frame") + MetricValue.Render(fmt.Sprintf("%d", m.session.Frames())) + "\n")
	}
	s.WriteString(labelStyle.Render("Theme") + MetricValue.Render(m.theme.Name) + "\n")

	if m.status != "" {
		s.WriteString("\n" + KeyHint.Render(m.status) + "\n")
	}
	s.WriteString(helpStyle.Render("\n" + Separator(24) + "\nSP:Done X/Y:Pause P:Toggle\n0-9:Reveal R:Restart Q:Quit\nT:Theme S:SVG G:GIF ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(m.renderCanvas()), statsStyle.Render(s.String()))
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

func (m Model) statusLine() string {
	var status string
	switch {
	case m.session.Phase() == session.PhaseDrawing:
		status = StatusDrawing.Render("DRAWING")
	case m.session.Paused():
		status = StatusPaused.Render("PAUSED")
	default:
		status = StatusRunning.Render("RUNNING")
	}
	if m.recorder != nil {
		status += " " + StatusRecording.Render(fmt.Sprintf("● REC %d", m.recorder.Len()))
	}
	return status
}

// Run starts a full-screen program with mouse reporting enabled.
func Run(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

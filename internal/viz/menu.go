package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/epicycles/internal/config"
	"github.com/san-kum/epicycles/internal/logging"
	"github.com/san-kum/epicycles/internal/session"
	"github.com/san-kum/epicycles/internal/stroke"
)

// Freehand is the menu entry that opens an empty canvas.
const Freehand = "freehand"

var sourceInfo = map[string]string{
	Freehand:    "draw with the mouse",
	"circle":    "a single epicycle",
	"square":    "odd harmonics",
	"star":      "sharp corners",
	"heart":     "smooth curve",
	"lissajous": "crossing path",
}

const (
	stateMenu = iota
	stateConfig
	stateRun
)

type param struct {
	name string
	step float64
	min  float64
}

var menuParams = []param{
	{"coefficients", 2, 1},
	{"seconds", 1, 0.5},
	{"fps", 5, 1},
	{"visible", 1, 0},
}

var (
	menuHeader   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	menuSub      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	menuCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	menuSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	menuDesc     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	menuItem     = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	menuItemDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	menuKey      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)

// Menu picks a drawing source and tunes the reconstruction before handing
// over to a Model.
type Menu struct {
	state, cursor int
	sources       []string
	selected      string
	params        map[string]float64
	paramCursor   int
	editing       bool
	editBuf       string
	err           string
	cfg           config.Config
	log           *logging.Logger
	opts          []Option
	app           Model
}

func NewMenu(cfg *config.Config, log *logging.Logger, opts ...Option) Menu {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = logging.Nop()
	}
	return Menu{
		state:   stateMenu,
		sources: append([]string{Freehand}, stroke.Names()...),
		params: map[string]float64{
			"coefficients": float64(cfg.Coefficients),
			"seconds":      cfg.SecondsPerCycle,
			"fps":          cfg.FrameRate,
			"visible":      float64(cfg.Visible),
		},
		cfg:  *cfg,
		log:  log,
		opts: opts,
	}
}

// App returns the running model once the menu has started one.
func (m Menu) App() (Model, bool) { return m.app, m.state == stateRun }

func (m Menu) Init() tea.Cmd { return nil }

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateRun {
		next, cmd := m.app.Update(msg)
		m.app = next.(Model)
		return m, cmd
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case stateMenu:
			return m.menuKey(msg)
		case stateConfig:
			return m.configKey(msg)
		}
	}
	return m, nil
}

func (m Menu) menuKey(msg tea.KeyMsg) (Menu, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sources)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.sources[m.cursor]
		m.state, m.paramCursor, m.err = stateConfig, 0, ""
	}
	return m, nil
}

func (m Menu) configKey(msg tea.KeyMsg) (Menu, tea.Cmd) {
	name := menuParams[m.paramCursor].name
	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
				m.params[name] = max(v, menuParams[m.paramCursor].min)
			}
			m.editing, m.editBuf = false, ""
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(menuParams)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing, m.editBuf = true, strconv.FormatFloat(m.params[name], 'f', -1, 64)
	case "left", "h":
		p := menuParams[m.paramCursor]
		m.params[name] = max(m.params[name]-p.step, p.min)
	case "right", "l":
		m.params[name] += menuParams[m.paramCursor].step
	case "s":
		return m.start()
	}
	return m, nil
}

// config applies the tuned parameters to the base configuration.
func (m Menu) config() config.Config {
	cfg := m.cfg
	cfg.Coefficients = int(m.params["coefficients"])
	cfg.SecondsPerCycle = m.params["seconds"]
	cfg.FrameRate = m.params["fps"]
	cfg.Visible = int(m.params["visible"])
	return cfg
}

func (m Menu) start() (Menu, tea.Cmd) {
	cfg := m.config()

	var (
		s   *session.Session
		err error
	)
	if m.selected == Freehand {
		s, err = session.New(&cfg, m.log)
	} else {
		pts, serr := stroke.Shape(m.selected, stroke.DefaultSamples)
		if serr != nil {
			err = serr
		} else {
			s, err = session.NewReplay(pts, &cfg, m.log)
		}
	}
	if err != nil {
		m.err = err.Error()
		m.log.Warn("cannot start", "source", m.selected, "error", err)
		return m, nil
	}

	m.log.Info("session started", "source", m.selected, "coefficients", cfg.Coefficients)
	m.app = NewModel(s, m.log, m.opts...)
	m.state = stateRun
	return m, m.app.Init()
}

func (m Menu) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateRun:
		return m.app.View()
	}
	return ""
}

func (m Menu) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + GradientText("EPICYCLES", "#00ffff", "#ff00ff") + "\n    " + menuSub.Render("fourier drawing machine") + "\n    " + menuSub.Render("─────────────────────────") + "\n\n")
	for i, name := range m.sources {
		desc := sourceInfo[name]
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", menuCursor.Render("▸"), menuSelected.Render(fmt.Sprintf("%-12s", name)), menuDesc.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", menuItem.Render(fmt.Sprintf("  %-12s", name)), menuItemDesc.Render(desc)))
		}
	}
	b.WriteString("\n    " + menuKey.Render("j/k") + menuItem.Render(" navigate  ") + menuKey.Render("enter") + menuItem.Render(" select  ") + menuKey.Render("q") + menuItem.Render(" quit") + "\n")
	return b.String()
}

func (m Menu) viewConfig() string {
	var b strings.Builder
	b.WriteString("\n\n    " + menuHeader.Render(strings.ToUpper(m.selected)) + "\n    " + menuSub.Render(sourceInfo[m.selected]) + "\n    " + menuSub.Render("─────────────────────────") + "\n\n")
	for i, p := range menuParams {
		valStr := fmt.Sprintf("%8.2f", m.params[p.name])
		if m.editing && i == m.paramCursor {
			valStr = fmt.Sprintf("%8s", m.editBuf+"_")
		}
		if i == m.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", menuCursor.Render("▸"), menuSelected.Render(fmt.Sprintf("%-12s", p.name)), menuDesc.Bold(true).Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("    %s %s\n", menuItem.Render(fmt.Sprintf("  %-12s", p.name)), menuItemDesc.Render(valStr)))
		}
	}
	if m.err != "" {
		b.WriteString("\n    " + StatusDrawing.Render(m.err) + "\n")
	}
	b.WriteString("\n    " + menuKey.Render("j/k") + menuItem.Render(" select  ") + menuKey.Render("h/l") + menuItem.Render(" adjust  ") + menuKey.Render("s") + menuItem.Render(" start  ") + menuKey.Render("esc") + menuItem.Render(" back") + "\n")
	return b.String()
}

package viz

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/epicycles/internal/config"
)

// Theme colors each canvas layer.
type Theme struct {
	Name string

	Trace   lipgloss.Color // path drawn by the chain's tip
	Chain   lipgloss.Color // arms from the origin to the tip
	Circles lipgloss.Color // epicycle orbits
	Stroke  lipgloss.Color // drawing in progress
	Samples lipgloss.Color // finished drawing under the replay
}

// palettes is keyed by the names in config.Themes.
var palettes = map[string]Theme{
	"neon": {
		Trace:   "#ff2bd6",
		Chain:   "#2be8ff",
		Circles: "#3a3a66",
		Stroke:  "#fff15c",
		Samples: "#4d4d73",
	},
	"phosphor": {
		Trace:   "#7dff7a",
		Chain:   "#2fbf45",
		Circles: "#0f4418",
		Stroke:  "#c8ffb0",
		Samples: "#1f6b2a",
	},
	"chalk": {
		Trace:   "#f2f2f2",
		Chain:   "#9fb4c7",
		Circles: "#4a4f55",
		Stroke:  "#5aa9ff",
		Samples: "#6b6f75",
	},
	"tide": {
		Trace:   "#ffcf5a",
		Chain:   "#3fb6d9",
		Circles: "#1d4f6e",
		Stroke:  "#d8f3ff",
		Samples: "#2f6a88",
	},
	"ember": {
		Trace:   "#ff7043",
		Chain:   "#ffd166",
		Circles: "#5c2e2a",
		Stroke:  "#ffa8d9",
		Samples: "#8a5a4f",
	},
}

// GetTheme returns the named palette, or the default one for an unknown name.
func GetTheme(name string) Theme {
	t, ok := palettes[name]
	if !ok {
		name = config.DefaultTheme
		t = palettes[name]
	}
	t.Name = name
	return t
}

// NextTheme returns the theme after name in config.Themes, wrapping around.
func NextTheme(name string) Theme {
	i := slices.Index(config.Themes, name)
	return GetTheme(config.Themes[(i+1)%len(config.Themes)])
}

func ThemeNames() []string {
	return slices.Clone(config.Themes)
}

func (t Theme) fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

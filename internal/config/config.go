package config

import (
	"fmt"
	"math"
	"os"
	"slices"

	"github.com/san-kum/epicycles/internal/epicycle"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCoefficients    = epicycle.DefaultCoefficients
	DefaultSecondsPerCycle = epicycle.DefaultSecondsPerCycle
	DefaultFrameRate       = epicycle.DefaultFrameRate
	DefaultLogLevel        = "info"
	DefaultTheme           = "neon"
)

// Themes names the palettes the terminal UI can draw with.
var Themes = []string{"neon", "phosphor", "chalk", "tide", "ember"}

type Config struct {
	Coefficients    int           `yaml:"coefficients"`
	SecondsPerCycle float64       `yaml:"seconds_per_cycle"`
	FrameRate       float64       `yaml:"frame_rate"`
	Visible         int           `yaml:"visible"`
	LogLevel        string        `yaml:"log_level"`
	Export          ExportConfig  `yaml:"export"`
	Display         DisplayConfig `yaml:"display"`
}

type ExportConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	StrokeWidth float64 `yaml:"stroke_width"`
	Gzip        bool    `yaml:"gzip"`
}

type DisplayConfig struct {
	ShowSamples bool   `yaml:"show_samples"`
	ShowCircles bool   `yaml:"show_circles"`
	Theme       string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Coefficients:    DefaultCoefficients,
		SecondsPerCycle: DefaultSecondsPerCycle,
		FrameRate:       DefaultFrameRate,
		LogLevel:        DefaultLogLevel,
		Export: ExportConfig{
			Width:       800,
			Height:      600,
			StrokeWidth: 2,
		},
		Display: DisplayConfig{
			ShowSamples: true,
			ShowCircles: true,
			Theme:       DefaultTheme,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadWith(path, DefaultConfig())
}

// LoadWith reads path on top of a copy of base; keys missing from the file
// keep base's values.
func LoadWith(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the parameters the reconstruction depends on. Even
// coefficient counts are accepted; they give a band one step wider on the
// negative side.
func (c *Config) Validate() error {
	if c.Coefficients <= 0 {
		return fmt.Errorf("%w: coefficients must be positive, got %d", epicycle.ErrInvalidConfiguration, c.Coefficients)
	}
	if !positiveFinite(c.SecondsPerCycle) {
		return fmt.Errorf("%w: seconds_per_cycle must be positive and finite, got %v", epicycle.ErrInvalidConfiguration, c.SecondsPerCycle)
	}
	if !positiveFinite(c.FrameRate) {
		return fmt.Errorf("%w: frame_rate must be positive and finite, got %v", epicycle.ErrInvalidConfiguration, c.FrameRate)
	}
	if _, err := c.Increment(); err != nil {
		return err
	}
	if c.Visible < 0 {
		return fmt.Errorf("%w: visible must not be negative, got %d", epicycle.ErrInvalidConfiguration, c.Visible)
	}
	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		return fmt.Errorf("%w: export size %dx%d", epicycle.ErrInvalidConfiguration, c.Export.Width, c.Export.Height)
	}
	if !positiveFinite(c.Export.StrokeWidth) {
		return fmt.Errorf("%w: stroke_width must be positive and finite, got %v", epicycle.ErrInvalidConfiguration, c.Export.StrokeWidth)
	}
	if !slices.Contains(Themes, c.Display.Theme) {
		return fmt.Errorf("%w: unknown theme %q", epicycle.ErrInvalidConfiguration, c.Display.Theme)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", epicycle.ErrInvalidConfiguration, c.LogLevel)
	}
	return nil
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// Increment returns the per-frame clock step for this configuration.
func (c *Config) Increment() (float64, error) {
	return epicycle.Increment(c.FrameRate, c.SecondsPerCycle)
}

// Symmetric reports whether the frequency band is centered on zero.
func (c *Config) Symmetric() bool {
	return c.Coefficients%2 == 1
}

package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"coarse":  withParams(11, 10, 60),
	"smooth":  withParams(301, 15, 60),
	"fast":    withParams(101, 4, 60),
	"slow":    withParams(101, 30, 30),
	"sketch":  withParams(5, 8, 30),
}

func withParams(k int, seconds, fps float64) *Config {
	cfg := DefaultConfig()
	cfg.Coefficients = k
	cfg.SecondsPerCycle = seconds
	cfg.FrameRate = fps
	return cfg
}

// GetPreset returns a copy of the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

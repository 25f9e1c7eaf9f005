package main

import (
	"fmt"
	"io"
	"os"

	"github.com/san-kum/epicycles/internal/config"
	"github.com/san-kum/epicycles/internal/epicycle"
	"github.com/san-kum/epicycles/internal/logging"
	"github.com/san-kum/epicycles/internal/stroke"
	"github.com/spf13/cobra"
)

// options holds every flag value. Commands resolve the effective
// configuration from it at run time.
type options struct {
	configFile   string
	preset       string
	coefficients int
	seconds      float64
	fps          float64
	visible      int
	logLevel     string
	logFile      string
	theme        string

	shape           string
	resample        int
	top             int
	jsonOut         bool
	out             string
	gzip            bool
	coefficientsOut string
	configOut       string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log := logging.NewLogger(logging.WithOutput(os.Stderr), logging.WithConsole())
		log.Error("command failed", "error", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}

	rootCmd := &cobra.Command{
		Use:           "epicycles",
		Short:         "draw a shape and watch it redrawn by rotating circles",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE:          o.runMenu,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&o.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&o.preset, "preset", "", "use preset configuration")
	pf.IntVarP(&o.coefficients, "coefficients", "k", config.DefaultCoefficients, "number of epicycles")
	pf.Float64Var(&o.seconds, "seconds", config.DefaultSecondsPerCycle, "seconds per full period")
	pf.Float64Var(&o.fps, "fps", config.DefaultFrameRate, "frame rate")
	pf.IntVar(&o.visible, "visible", 0, "epicycles drawn (0 = all)")
	pf.StringVar(&o.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&o.logFile, "log-file", "", "write logs to this file while the TUI runs")
	pf.StringVar(&o.theme, "theme", config.DefaultTheme, "color theme")

	drawCmd := &cobra.Command{
		Use:   "draw",
		Short: "draw with the mouse, then watch the reconstruction",
		Args:  cobra.NoArgs,
		RunE:  o.runDraw,
	}

	replayCmd := &cobra.Command{
		Use:   "replay [file]",
		Short: "reconstruct a stroke file or built-in shape in the TUI",
		Args:  cobra.MaximumNArgs(1),
		RunE:  o.runReplay,
	}
	o.strokeFlags(replayCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "print the epicycle coefficients of a drawing",
		Args:  cobra.MaximumNArgs(1),
		RunE:  o.runAnalyze,
	}
	o.strokeFlags(analyzeCmd)
	analyzeCmd.Flags().IntVar(&o.top, "top", 20, "coefficients listed (0 = all)")
	analyzeCmd.Flags().BoolVar(&o.jsonOut, "json", false, "print a JSON report")

	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "render one full period to SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  o.runExport,
	}
	o.strokeFlags(exportCmd)
	exportCmd.Flags().StringVarP(&o.out, "out", "o", "epicycles.svg", "output path")
	exportCmd.Flags().BoolVar(&o.gzip, "gzip", false, "gzip the SVG")
	exportCmd.Flags().StringVar(&o.coefficientsOut, "coefficients", "", "also write coefficients and metrics (.json or .yaml)")

	shapesCmd := &cobra.Command{
		Use:   "shapes",
		Short: "list built-in shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range stroke.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  o.runPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration, or save it with --out",
		Args:  cobra.NoArgs,
		RunE:  o.runConfig,
	}
	configCmd.Flags().StringVarP(&o.configOut, "out", "o", "", "write the configuration to this file")

	rootCmd.AddCommand(drawCmd, replayCmd, analyzeCmd, exportCmd, shapesCmd, presetsCmd, configCmd)
	return rootCmd
}

func (o *options) strokeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.shape, "shape", "", "built-in shape instead of a file")
	cmd.Flags().IntVar(&o.resample, "resample", 0, "respace the stroke into N evenly spaced points")
}

// resolve builds the effective configuration: defaults, then the preset,
// then the config file, then flags set on the command line.
func (o *options) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if o.preset != "" {
		cfg = config.GetPreset(o.preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", o.preset, config.ListPresets())
		}
	}

	if o.configFile != "" {
		loaded, err := config.LoadWith(o.configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("coefficients") {
		cfg.Coefficients = o.coefficients
	}
	if flags.Changed("seconds") {
		cfg.SecondsPerCycle = o.seconds
	}
	if flags.Changed("fps") {
		cfg.FrameRate = o.fps
	}
	if flags.Changed("visible") {
		cfg.Visible = o.visible
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("theme") {
		cfg.Display.Theme = o.theme
	}
	if flags.Changed("gzip") {
		cfg.Export.Gzip = o.gzip
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// headlessLogger logs to stderr for commands that print results.
func headlessLogger(cfg *config.Config) *logging.Logger {
	return logging.NewLogger(logging.WithLevel(cfg.LogLevel), logging.WithOutput(os.Stderr), logging.WithConsole())
}

// tuiLogger keeps logs off the terminal the TUI draws on. The returned
// closer releases the log file, if any.
func (o *options) tuiLogger(cfg *config.Config) (*logging.Logger, io.Closer, error) {
	if o.logFile == "" {
		return logging.NewLogger(logging.WithLevel(cfg.LogLevel), logging.WithOutput(io.Discard)), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.NewLogger(logging.WithLevel(cfg.LogLevel), logging.WithOutput(f)), f, nil
}

// loadStroke reads the drawing named by the file argument or --shape.
func (o *options) loadStroke(args []string) ([]epicycle.Point, error) {
	var (
		pts []epicycle.Point
		err error
	)
	switch {
	case o.shape != "" && len(args) > 0:
		return nil, fmt.Errorf("give a stroke file or --shape, not both")
	case o.shape != "":
		pts, err = stroke.Shape(o.shape, stroke.DefaultSamples)
	case len(args) > 0:
		pts, err = stroke.Load(args[0])
	default:
		return nil, fmt.Errorf("need a stroke file or --shape (one of %v)", stroke.Names())
	}
	if err != nil {
		return nil, err
	}
	if o.resample > 0 {
		pts = stroke.Resample(pts, o.resample)
	}
	return pts, nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/epicycles/internal/analysis"
	"github.com/san-kum/epicycles/internal/config"
	"github.com/san-kum/epicycles/internal/epicycle"
	"github.com/san-kum/epicycles/internal/export"
	"github.com/san-kum/epicycles/internal/metrics"
	"github.com/san-kum/epicycles/internal/session"
	"github.com/san-kum/epicycles/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func (o *options) runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	log, closer, err := o.tuiLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	defer log.Sync()

	return viz.Run(viz.NewMenu(cfg, log))
}

func (o *options) runDraw(cmd *cobra.Command, args []string) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	log, closer, err := o.tuiLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	defer log.Sync()

	s, err := session.New(cfg, log)
	if err != nil {
		return err
	}
	return viz.Run(viz.NewModel(s, log))
}

func (o *options) runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	pts, err := o.loadStroke(args)
	if err != nil {
		return err
	}
	log, closer, err := o.tuiLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	defer log.Sync()

	s, err := session.NewReplay(pts, cfg, log)
	if err != nil {
		return err
	}
	return viz.Run(viz.NewModel(s, log))
}

func (o *options) runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	log := headlessLogger(cfg)
	defer log.Sync()

	pts, err := o.loadStroke(args)
	if err != nil {
		return err
	}
	set, err := epicycle.Analyze(epicycle.ToComplexSequence(pts), cfg.Coefficients)
	if err != nil {
		return err
	}
	data, err := export.NewCoefficientData(pts, set, o.top)
	if err != nil {
		return err
	}
	log.Debug("analysis complete", "points", len(pts), "coefficients", set.Len())

	out := cmd.OutOrStdout()
	if o.jsonOut {
		return export.EncodeCoefficients(out, data)
	}

	fmt.Fprintf(out, "points: %d  epicycles: %d\n\n", len(pts), set.Len())

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tFREQ\tAMPLITUDE\tPHASE\tRE\tIM")
	for i, c := range data.Terms {
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%.4f\t%.4f\t%.4f\n", i+1, c.Frequency, c.Amplitude, c.Phase, c.Re, c.Im)
	}
	w.Flush()

	if profile := analysis.AmplitudeProfile(set); len(profile) > 1 {
		graph := asciigraph.Plot(profile,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("amplitude by rank"),
		)
		fmt.Fprintf(out, "\n%s\n", graph)
	}

	fmt.Fprintf(out, "\n%s", analysis.PathToASCII(epicycle.Sample(set, 400), 60, 20))

	fmt.Fprintln(out, "\nmetrics:")
	fmt.Fprintf(out, "  rms error:       %.6f\n", data.Error.RMS)
	fmt.Fprintf(out, "  mean error:      %.6f\n", data.Error.Mean)
	fmt.Fprintf(out, "  max error:       %.6f\n", data.Error.Max)
	fmt.Fprintf(out, "  captured energy: %.2f%%\n", data.CapturedEnergy*100)
	return nil
}

func (o *options) runExport(cmd *cobra.Command, args []string) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	log := headlessLogger(cfg)
	defer log.Sync()

	pts, err := o.loadStroke(args)
	if err != nil {
		return err
	}
	s, err := session.NewReplay(pts, cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	driver := session.NewDriver(s, nil)
	tracking := metrics.NewTrackingError()
	travel := metrics.NewTipTravel()
	metrics.Attach(driver, tracking, travel)

	frame, err := driver.RunPeriod(ctx)
	if err != nil {
		return err
	}

	svg := export.FrameToSVG(frame, export.OptionsFromConfig(cfg))
	if err := export.WriteSVG(o.out, svg, cfg.Export.Gzip); err != nil {
		return err
	}

	if o.coefficientsOut != "" {
		data, err := export.NewCoefficientData(pts, s.Coefficients(), 0)
		if err != nil {
			return err
		}
		data.Metrics = metrics.Report(tracking, travel)
		if err := export.WriteCoefficients(o.coefficientsOut, data); err != nil {
			return err
		}
		log.Info("coefficients written", "path", o.coefficientsOut)
	}

	log.Info("exported",
		"path", o.out,
		"frames", s.Frames(),
		"tracking_error", tracking.Value(),
		"max_tracking_error", tracking.Max(),
		"tip_travel", travel.Value(),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d frames)\n", o.out, s.Frames())
	return nil
}

func (o *options) runPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEPICYCLES\tSECONDS\tFPS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%g\t%g\n", name, p.Coefficients, p.SecondsPerCycle, p.FrameRate)
	}
	return w.Flush()
}

func (o *options) runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	if o.configOut != "" {
		if err := config.Save(o.configOut, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", o.configOut)
		return nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

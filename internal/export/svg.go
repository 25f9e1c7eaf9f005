package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/epicycles/internal/config"
	"github.com/san-kum/epicycles/internal/epicycle"
	"github.com/san-kum/epicycles/internal/session"
)

// minCircleRadius hides epicycles too small to see.
const minCircleRadius = 0.5

type Options struct {
	Width, Height int
	StrokeWidth   float64
	ShowSamples   bool
	ShowCircles   bool

	Background  string
	TraceColor  string
	ChainColor  string
	CircleColor string
	SampleColor string
}

func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultConfig())
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Width:       cfg.Export.Width,
		Height:      cfg.Export.Height,
		StrokeWidth: cfg.Export.StrokeWidth,
		ShowSamples: cfg.Display.ShowSamples,
		ShowCircles: cfg.Display.ShowCircles,
		Background:  "#0a0a0a",
		TraceColor:  "#ff00ff",
		ChainColor:  "#00ffff",
		CircleColor: "#444466",
		SampleColor: "#666688",
	}
}

// FrameProjection fits everything a frame draws, including the chain's
// anchor at the origin, into the output area.
func FrameProjection(f session.Frame, width, height int) Projection {
	pts := make([]epicycle.Point, 0, len(f.Samples)+len(f.Trace)+len(f.Chain)+1)
	pts = append(pts, epicycle.Point{})
	pts = append(pts, f.Samples...)
	pts = append(pts, f.Trace...)
	pts = append(pts, f.Chain...)
	return Fit(pts, float64(width), float64(height), 0.05)
}

// FrameToSVG renders one reconstruction frame: the drawing, the epicycle
// circles, the chain and the trace.
func FrameToSVG(f session.Frame, opts Options) string {
	proj := FrameProjection(f, opts.Width, opts.Height)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, opts.Width, opts.Height, opts.Width, opts.Height, opts.Background))

	if opts.ShowSamples && len(f.Samples) > 1 {
		writePath(&sb, proj, f.Samples, true, opts.SampleColor, 1, ` stroke-dasharray="4 3"`)
	}

	if opts.ShowCircles && len(f.Chain) > 0 {
		sb.WriteString(fmt.Sprintf(`<g fill="none" stroke="%s" stroke-width="1">
`, opts.CircleColor))
		var center epicycle.Point
		for _, end := range f.Chain {
			r := proj.Length(center.Dist(end))
			if r >= minCircleRadius {
				cx, cy := proj.Apply(center)
				sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, r))
			}
			center = end
		}
		sb.WriteString("</g>\n")
	}

	if len(f.Chain) > 0 {
		chain := append([]epicycle.Point{{}}, f.Chain...)
		writePath(&sb, proj, chain, false, opts.ChainColor, 1, "")
	}

	if len(f.Trace) > 1 {
		writePath(&sb, proj, f.Trace, false, opts.TraceColor, opts.StrokeWidth, ` stroke-linejoin="round"`)
	}

	tx, ty := proj.Apply(f.Tip)
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, tx, ty, opts.StrokeWidth*1.5, opts.TraceColor))

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writePath(sb *strings.Builder, proj Projection, pts []epicycle.Point, closed bool, color string, width float64, extra string) {
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%.1f"%s d="M`, color, width, extra))
	for i, p := range pts {
		x, y := proj.Apply(p)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	if closed {
		sb.WriteString(" Z")
	}
	sb.WriteString(`"/>
`)
}

package export

import (
	"bytes"
	"context"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/san-kum/epicycles/internal/config"
	"github.com/san-kum/epicycles/internal/epicycle"
	"github.com/san-kum/epicycles/internal/session"
	"github.com/san-kum/epicycles/internal/stroke"
)

func periodFrame(t *testing.T, k int) session.Frame {
	t.Helper()
	pts, err := stroke.Shape("star", 40)
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.Coefficients = k
	cfg.FrameRate = 20
	cfg.SecondsPerCycle = 2
	s, err := session.NewReplay(pts, cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	f, err := session.NewDriver(s, nil).RunPeriod(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestFit(t *testing.T) {
	pts := []epicycle.Point{{X: -10, Y: -5}, {X: 10, Y: 5}}
	p := Fit(pts, 100, 100, 0)

	if p.Scale != 5 {
		t.Errorf("scale = %v, want 5", p.Scale)
	}
	x, y := p.Apply(epicycle.Point{})
	if x != 50 || y != 50 {
		t.Errorf("center projected to (%v, %v), want (50, 50)", x, y)
	}
	x, y = p.Apply(pts[1])
	if x != 100 || y != 75 {
		t.Errorf("corner projected to (%v, %v), want (100, 75)", x, y)
	}
	back := p.Invert(x, y)
	if back.Dist(pts[1]) > 1e-12 {
		t.Errorf("Invert = %+v, want %+v", back, pts[1])
	}
}

func TestFitDegenerate(t *testing.T) {
	p := Fit([]epicycle.Point{{X: 3, Y: 3}}, 40, 20, 0.1)
	x, y := p.Apply(epicycle.Point{X: 3, Y: 3})
	if math.Abs(x-20) > 1e-9 || math.Abs(y-10) > 1e-9 {
		t.Errorf("single point projected to (%v, %v), want center", x, y)
	}

	empty := Fit(nil, 40, 20, 0)
	if empty.Scale != 1 {
		t.Errorf("empty fit scale = %v", empty.Scale)
	}
}

func TestIdentity(t *testing.T) {
	p := Identity()
	x, y := p.Apply(epicycle.Point{X: 7, Y: -2})
	if x != 7 || y != -2 {
		t.Errorf("identity moved point to (%v, %v)", x, y)
	}
}

func TestFrameToSVG(t *testing.T) {
	f := periodFrame(t, 21)
	svg := FrameToSVG(f, DefaultOptions())

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatal("not a complete SVG document")
	}
	if !strings.Contains(svg, `width="800" height="600"`) {
		t.Error("missing configured size")
	}
	if n := strings.Count(svg, "<path"); n != 3 {
		t.Errorf("expected samples, chain and trace paths, got %d", n)
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("missing epicycle circles")
	}
}

func TestFrameToSVGOptions(t *testing.T) {
	f := periodFrame(t, 21)
	opts := DefaultOptions()
	opts.ShowSamples = false
	opts.ShowCircles = false
	svg := FrameToSVG(f, opts)

	if strings.Contains(svg, "stroke-dasharray") {
		t.Error("samples drawn although hidden")
	}
	// Only the tip marker remains.
	if n := strings.Count(svg, "<circle"); n != 1 {
		t.Errorf("expected only the tip marker, got %d circles", n)
	}
}

func TestWriteSVG(t *testing.T) {
	dir := t.TempDir()
	svg := FrameToSVG(periodFrame(t, 9), DefaultOptions())

	plain := filepath.Join(dir, "out.svg")
	if err := WriteSVG(plain, svg, false); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	data, err := os.ReadFile(plain)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != svg {
		t.Error("plain output differs from input")
	}

	for _, tc := range []struct {
		name     string
		compress bool
	}{
		{"out.svg", true},
		{"out.svgz", false},
		{"out.svg.gz", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "z-"+tc.name)
			if err := WriteSVG(path, svg, tc.compress); err != nil {
				t.Fatalf("WriteSVG: %v", err)
			}
			raw, _ := os.ReadFile(path)
			zr, err := gzip.NewReader(bytes.NewReader(raw))
			if err != nil {
				t.Fatalf("not gzip: %v", err)
			}
			got, err := io.ReadAll(zr)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != svg {
				t.Error("decompressed output differs from input")
			}
		})
	}
}

func TestWriteSVGBadPath(t *testing.T) {
	if err := WriteSVG(filepath.Join(t.TempDir(), "missing", "out.svg"), "<svg/>", false); err == nil {
		t.Error("expected error for missing directory")
	}
}

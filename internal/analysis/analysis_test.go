package analysis

import (
	"cmp"
	"errors"
	"math"
	"math/cmplx"
	"slices"
	"strings"
	"testing"

	"github.com/san-kum/epicycles/internal/epicycle"
)

func polygon(n int) []epicycle.Point {
	pts := make([]epicycle.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = epicycle.Point{X: 3 + 10*math.Cos(a) + 2*math.Cos(3*a), Y: -1 + 10*math.Sin(a)}
	}
	return pts
}

func TestSpectrumMatchesAnalyzer(t *testing.T) {
	// 13 samples: not a power of two
	pts := polygon(13)
	spec, err := Spectrum(pts)
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}
	if len(spec) != 13 {
		t.Fatalf("len = %d, want 13", len(spec))
	}

	set, err := epicycle.Analyze(epicycle.ToComplexSequence(pts), 9)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	for _, c := range set.All() {
		got := SpectrumAt(spec, c.Frequency)
		want := complex(c.Re, c.Im)
		if cmplx.Abs(got-want) > 1e-9 {
			t.Errorf("frequency %d: spectrum %v, analyzer %v", c.Frequency, got, want)
		}
	}
}

func TestSpectrumEmpty(t *testing.T) {
	_, err := Spectrum(nil)
	if !errors.Is(err, epicycle.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSpectrumAt(t *testing.T) {
	spec := []complex128{0, 1, 2, 3, 4}
	tests := []struct {
		k    int
		want complex128
	}{
		{0, 0}, {1, 1}, {4, 4}, {5, 0}, {-1, 4}, {-5, 0}, {-7, 3},
	}
	for _, tt := range tests {
		if got := SpectrumAt(spec, tt.k); got != tt.want {
			t.Errorf("SpectrumAt(%d) = %v, want %v", tt.k, got, tt.want)
		}
	}
	if got := SpectrumAt(nil, 3); got != 0 {
		t.Errorf("empty spectrum returned %v", got)
	}
}

func TestPowerSpectrumParseval(t *testing.T) {
	pts := polygon(16)
	spec, _ := Spectrum(pts)

	var signal float64
	for _, p := range pts {
		signal += p.X*p.X + p.Y*p.Y
	}
	signal /= float64(len(pts))

	var power float64
	for _, v := range PowerSpectrum(spec) {
		power += v
	}
	if math.Abs(signal-power) > 1e-9 {
		t.Errorf("mean signal power %v != spectrum power %v", signal, power)
	}
}

func TestAmplitudeProfile(t *testing.T) {
	set, _ := epicycle.Analyze(epicycle.ToComplexSequence(polygon(32)), 11)
	prof := AmplitudeProfile(set)
	if len(prof) != 11 {
		t.Fatalf("len = %d, want 11", len(prof))
	}
	if !slices.IsSortedFunc(prof, func(a, b float64) int { return cmp.Compare(b, a) }) {
		t.Errorf("profile not descending: %v", prof)
	}
}

func TestDominant(t *testing.T) {
	set, _ := epicycle.Analyze(epicycle.ToComplexSequence(polygon(32)), 11)
	tests := []struct {
		n, want int
	}{
		{3, 3}, {0, 11}, {-1, 11}, {50, 11},
	}
	for _, tt := range tests {
		if got := len(Dominant(set, tt.n)); got != tt.want {
			t.Errorf("Dominant(%d) returned %d, want %d", tt.n, got, tt.want)
		}
	}
	top := Dominant(set, 1)[0]
	if top.Frequency != 1 {
		t.Errorf("dominant frequency = %d, want 1", top.Frequency)
	}
}

func TestPathToASCII(t *testing.T) {
	out := PathToASCII(polygon(64), 20, 10)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10", len(lines))
	}
	for i, l := range lines {
		if n := len([]rune(l)); n != 20 {
			t.Errorf("line %d has %d runes, want 20", i, n)
		}
	}
	if !strings.Contains(out, "•") {
		t.Error("no points plotted")
	}
	if PathToASCII(nil, 20, 10) != "" {
		t.Error("empty path should render nothing")
	}
}

package metrics

import (
	"math"

	"github.com/san-kum/epicycles/internal/analysis"
	"github.com/san-kum/epicycles/internal/epicycle"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrorStats summarises pointwise reconstruction error.
type ErrorStats struct {
	RMS  float64 `json:"rms" yaml:"rms"`
	Mean float64 `json:"mean" yaml:"mean"`
	Max  float64 `json:"max" yaml:"max"`
}

// ReconstructionError compares each drawn sample with the epicycle sum at the
// matching sample instant t = 2πn/N.
func ReconstructionError(samples []epicycle.Point, set epicycle.CoefficientSet) (ErrorStats, error) {
	n := len(samples)
	if n == 0 {
		return ErrorStats{}, epicycle.ErrInvalidInput
	}

	recon := epicycle.Sample(set, n)
	dist := make([]float64, n)
	for i := range samples {
		dist[i] = samples[i].Dist(recon[i])
	}

	return ErrorStats{
		RMS:  math.Sqrt(floats.Dot(dist, dist) / float64(n)),
		Mean: stat.Mean(dist, nil),
		Max:  floats.Max(dist),
	}, nil
}

// CapturedEnergy returns the fraction of the drawing's spectral energy held
// by the frequencies in set. Frequencies that alias to the same bin count
// once, so the result is 1 whenever set covers every bin.
func CapturedEnergy(samples []epicycle.Point, set epicycle.CoefficientSet) (float64, error) {
	spec, err := analysis.Spectrum(samples)
	if err != nil {
		return 0, err
	}
	power := analysis.PowerSpectrum(spec)
	total := floats.Sum(power)
	if total == 0 {
		return 1, nil
	}

	n := len(spec)
	seen := make(map[int]bool, set.Len())
	captured := 0.0
	for _, c := range set.All() {
		bin := ((c.Frequency % n) + n) % n
		if seen[bin] {
			continue
		}
		seen[bin] = true
		captured += power[bin]
	}
	return captured / total, nil
}

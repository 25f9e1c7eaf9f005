package analysis

import "github.com/san-kum/epicycles/internal/epicycle"

// AmplitudeProfile returns the amplitudes of set in rank order, largest first.
func AmplitudeProfile(set epicycle.CoefficientSet) []float64 {
	out := make([]float64, set.Len())
	for i := range out {
		out[i] = set.At(i).Amplitude
	}
	return out
}

// Dominant returns the first n coefficients of set (all of them when n <= 0
// or n exceeds the set size).
func Dominant(set epicycle.CoefficientSet, n int) []epicycle.Coefficient {
	all := set.All()
	if n <= 0 || n >= len(all) {
		return all
	}
	return all[:n]
}

package epicycle

import (
	"math"
	"sort"
)

// FrequencyRange returns the first and last integer frequency analyzed for k
// coefficients. The range always holds exactly k integers; for even k it
// leans one step toward the negative side (k=4 gives [-2, 1]).
func FrequencyRange(k int) (start, end int) {
	start = int(math.Floor(-float64(k-1) / 2))
	end = start + k - 1
	return start, end
}

// Analyze computes k Fourier coefficients of points by direct summation and
// returns them ranked by descending amplitude. Coefficients with equal
// amplitude keep ascending-frequency order.
//
// Analyze fails with ErrInvalidConfiguration when k <= 0 and with
// ErrInvalidInput when points is empty.
func Analyze(points []ComplexPoint, k int) (CoefficientSet, error) {
	n := len(points)
	if k <= 0 {
		return CoefficientSet{}, &AnalysisError{K: k, N: n, Wrapped: ErrInvalidConfiguration}
	}
	if n == 0 {
		return CoefficientSet{}, &AnalysisError{K: k, N: n, Wrapped: ErrInvalidInput}
	}

	start, _ := FrequencyRange(k)
	coeffs := make([]Coefficient, k)

	// Each frequency is an independent sum, so slots fill in any order.
	chunk := max(1, parallelWork/n)
	parallelFor(k, chunk, func(lo, hi int) {
		for j := lo; j < hi; j++ {
			coeffs[j] = coefficientAt(points, start+j)
		}
	})

	sort.SliceStable(coeffs, func(i, j int) bool {
		return coeffs[i].Amplitude > coeffs[j].Amplitude
	})

	return CoefficientSet{coeffs: coeffs}, nil
}

// parallelWork is roughly how many point terms one worker should sum before
// splitting the frequencies across goroutines pays off.
const parallelWork = 1 << 16

func coefficientAt(points []ComplexPoint, freq int) Coefficient {
	n := float64(len(points))
	var re, im float64
	for i, p := range points {
		phi := 2 * math.Pi * float64(freq) * float64(i) / n
		sin, cos := math.Sincos(phi)
		re += p.Re*cos + p.Im*sin
		im += p.Im*cos - p.Re*sin
	}
	return newCoefficient(re/n, im/n, freq)
}

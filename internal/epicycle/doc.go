// Package epicycle provides the numerical core for Fourier epicycle drawings.
//
// A freehand stroke is turned into a sequence of complex numbers, decomposed
// into a ranked set of frequency components and replayed as a chain of
// rotating vectors:
//
//   - [ToComplexSequence]: stroke samples to complex points
//   - [Analyze]: direct discrete Fourier summation into a [CoefficientSet]
//   - [Reconstruct]: chained epicycle positions at a given time
//   - [Clock]: per-frame time advance with period wrap
//
// # Example
//
//	pts := epicycle.ToComplexSequence(stroke)
//	set, err := epicycle.Analyze(pts, epicycle.DefaultCoefficients)
//	if err != nil {
//	    return err
//	}
//	chain, tip := epicycle.Reconstruct(set, t)
//
// # Thread Safety
//
// A [CoefficientSet] is immutable once returned from [Analyze] and may be
// shared freely. [Trace] and [Clock] are plain values owned by one caller.
package epicycle

// Package analysis provides spectral views of a drawing that complement the
// epicycle coefficients:
//
//   - [Spectrum]: full N-point spectrum of the drawing via FFT
//   - [SpectrumAt]: coefficient for a signed frequency from a spectrum
//   - [AmplitudeProfile]: ranked amplitudes of a coefficient set, for plotting
//   - [PathToASCII]: quick terminal rendering of a path
//
// # Spectrum vs. Coefficients
//
// The epicycle analyzer sums the DFT directly over a symmetric frequency band.
// [Spectrum] computes every frequency at once; the two agree on the band:
//
//	spec, _ := analysis.Spectrum(points)
//	c := analysis.SpectrumAt(spec, -3) // equals the analyzer's frequency -3 term
package analysis

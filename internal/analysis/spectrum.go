package analysis

import (
	"fmt"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/epicycles/internal/epicycle"
)

// Spectrum returns the discrete Fourier transform of the drawing, normalised
// by the number of samples so that bin k matches the epicycle coefficient of
// frequency k. Any length is accepted.
func Spectrum(points []epicycle.Point) ([]complex128, error) {
	n := len(points)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty drawing", epicycle.ErrInvalidInput)
	}

	buf := make([]complex128, n)
	for i, c := range epicycle.ToComplexSequence(points) {
		buf[i] = c.Complex()
	}

	spec := fft.FFT(buf)
	scale := complex(1/float64(n), 0)
	for i := range spec {
		spec[i] *= scale
	}
	return spec, nil
}

// SpectrumAt returns the bin for signed frequency k. Frequencies alias
// modulo the spectrum length.
func SpectrumAt(spec []complex128, k int) complex128 {
	n := len(spec)
	if n == 0 {
		return 0
	}
	return spec[((k%n)+n)%n]
}

// PowerSpectrum returns |X_k|^2 for every bin of spec.
func PowerSpectrum(spec []complex128) []float64 {
	ps := make([]float64, len(spec))
	for i, c := range spec {
		ps[i] = real(c)*real(c) + imag(c)*imag(c)
	}
	return ps
}

// Package analysis provides frequency-domain inspection of sampled series,
// mainly the bridge-motion history where both strings' partials show up.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitudes of the positive-frequency bins.
// The input is zero-padded to the next power of two.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)

	spectrum := fft.FFTReal(padded)

	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the frequency of the strongest non-DC bin in
// a power spectrum produced by [PowerSpectrum], given the rate at which
// the underlying series was sampled.
func DominantFrequency(ps []float64, sampleRate float64) float64 {
	if len(ps) < 2 {
		return 0
	}

	maxIdx := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}

	n := 2 * len(ps) // padded FFT length
	return float64(maxIdx) * sampleRate / float64(n)
}

package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrumSine(t *testing.T) {
	const (
		sampleRate = 1000.0
		freq       = 125.0 // exact bin for a 1024-point FFT at 1 kHz
		samples    = 1024
	)

	data := make([]float64, samples)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}

	ps := PowerSpectrum(data)
	if len(ps) != samples/2 {
		t.Fatalf("expected %d bins, got %d", samples/2, len(ps))
	}

	got := DominantFrequency(ps, sampleRate)
	if math.Abs(got-freq) > sampleRate/samples {
		t.Errorf("expected dominant frequency near %f, got %f", freq, got)
	}
}

func TestPowerSpectrumPads(t *testing.T) {
	ps := PowerSpectrum(make([]float64, 300))
	if len(ps) != 256 { // padded to 512, half returned
		t.Errorf("expected 256 bins from 300 samples, got %d", len(ps))
	}
}

func TestPowerSpectrumEmpty(t *testing.T) {
	if ps := PowerSpectrum(nil); ps != nil {
		t.Errorf("expected nil for empty input, got %v", ps)
	}
	if f := DominantFrequency(nil, 1000); f != 0 {
		t.Errorf("expected 0 for empty spectrum, got %f", f)
	}
}

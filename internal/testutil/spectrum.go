package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// MagnitudeSpectrumDB returns 20*log10|X[k]| for bins 0..fftSize/2 of the
// zero-padded FFT of x. fftSize must be a power of two not smaller than
// len(x). Bin k corresponds to k*sampleRate/fftSize Hz.
func MagnitudeSpectrumDB(x []float64, fftSize int) ([]float64, error) {
	if fftSize < len(x) {
		return nil, fmt.Errorf("fft size %d shorter than signal length %d", fftSize, len(x))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("NewPlan64: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("forward fft: %w", err)
	}

	db := make([]float64, fftSize/2+1)
	for k := range db {
		db[k] = 20 * math.Log10(cmplx.Abs(out[k]))
	}

	return db, nil
}

// BinFrequency returns the center frequency of FFT bin k.
func BinFrequency(k, fftSize int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(fftSize)
}

// RequireInsideUnitCircle fails t if any root has magnitude >= 1.
func RequireInsideUnitCircle(t testing.TB, roots []complex128) {
	t.Helper()
	for i, r := range roots {
		if m := cmplx.Abs(r); m >= 1 || math.IsNaN(m) {
			t.Fatalf("root %d: %v has magnitude %v, want < 1", i, r, m)
		}
	}
}

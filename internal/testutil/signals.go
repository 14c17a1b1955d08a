package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine returns n samples of amplitude·sin(2π·freqHz·i/sampleRate),
// starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, n int) []float64 {
	w := 2 * math.Pi * freqHz / sampleRate

	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(w*float64(i))
	}

	return out
}

// DeterministicNoise returns n uniform samples in [-amplitude, amplitude)
// drawn from a generator seeded with seed.
func DeterministicNoise(seed int64, amplitude float64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * (2*rng.Float64() - 1)
	}

	return out
}

// Impulse returns n samples that are zero except for a 1 at pos. A pos
// outside the buffer yields silence.
func Impulse(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}

	return out
}

// DC returns n samples of the constant value.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}

	return out
}

// Ones returns a DC signal of 1.
func Ones(n int) []float64 { return DC(1, n) }

package biquad

import (
	"math"
	"math/cmplx"
)

// ResponseW computes the complex frequency response H(e^jw) at the
// normalized angular frequency w (rad/sample).
func (c *Coefficients) ResponseW(w float64) complex128 {
	ejw := cmplx.Exp(complex(0, -w))
	ej2w := cmplx.Exp(complex(0, -2*w))

	num := complex(c.B0, 0) + complex(c.B1, 0)*ejw + complex(c.B2, 0)*ej2w
	den := complex(1, 0) + complex(c.A1, 0)*ejw + complex(c.A2, 0)*ej2w
	return num / den
}

// Response computes the complex frequency response H(e^jw) of a biquad
// at the given frequency (Hz) and sample rate (Hz).
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	return c.ResponseW(2 * math.Pi * freqHz / sampleRate)
}

// MagnitudeSquared returns |H(f)|^2 using a closed-form expression.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	cw := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	num := (b0-b2)*(b0-b2) + b1*b1 + (b1*(b0+b2)+b0*b2*cw)*cw
	den := (1-a2)*(1-a2) + a1*a1 + (a1*(a2+1)+cw*a2)*cw
	return num / den
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// ResponseW computes the complex frequency response of the active cascade
// at w (rad/sample), including the gain.
func (c *Cascade[S, PS]) ResponseW(w float64) complex128 {
	h := complex(c.gain, 0)
	for i := 0; i < c.n; i++ {
		h *= c.coeffs[i].ResponseW(w)
	}
	return h
}

// Response computes the complex frequency response of the full cascade
// as the product of individual section responses.
func (c *Cascade[S, PS]) Response(freqHz, sampleRate float64) complex128 {
	return c.ResponseW(2 * math.Pi * freqHz / sampleRate)
}

// MagnitudeDB returns the cascaded magnitude response in dB.
func (c *Cascade[S, PS]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	h := c.Response(freqHz, sampleRate)
	return 20 * math.Log10(cmplx.Abs(h))
}

// ImpulseResponse computes n samples of the cascade impulse response.
// The cascade state is saved and restored.
func (c *Cascade[S, PS]) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	saved := make([]S, len(c.states))
	copy(saved, c.states)
	c.Reset()
	ir := make([]float64, n)
	ir[0] = c.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = c.ProcessSample(0)
	}
	copy(c.states, saved)
	return ir
}

package biquad

import (
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// SetPoleZeroPair sets c to the section with the poles and zeros of p and
// B0 = 1. Conjugate (or real) roots give real coefficients; a single pair
// yields a first-order section.
func (c *Coefficients) SetPoleZeroPair(p iir.PoleZeroPair) {
	if p.IsSingle() {
		*c = Coefficients{
			B0: 1,
			B1: -real(p.Zeros[0]),
			A1: -real(p.Poles[0]),
		}

		return
	}

	*c = Coefficients{
		B0: 1,
		B1: -real(p.Zeros[0] + p.Zeros[1]),
		B2: real(p.Zeros[0] * p.Zeros[1]),
		A1: -real(p.Poles[0] + p.Poles[1]),
		A2: real(p.Poles[0] * p.Poles[1]),
	}
}

// Poles returns the z-plane poles of the section denominator:
//
//	1 + A1*z^-1 + A2*z^-2 = 0
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the z-plane zeros of the section numerator:
//
//	B0 + B1*z^-1 + B2*z^-2 = 0
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// Poles returns the poles of all active sections. First-order sections
// contribute one pole.
func (c *Cascade[S, PS]) Poles() []complex128 {
	out := make([]complex128, 0, 2*c.n)
	for i := 0; i < c.n; i++ {
		p := c.coeffs[i].Poles()
		out = append(out, p[0])
		if !c.coeffs[i].IsFirstOrder() {
			out = append(out, p[1])
		}
	}

	return out
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}

	if c == 0 {
		// First-order: a + b·z⁻¹ has its root at -b/a.
		return [2]complex128{complex(-b/a, 0), 0}
	}

	discriminant := complex(b*b-4*a*c, 0)
	sqrtDiscriminant := cmplx.Sqrt(discriminant)
	den := complex(2*a, 0)
	return [2]complex128{
		(-complex(b, 0) + sqrtDiscriminant) / den,
		(-complex(b, 0) - sqrtDiscriminant) / den,
	}
}

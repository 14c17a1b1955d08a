package iir

import (
	"math"
	"math/cmplx"
)

// Prewarp returns the analog angular frequency (rad/s) that the bilinear
// transform at sampleRate maps exactly onto freq (Hz):
//
//	Ω = (2/T)·tan(ωT/2),  T = 1/sampleRate, ω = 2π·freq
func Prewarp(freq, sampleRate float64) float64 {
	return 2 * sampleRate * math.Tan(math.Pi*freq/sampleRate)
}

// Bilinear maps an s-plane root to the z-plane:
//
//	z = (2/T + s) / (2/T - s)
//
// Infinity maps to z = -1.
func Bilinear(s complex128, sampleRate float64) complex128 {
	if cmplx.IsInf(s) {
		return -1
	}

	k := complex(2*sampleRate, 0)

	return (k + s) / (k - s)
}

// digitalW maps an analog angular frequency to rad/sample.
func digitalW(omega, sampleRate float64) float64 {
	if math.IsInf(omega, 1) {
		return math.Pi
	}

	return 2 * math.Atan(omega/(2*sampleRate))
}

func scaleRoot(r complex128, w float64) complex128 {
	if cmplx.IsInf(r) {
		return r
	}

	return r * complex(w, 0)
}

func invertRoot(r complex128, w float64) complex128 {
	switch {
	case cmplx.IsInf(r):
		return 0
	case r == 0:
		return Infinity()
	default:
		return complex(w, 0) / r
	}
}

// quadRoots returns the roots of s² - b·s + c = 0 for real c > 0.
// An infinite b yields (∞, 0).
func quadRoots(b complex128, c float64) (complex128, complex128) {
	if cmplx.IsInf(b) {
		return Infinity(), 0
	}

	if imag(b) == 0 {
		br := real(b)
		d := br*br - 4*c

		if d < 0 {
			im := math.Sqrt(-d) * 0.5
			r := complex(br*0.5, im)

			return r, cmplx.Conj(r)
		}

		sq := math.Sqrt(d)
		if br < 0 {
			sq = -sq
		}

		r1 := (br + sq) * 0.5
		if r1 == 0 {
			return 0, 0
		}

		return complex(r1, 0), complex(c/r1, 0)
	}

	disc := cmplx.Sqrt(b*b - complex(4*c, 0))
	if real(cmplx.Conj(b)*disc) < 0 {
		disc = -disc
	}

	r1 := (b + disc) * 0.5

	return r1, complex(c, 0) / r1
}

func addBilinear(digital *Layout, p PoleZeroPair, sampleRate float64) {
	if p.single {
		digital.AddSingle(
			Bilinear(p.Poles[0], sampleRate),
			Bilinear(p.Zeros[0], sampleRate),
		)

		return
	}

	digital.Add(PoleZeroPair{
		Poles: [2]complex128{Bilinear(p.Poles[0], sampleRate), Bilinear(p.Poles[1], sampleRate)},
		Zeros: [2]complex128{Bilinear(p.Zeros[0], sampleRate), Bilinear(p.Zeros[1], sampleRate)},
	})
}

// mapPair applies a one-to-one root map to a pair, keeping conjugate pairs
// exactly conjugate.
func mapPair(p PoleZeroPair, f func(complex128) complex128) PoleZeroPair {
	if p.single {
		return SinglePair(f(p.Poles[0]), f(p.Zeros[0]))
	}

	if isConjugate(p.Poles) && isConjugate(p.Zeros) {
		return ConjugatePair(f(p.Poles[0]), f(p.Zeros[0]))
	}

	return PoleZeroPair{
		Poles: [2]complex128{f(p.Poles[0]), f(p.Poles[1])},
		Zeros: [2]complex128{f(p.Zeros[0]), f(p.Zeros[1])},
	}
}

func isConjugate(r [2]complex128) bool {
	if cmplx.IsInf(r[0]) || cmplx.IsInf(r[1]) {
		return cmplx.IsInf(r[0]) && cmplx.IsInf(r[1])
	}

	return r[1] == cmplx.Conj(r[0])
}

// LowPassTransform denormalizes the analog lowpass prototype to cutoffFreq
// (s → s/Ωc) and discretizes it into digital. The pole count is unchanged.
func LowPassTransform(digital, analog *Layout, sampleRate, cutoffFreq float64) {
	wc := Prewarp(cutoffFreq, sampleRate)

	digital.Reset()

	for _, p := range analog.pairs {
		q := mapPair(p, func(r complex128) complex128 { return scaleRoot(r, wc) })
		addBilinear(digital, q, sampleRate)
	}

	digital.SetNormal(digitalW(analog.NormalW*wc, sampleRate), analog.NormalGain)
}

// HighPassTransform maps the analog lowpass prototype to a highpass with
// cutoff cutoffFreq (s → Ωc/s) and discretizes it into digital. Roots at the
// origin and at infinity swap places.
func HighPassTransform(digital, analog *Layout, sampleRate, cutoffFreq float64) {
	wc := Prewarp(cutoffFreq, sampleRate)

	digital.Reset()

	for _, p := range analog.pairs {
		q := mapPair(p, func(r complex128) complex128 { return invertRoot(r, wc) })
		addBilinear(digital, q, sampleRate)
	}

	omega := math.Inf(1)
	if analog.NormalW != 0 {
		omega = wc / analog.NormalW
	}

	digital.SetNormal(digitalW(omega, sampleRate), analog.NormalGain)
}

// bandEdges returns Ω0² and B for a band centered at centerFreq with width
// widthFreq, both edges pre-warped individually.
func bandEdges(sampleRate, centerFreq, widthFreq float64) (float64, float64) {
	w1 := Prewarp(centerFreq-widthFreq*0.5, sampleRate)
	w2 := Prewarp(centerFreq+widthFreq*0.5, sampleRate)

	return w1 * w2, w2 - w1
}

// splitPair maps every root r of p to the two roots of s² - b(r)·s + Ω0² and
// adds the resulting sections to digital. A conjugate pair becomes two
// conjugate pairs, a single pair becomes one full pair.
func splitPair(digital *Layout, p PoleZeroPair, b func(complex128) complex128, w0sq, sampleRate float64) {
	if p.single {
		p1, p2 := quadRoots(b(p.Poles[0]), w0sq)
		z1, z2 := quadRoots(b(p.Zeros[0]), w0sq)

		addBilinear(digital, PoleZeroPair{
			Poles: [2]complex128{p1, p2},
			Zeros: [2]complex128{z1, z2},
		}, sampleRate)

		return
	}

	p1, p2 := quadRoots(b(p.Poles[0]), w0sq)
	z1, z2 := quadRoots(b(p.Zeros[0]), w0sq)

	addBilinear(digital, ConjugatePair(p1, z1), sampleRate)
	addBilinear(digital, ConjugatePair(p2, z2), sampleRate)
}

// BandPassTransform maps the analog lowpass prototype to a bandpass
// (s → (s² + Ω0²)/(B·s)) and discretizes it into digital. The pole count
// doubles. The half-power edges land on centerFreq ∓ widthFreq/2.
func BandPassTransform(digital, analog *Layout, sampleRate, centerFreq, widthFreq float64) {
	w0sq, bw := bandEdges(sampleRate, centerFreq, widthFreq)
	b := func(r complex128) complex128 {
		if cmplx.IsInf(r) {
			return r
		}

		return r * complex(bw, 0)
	}

	digital.Reset()

	for _, p := range analog.pairs {
		splitPair(digital, p, b, w0sq, sampleRate)
	}

	wa := analog.NormalW
	omega := (bw*wa + math.Sqrt(bw*bw*wa*wa+4*w0sq)) * 0.5
	digital.SetNormal(digitalW(omega, sampleRate), analog.NormalGain)
}

// BandStopTransform maps the analog lowpass prototype to a bandstop
// (s → B·s/(s² + Ω0²)) and discretizes it into digital. The pole count
// doubles and zeros at infinity become notch zeros at ±jΩ0.
func BandStopTransform(digital, analog *Layout, sampleRate, centerFreq, widthFreq float64) {
	w0sq, bw := bandEdges(sampleRate, centerFreq, widthFreq)
	b := func(r complex128) complex128 {
		switch {
		case cmplx.IsInf(r):
			return 0
		case r == 0:
			return Infinity()
		default:
			return complex(bw, 0) / r
		}
	}

	digital.Reset()

	for _, p := range analog.pairs {
		splitPair(digital, p, b, w0sq, sampleRate)
	}

	omega := 0.0
	if wa := analog.NormalW; wa != 0 {
		omega = (-bw + math.Sqrt(bw*bw+4*wa*wa*w0sq)) / (2 * wa)
	}

	digital.SetNormal(digitalW(omega, sampleRate), analog.NormalGain)
}

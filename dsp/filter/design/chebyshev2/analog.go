package chebyshev2

import (
	"math"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// epsilon returns the ripple factor that places the stopband at -stopBandDb.
func epsilon(stopBandDb float64) float64 {
	return 1 / math.Sqrt(math.Pow(10, stopBandDb/10)-1)
}

// halfPowerScale returns the factor that moves the half-power point of the
// prototype to ω = 1. Without a half-power point the scale is 1.
func halfPowerScale(numPoles int, eps float64) float64 {
	inv := 1 / eps
	if inv <= 1 {
		return 1
	}

	return math.Cosh(math.Acosh(inv) / float64(numPoles))
}

// inversePole returns the k-th (0-based) Type II pole for ripple factor eps:
// the reciprocal of the matching Type I pole. Its conjugate is the other
// pole of the pair.
func inversePole(k, numPoles int, eps float64) complex128 {
	n := float64(numPoles)
	v0 := math.Asinh(1/eps) / n
	theta := float64(2*k+1) * math.Pi / (2 * n)

	p := complex(-math.Sinh(v0)*math.Sin(theta), math.Cosh(v0)*math.Cos(theta))

	return 1 / p
}

// inverseRealPole returns the real Type II pole of an odd order prototype.
func inverseRealPole(numPoles int, eps float64) complex128 {
	v0 := math.Asinh(1/eps) / float64(numPoles)

	return complex(-1/math.Sinh(v0), 0)
}

// stopBandZero returns the k-th (0-based) upper half-plane zero, lying on
// the imaginary axis at or beyond the stopband edge.
func stopBandZero(k, numPoles int) complex128 {
	theta := float64(2*k+1) * math.Pi / (2 * float64(numPoles))

	return complex(0, 1/math.Cos(theta))
}

// rootLocus fills l with the Type II lowpass roots for numPoles and eps,
// scaled by scale. Conjugate pairs come first, the real pole of an odd order
// comes last with its zero at infinity.
func rootLocus(l *iir.Layout, numPoles int, eps, scale float64) {
	s := complex(scale, 0)

	l.Reset()

	for k := range numPoles / 2 {
		l.AddConjugatePairs(s*inversePole(k, numPoles, eps), s*stopBandZero(k, numPoles))
	}

	if numPoles&1 == 1 {
		l.AddSingle(s*inverseRealPole(numPoles, eps), iir.Infinity())
	}
}

// AnalogLowPass is the normalized Type II lowpass prototype. Its half-power
// point is at ω = 1 rad/s and its gain at DC is 1.
type AnalogLowPass struct {
	layout   *iir.Layout
	maxPoles int

	numPoles   int
	stopBandDb float64
	edge       float64
}

// NewAnalogLowPass returns a prototype able to hold up to maxPoles poles.
// A maxPoles below 1 reserves a single pole.
func NewAnalogLowPass(maxPoles int) *AnalogLowPass {
	if maxPoles < 1 {
		maxPoles = 1
	}

	return &AnalogLowPass{
		layout:   iir.NewLayout(maxPoles),
		maxPoles: maxPoles,
	}
}

// Design computes the prototype roots. A call repeating the previous
// arguments leaves the layout untouched.
func (a *AnalogLowPass) Design(numPoles int, stopBandDb float64) error {
	if err := iir.ValidateOrder(numPoles, a.maxPoles); err != nil {
		return err
	}

	if err := iir.ValidateStopBand(stopBandDb); err != nil {
		return err
	}

	if numPoles == a.numPoles && stopBandDb == a.stopBandDb {
		return nil
	}

	eps := epsilon(stopBandDb)
	scale := halfPowerScale(numPoles, eps)

	rootLocus(a.layout, numPoles, eps, scale)
	a.layout.SetNormal(0, 1)

	a.numPoles = numPoles
	a.stopBandDb = stopBandDb
	a.edge = scale

	return nil
}

// Layout returns the analog roots of the last design.
func (a *AnalogLowPass) Layout() *iir.Layout { return a.layout }

// NumPoles returns the order of the last design, or 0.
func (a *AnalogLowPass) NumPoles() int { return a.numPoles }

// StopBandEdge returns the normalized frequency (rad/s, half-power point at
// 1) above which the response stays at or below -stopBandDb.
func (a *AnalogLowPass) StopBandEdge() float64 { return a.edge }

// AnalogLowShelf is the Type II low-shelf prototype: gain gainDb at DC
// settling to 0 dB above the stopband edge, with the transition around
// ω = 1 rad/s.
//
// Its power response is 1 + (G²-1)·|H_lp|², G = 10^(gainDb/20), where H_lp
// is the matching [AnalogLowPass]. The poles are those of H_lp and the zeros
// are the lowpass poles for the ripple factor ε·G, so a zero gain yields
// coinciding poles and zeros. Above the stopband edge the response deviates
// from 0 dB by at most (G²-1)·10^(-stopBandDb/10) in power.
type AnalogLowShelf struct {
	layout   *iir.Layout
	maxPoles int

	numPoles   int
	gainDb     float64
	stopBandDb float64
}

// NewAnalogLowShelf returns a prototype able to hold up to maxPoles poles.
// A maxPoles below 1 reserves a single pole.
func NewAnalogLowShelf(maxPoles int) *AnalogLowShelf {
	if maxPoles < 1 {
		maxPoles = 1
	}

	return &AnalogLowShelf{
		layout:   iir.NewLayout(maxPoles),
		maxPoles: maxPoles,
	}
}

// Design computes the prototype roots. A call repeating the previous
// arguments leaves the layout untouched.
func (a *AnalogLowShelf) Design(numPoles int, gainDb, stopBandDb float64) error {
	if err := iir.ValidateOrder(numPoles, a.maxPoles); err != nil {
		return err
	}

	if err := iir.ValidateGain(gainDb); err != nil {
		return err
	}

	if err := iir.ValidateStopBand(stopBandDb); err != nil {
		return err
	}

	if numPoles == a.numPoles && gainDb == a.gainDb && stopBandDb == a.stopBandDb {
		return nil
	}

	g := math.Pow(10, gainDb/20)
	eps := epsilon(stopBandDb)

	// The zero locus uses the ripple factor eps·g, which must stay a
	// normal number with a finite reciprocal.
	if eg := eps * g; eg == 0 || math.IsInf(eg, 0) || math.IsInf(1/eg, 0) {
		return iir.ErrInvalidGain
	}
	s := complex(halfPowerScale(numPoles, eps), 0)

	a.layout.Reset()

	for k := range numPoles / 2 {
		a.layout.AddConjugatePairs(
			s*inversePole(k, numPoles, eps),
			s*inversePole(k, numPoles, eps*g),
		)
	}

	if numPoles&1 == 1 {
		a.layout.AddSingle(
			s*inverseRealPole(numPoles, eps),
			s*inverseRealPole(numPoles, eps*g),
		)
	}

	a.layout.SetNormal(0, g)

	a.numPoles = numPoles
	a.gainDb = gainDb
	a.stopBandDb = stopBandDb

	return nil
}

// Layout returns the analog roots of the last design.
func (a *AnalogLowShelf) Layout() *iir.Layout { return a.layout }

// NumPoles returns the order of the last design, or 0.
func (a *AnalogLowShelf) NumPoles() int { return a.numPoles }

package biquad

import (
	"math/cmplx"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// Cascade is an ordered chain of biquad sections processed in series.
//
// Storage for maxSections sections is reserved by [NewCascade] and reused by
// every [Cascade.SetLayout] call; only the first NumSections sections are
// active. The topology S is fixed at compile time.
type Cascade[S any, PS StateType[S]] struct {
	coeffs []Coefficients
	states []S
	n      int
	gain   float64
}

// cascadeConfig holds options for NewCascade.
type cascadeConfig struct {
	gain float64
}

// CascadeOption configures a Cascade.
type CascadeOption func(*cascadeConfig)

// WithGain sets an overall gain applied to the input before cascading.
// Default is 1.0 (unity gain).
func WithGain(g float64) CascadeOption {
	return func(cfg *cascadeConfig) { cfg.gain = g }
}

// NewCascade reserves a cascade of up to maxSections sections. It starts with
// no active sections, which passes the input through scaled by the gain.
func NewCascade[S any, PS StateType[S]](maxSections int, opts ...CascadeOption) *Cascade[S, PS] {
	cfg := cascadeConfig{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}

	if maxSections < 1 {
		maxSections = 1
	}

	return &Cascade[S, PS]{
		coeffs: make([]Coefficients, maxSections),
		states: make([]S, maxSections),
		gain:   cfg.gain,
	}
}

// SetLayout decomposes a digital pole/zero layout into sections, one per
// pair and in layout order, and scales the overall gain so that the
// magnitude at l.NormalW equals l.NormalGain.
//
// Delay-line state is preserved when the number of active sections is
// unchanged and cleared otherwise. SetLayout panics if the layout holds more
// pairs than the reserved sections. It never allocates.
func (c *Cascade[S, PS]) SetLayout(l *iir.Layout) {
	n := l.NumPairs()
	if n > len(c.coeffs) {
		panic("biquad: layout exceeds reserved sections")
	}

	for i, p := range l.Pairs() {
		c.coeffs[i].SetPoleZeroPair(p)
	}

	c.activate(n)

	c.gain = 1

	h := cmplx.Abs(c.ResponseW(l.NormalW))
	if h != 0 {
		c.gain = l.NormalGain / h
	}
}

// SetCoefficients replaces the active sections with coeffs and sets the
// overall gain. State handling follows [Cascade.SetLayout].
func (c *Cascade[S, PS]) SetCoefficients(coeffs []Coefficients, gain float64) {
	if len(coeffs) > len(c.coeffs) {
		panic("biquad: coefficients exceed reserved sections")
	}

	copy(c.coeffs, coeffs)
	c.activate(len(coeffs))
	c.gain = gain
}

func (c *Cascade[S, PS]) activate(n int) {
	if n != c.n {
		for i := range c.states {
			PS(&c.states[i]).Reset()
		}
	}

	c.n = n
}

// ProcessSample cascades input through all active sections in order.
// The input is scaled by the gain before the first section.
func (c *Cascade[S, PS]) ProcessSample(x float64) float64 {
	x *= c.gain
	for i := 0; i < c.n; i++ {
		x = PS(&c.states[i]).ProcessSample(x, &c.coeffs[i])
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Cascade[S, PS]) ProcessBlock(buf []float64) {
	if c.gain != 1 {
		for i, x := range buf {
			buf[i] = x * c.gain
		}
	}

	for i := 0; i < c.n; i++ {
		PS(&c.states[i]).ProcessBlock(&c.coeffs[i], buf)
	}
}

// Reset clears all section states.
func (c *Cascade[S, PS]) Reset() {
	for i := range c.states {
		PS(&c.states[i]).Reset()
	}
}

// NumSections returns the number of active sections.
func (c *Cascade[S, PS]) NumSections() int {
	return c.n
}

// MaxSections returns the number of reserved sections.
func (c *Cascade[S, PS]) MaxSections() int {
	return len(c.coeffs)
}

// Order returns the filter order of the active sections, counting a
// first-order section once.
func (c *Cascade[S, PS]) Order() int {
	order := 0
	for i := 0; i < c.n; i++ {
		if c.coeffs[i].IsFirstOrder() {
			order++
		} else {
			order += 2
		}
	}

	return order
}

// Gain returns the current input gain applied before cascading.
func (c *Cascade[S, PS]) Gain() float64 { return c.gain }

// SetGain updates the input gain applied before cascading.
func (c *Cascade[S, PS]) SetGain(g float64) { c.gain = g }

// Section returns the coefficients of the i-th active section.
func (c *Cascade[S, PS]) Section(i int) Coefficients {
	if i < 0 || i >= c.n {
		panic("biquad: section index out of range")
	}

	return c.coeffs[i]
}

// Coefficients returns a copy of the active section coefficients.
func (c *Cascade[S, PS]) Coefficients() []Coefficients {
	out := make([]Coefficients, c.n)
	copy(out, c.coeffs[:c.n])

	return out
}

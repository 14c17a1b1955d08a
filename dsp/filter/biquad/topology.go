package biquad

import archregistry "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"

// StateType is the constraint satisfied by pointers to the execution
// topologies. S is the state value stored per section.
type StateType[S any] interface {
	*S

	// ProcessSample filters one sample through a section with coefficients c.
	ProcessSample(x float64, c *Coefficients) float64

	// ProcessBlock filters buf in place.
	ProcessBlock(c *Coefficients, buf []float64)

	// Reset clears the delay line.
	Reset()
}

// DirectFormI keeps two input and two output delays.
type DirectFormI struct {
	x1, x2 float64
	y1, y2 float64
}

// ProcessSample filters one input sample and returns the output.
func (s *DirectFormI) ProcessSample(x float64, c *Coefficients) float64 {
	y := c.B0*x + c.B1*s.x1 + c.B2*s.x2 - c.A1*s.y1 - c.A2*s.y2
	s.x2 = s.x1
	s.x1 = x
	s.y2 = s.y1
	s.y1 = y

	return y
}

// ProcessBlock filters buf in place.
func (s *DirectFormI) ProcessBlock(c *Coefficients, buf []float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	x1, x2, y1, y2 := s.x1, s.x2, s.y1, s.y2

	for i, x := range buf {
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	s.x1, s.x2, s.y1, s.y2 = x1, x2, y1, y2
}

// Reset clears the delay line.
func (s *DirectFormI) Reset() {
	*s = DirectFormI{}
}

// DirectFormII keeps a single two-element delay line shared by the
// feedback and feedforward paths.
type DirectFormII struct {
	w1, w2 float64
}

// ProcessSample filters one input sample and returns the output.
func (s *DirectFormII) ProcessSample(x float64, c *Coefficients) float64 {
	w := x - c.A1*s.w1 - c.A2*s.w2
	y := c.B0*w + c.B1*s.w1 + c.B2*s.w2
	s.w2 = s.w1
	s.w1 = w

	return y
}

// ProcessBlock filters buf in place.
func (s *DirectFormII) ProcessBlock(c *Coefficients, buf []float64) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x, c)
	}
}

// Reset clears the delay line.
func (s *DirectFormII) Reset() {
	*s = DirectFormII{}
}

// TransposedDirectFormII is the Direct Form II Transposed topology:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
//
// Its block path runs on the kernel selected for the current CPU.
type TransposedDirectFormII struct {
	d0, d1 float64
}

// ProcessSample filters one input sample and returns the output.
func (s *TransposedDirectFormII) ProcessSample(x float64, c *Coefficients) float64 {
	y := c.B0*x + s.d0
	s.d0 = c.B1*x - c.A1*y + s.d1
	s.d1 = c.B2*x - c.A2*y

	return y
}

// ProcessBlock filters buf in place. Zero-alloc.
func (s *TransposedDirectFormII) ProcessBlock(c *Coefficients, buf []float64) {
	processBlockInitOnce.Do(initProcessBlockKernel)

	coeffs := archregistry.Coefficients{
		B0: c.B0,
		B1: c.B1,
		B2: c.B2,
		A1: c.A1,
		A2: c.A2,
	}

	s.d0, s.d1 = processBlockImpl(coeffs, s.d0, s.d1, buf)
}

// Reset clears the delay line.
func (s *TransposedDirectFormII) Reset() {
	s.d0 = 0
	s.d1 = 0
}

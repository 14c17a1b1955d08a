package chebyshev2

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad"
	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// runner owns the biquad cascade a design is loaded into.
type runner[S any, PS biquad.StateType[S]] struct {
	cascade *biquad.Cascade[S, PS]
}

func newRunner[S any, PS biquad.StateType[S]](l *iir.Layout) runner[S, PS] {
	return runner[S, PS]{cascade: biquad.NewCascade[S, PS](l.MaxPairs())}
}

// ProcessSample filters one sample.
func (r *runner[S, PS]) ProcessSample(x float64) float64 {
	return r.cascade.ProcessSample(x)
}

// ProcessBlock filters buf in place.
func (r *runner[S, PS]) ProcessBlock(buf []float64) {
	r.cascade.ProcessBlock(buf)
}

// Reset clears the delay lines.
func (r *runner[S, PS]) Reset() {
	r.cascade.Reset()
}

// NumSections returns the number of active biquad sections.
func (r *runner[S, PS]) NumSections() int {
	return r.cascade.NumSections()
}

// Cascade exposes the underlying cascade for response queries.
func (r *runner[S, PS]) Cascade() *biquad.Cascade[S, PS] {
	return r.cascade
}

// LowPass is a Chebyshev Type II lowpass running in topology S.
type LowPass[S any, PS biquad.StateType[S]] struct {
	LowPassBase
	runner[S, PS]
}

// NewLowPass returns a lowpass with storage for up to maxOrder poles.
// A maxOrder below 1 reserves order 1; Setup orders are never clamped.
func NewLowPass[S any, PS biquad.StateType[S]](maxOrder int) *LowPass[S, PS] {
	f := &LowPass[S, PS]{LowPassBase: *NewLowPassBase(maxOrder)}
	f.runner = newRunner[S, PS](f.digital)

	return f
}

// Setup designs the filter at its maximum order.
func (f *LowPass[S, PS]) Setup(sampleRate, cutoffFreq, stopBandDb float64) error {
	return f.SetupOrder(f.maxOrder, sampleRate, cutoffFreq, stopBandDb)
}

// SetupOrder designs the filter at order. It never allocates. On error the
// filter keeps its previous coefficients.
func (f *LowPass[S, PS]) SetupOrder(order int, sampleRate, cutoffFreq, stopBandDb float64) error {
	if err := f.LowPassBase.Setup(order, sampleRate, cutoffFreq, stopBandDb); err != nil {
		return err
	}

	f.cascade.SetLayout(f.digital)

	return nil
}

// HighPass is a Chebyshev Type II highpass running in topology S.
type HighPass[S any, PS biquad.StateType[S]] struct {
	HighPassBase
	runner[S, PS]
}

// NewHighPass returns a highpass with storage for up to maxOrder poles.
// A maxOrder below 1 reserves order 1; Setup orders are never clamped.
func NewHighPass[S any, PS biquad.StateType[S]](maxOrder int) *HighPass[S, PS] {
	f := &HighPass[S, PS]{HighPassBase: *NewHighPassBase(maxOrder)}
	f.runner = newRunner[S, PS](f.digital)

	return f
}

// Setup designs the filter at its maximum order.
func (f *HighPass[S, PS]) Setup(sampleRate, cutoffFreq, stopBandDb float64) error {
	return f.SetupOrder(f.maxOrder, sampleRate, cutoffFreq, stopBandDb)
}

// SetupOrder designs the filter at order. On error the filter keeps its
// previous coefficients.
func (f *HighPass[S, PS]) SetupOrder(order int, sampleRate, cutoffFreq, stopBandDb float64) error {
	if err := f.HighPassBase.Setup(order, sampleRate, cutoffFreq, stopBandDb); err != nil {
		return err
	}

	f.cascade.SetLayout(f.digital)

	return nil
}

// BandPass is a Chebyshev Type II bandpass running in topology S. An order N
// design uses N biquad sections.
type BandPass[S any, PS biquad.StateType[S]] struct {
	BandPassBase
	runner[S, PS]
}

// NewBandPass returns a bandpass with storage for prototype orders up to
// maxOrder.
// A maxOrder below 1 reserves order 1; Setup orders are never clamped.
func NewBandPass[S any, PS biquad.StateType[S]](maxOrder int) *BandPass[S, PS] {
	f := &BandPass[S, PS]{BandPassBase: *NewBandPassBase(maxOrder)}
	f.runner = newRunner[S, PS](f.digital)

	return f
}

// Setup designs the filter at its maximum order.
func (f *BandPass[S, PS]) Setup(sampleRate, centerFreq, widthFreq, stopBandDb float64) error {
	return f.SetupOrder(f.maxOrder, sampleRate, centerFreq, widthFreq, stopBandDb)
}

// SetupOrder designs the filter at order. On error the filter keeps its
// previous coefficients.
func (f *BandPass[S, PS]) SetupOrder(order int, sampleRate, centerFreq, widthFreq, stopBandDb float64) error {
	if err := f.BandPassBase.Setup(order, sampleRate, centerFreq, widthFreq, stopBandDb); err != nil {
		return err
	}

	f.cascade.SetLayout(f.digital)

	return nil
}

// BandStop is a Chebyshev Type II bandstop running in topology S. An order N
// design uses N biquad sections.
type BandStop[S any, PS biquad.StateType[S]] struct {
	BandStopBase
	runner[S, PS]
}

// NewBandStop returns a bandstop with storage for prototype orders up to
// maxOrder.
// A maxOrder below 1 reserves order 1; Setup orders are never clamped.
func NewBandStop[S any, PS biquad.StateType[S]](maxOrder int) *BandStop[S, PS] {
	f := &BandStop[S, PS]{BandStopBase: *NewBandStopBase(maxOrder)}
	f.runner = newRunner[S, PS](f.digital)

	return f
}

// Setup designs the filter at its maximum order.
func (f *BandStop[S, PS]) Setup(sampleRate, centerFreq, widthFreq, stopBandDb float64) error {
	return f.SetupOrder(f.maxOrder, sampleRate, centerFreq, widthFreq, stopBandDb)
}

// SetupOrder designs the filter at order. On error the filter keeps its
// previous coefficients.
func (f *BandStop[S, PS]) SetupOrder(order int, sampleRate, centerFreq, widthFreq, stopBandDb float64) error {
	if err := f.BandStopBase.Setup(order, sampleRate, centerFreq, widthFreq, stopBandDb); err != nil {
		return err
	}

	f.cascade.SetLayout(f.digital)

	return nil
}

// LowShelf is a Chebyshev Type II low shelf running in topology S.
type LowShelf[S any, PS biquad.StateType[S]] struct {
	LowShelfBase
	runner[S, PS]
}

// NewLowShelf returns a low shelf with storage for up to maxOrder poles.
// A maxOrder below 1 reserves order 1; Setup orders are never clamped.
func NewLowShelf[S any, PS biquad.StateType[S]](maxOrder int) *LowShelf[S, PS] {
	f := &LowShelf[S, PS]{LowShelfBase: *NewLowShelfBase(maxOrder)}
	f.runner = newRunner[S, PS](f.digital)

	return f
}

// Setup designs the filter at its maximum order.
func (f *LowShelf[S, PS]) Setup(sampleRate, cutoffFreq, gainDb, stopBandDb float64) error {
	return f.SetupOrder(f.maxOrder, sampleRate, cutoffFreq, gainDb, stopBandDb)
}

// SetupOrder designs the filter at order. On error the filter keeps its
// previous coefficients.
func (f *LowShelf[S, PS]) SetupOrder(order int, sampleRate, cutoffFreq, gainDb, stopBandDb float64) error {
	if err := f.LowShelfBase.Setup(order, sampleRate, cutoffFreq, gainDb, stopBandDb); err != nil {
		return err
	}

	f.cascade.SetLayout(f.digital)

	return nil
}

// HighShelf is a Chebyshev Type II high shelf running in topology S.
type HighShelf[S any, PS biquad.StateType[S]] struct {
	HighShelfBase
	runner[S, PS]
}

// NewHighShelf returns a high shelf with storage for up to maxOrder poles.
// A maxOrder below 1 reserves order 1; Setup orders are never clamped.
func NewHighShelf[S any, PS biquad.StateType[S]](maxOrder int) *HighShelf[S, PS] {
	f := &HighShelf[S, PS]{HighShelfBase: *NewHighShelfBase(maxOrder)}
	f.runner = newRunner[S, PS](f.digital)

	return f
}

// Setup designs the filter at its maximum order.
func (f *HighShelf[S, PS]) Setup(sampleRate, cutoffFreq, gainDb, stopBandDb float64) error {
	return f.SetupOrder(f.maxOrder, sampleRate, cutoffFreq, gainDb, stopBandDb)
}

// SetupOrder designs the filter at order. On error the filter keeps its
// previous coefficients.
func (f *HighShelf[S, PS]) SetupOrder(order int, sampleRate, cutoffFreq, gainDb, stopBandDb float64) error {
	if err := f.HighShelfBase.Setup(order, sampleRate, cutoffFreq, gainDb, stopBandDb); err != nil {
		return err
	}

	f.cascade.SetLayout(f.digital)

	return nil
}

// BandShelf is a Chebyshev Type II band shelf running in topology S. An
// order N design uses N biquad sections.
type BandShelf[S any, PS biquad.StateType[S]] struct {
	BandShelfBase
	runner[S, PS]
}

// NewBandShelf returns a band shelf with storage for prototype orders up to
// maxOrder.
// A maxOrder below 1 reserves order 1; Setup orders are never clamped.
func NewBandShelf[S any, PS biquad.StateType[S]](maxOrder int) *BandShelf[S, PS] {
	f := &BandShelf[S, PS]{BandShelfBase: *NewBandShelfBase(maxOrder)}
	f.runner = newRunner[S, PS](f.digital)

	return f
}

// Setup designs the filter at its maximum order.
func (f *BandShelf[S, PS]) Setup(sampleRate, centerFreq, widthFreq, gainDb, stopBandDb float64) error {
	return f.SetupOrder(f.maxOrder, sampleRate, centerFreq, widthFreq, gainDb, stopBandDb)
}

// SetupOrder designs the filter at order. On error the filter keeps its
// previous coefficients.
func (f *BandShelf[S, PS]) SetupOrder(order int, sampleRate, centerFreq, widthFreq, gainDb, stopBandDb float64) error {
	if err := f.BandShelfBase.Setup(order, sampleRate, centerFreq, widthFreq, gainDb, stopBandDb); err != nil {
		return err
	}

	f.cascade.SetLayout(f.digital)

	return nil
}

package chebyshev2

import "github.com/cwbudde/algo-iir/dsp/filter/iir"

// stage holds what every response shares: the reserved order, the effective
// order of the last successful design and the resulting digital layout.
type stage struct {
	maxOrder int
	order    int
	digital  *iir.Layout
}

func newStage(maxOrder, maxPoles int) stage {
	return stage{
		maxOrder: maxOrder,
		digital:  iir.NewLayout(maxPoles),
	}
}

// Order returns the effective order of the last successful design, or 0.
func (s *stage) Order() int { return s.order }

// MaxOrder returns the order reserved at construction.
func (s *stage) MaxOrder() int { return s.maxOrder }

// Layout returns the digital pole/zero layout of the last successful design.
func (s *stage) Layout() *iir.Layout { return s.digital }

func clampOrder(maxOrder int) int {
	if maxOrder < 1 {
		return 1
	}

	return maxOrder
}

// LowPassBase designs a lowpass layout.
type LowPassBase struct {
	stage
	analog *AnalogLowPass
}

// NewLowPassBase reserves a lowpass design of up to maxOrder poles.
// A maxOrder below 1 reserves order 1.
func NewLowPassBase(maxOrder int) *LowPassBase {
	maxOrder = clampOrder(maxOrder)

	return &LowPassBase{
		stage:  newStage(maxOrder, maxOrder),
		analog: NewAnalogLowPass(maxOrder),
	}
}

// Setup designs an order-pole lowpass with its half-power point at
// cutoffFreq. On error the previous layout is kept.
func (b *LowPassBase) Setup(order int, sampleRate, cutoffFreq, stopBandDb float64) error {
	if err := iir.ValidateOrder(order, b.maxOrder); err != nil {
		return err
	}

	if err := iir.ValidateFrequency(sampleRate, cutoffFreq); err != nil {
		return err
	}

	if err := b.analog.Design(order, stopBandDb); err != nil {
		return err
	}

	iir.LowPassTransform(b.digital, b.analog.Layout(), sampleRate, cutoffFreq)
	b.order = order

	return nil
}

// HighPassBase designs a highpass layout.
type HighPassBase struct {
	stage
	analog *AnalogLowPass
}

// NewHighPassBase reserves a highpass design of up to maxOrder poles.
// A maxOrder below 1 reserves order 1.
func NewHighPassBase(maxOrder int) *HighPassBase {
	maxOrder = clampOrder(maxOrder)

	return &HighPassBase{
		stage:  newStage(maxOrder, maxOrder),
		analog: NewAnalogLowPass(maxOrder),
	}
}

// Setup designs an order-pole highpass with its half-power point at
// cutoffFreq. On error the previous layout is kept.
func (b *HighPassBase) Setup(order int, sampleRate, cutoffFreq, stopBandDb float64) error {
	if err := iir.ValidateOrder(order, b.maxOrder); err != nil {
		return err
	}

	if err := iir.ValidateFrequency(sampleRate, cutoffFreq); err != nil {
		return err
	}

	if err := b.analog.Design(order, stopBandDb); err != nil {
		return err
	}

	iir.HighPassTransform(b.digital, b.analog.Layout(), sampleRate, cutoffFreq)
	b.order = order

	return nil
}

// BandPassBase designs a bandpass layout. An order N prototype yields 2N
// poles.
type BandPassBase struct {
	stage
	analog *AnalogLowPass
}

// NewBandPassBase reserves a bandpass design of up to maxOrder prototype
// poles.
// A maxOrder below 1 reserves order 1.
func NewBandPassBase(maxOrder int) *BandPassBase {
	maxOrder = clampOrder(maxOrder)

	return &BandPassBase{
		stage:  newStage(maxOrder, 2*maxOrder),
		analog: NewAnalogLowPass(maxOrder),
	}
}

// Setup designs a bandpass whose half-power edges are centerFreq ∓
// widthFreq/2. On error the previous layout is kept.
func (b *BandPassBase) Setup(order int, sampleRate, centerFreq, widthFreq, stopBandDb float64) error {
	if err := iir.ValidateOrder(order, b.maxOrder); err != nil {
		return err
	}

	if err := iir.ValidateBand(sampleRate, centerFreq, widthFreq, false); err != nil {
		return err
	}

	if err := b.analog.Design(order, stopBandDb); err != nil {
		return err
	}

	iir.BandPassTransform(b.digital, b.analog.Layout(), sampleRate, centerFreq, widthFreq)
	b.order = order

	return nil
}

// BandStopBase designs a bandstop layout. An order N prototype yields 2N
// poles.
type BandStopBase struct {
	stage
	analog *AnalogLowPass
}

// NewBandStopBase reserves a bandstop design of up to maxOrder prototype
// poles.
// A maxOrder below 1 reserves order 1.
func NewBandStopBase(maxOrder int) *BandStopBase {
	maxOrder = clampOrder(maxOrder)

	return &BandStopBase{
		stage:  newStage(maxOrder, 2*maxOrder),
		analog: NewAnalogLowPass(maxOrder),
	}
}

// Setup designs a bandstop whose half-power edges are centerFreq ∓
// widthFreq/2. widthFreq must be smaller than centerFreq. On error the
// previous layout is kept.
func (b *BandStopBase) Setup(order int, sampleRate, centerFreq, widthFreq, stopBandDb float64) error {
	if err := iir.ValidateOrder(order, b.maxOrder); err != nil {
		return err
	}

	if err := iir.ValidateBand(sampleRate, centerFreq, widthFreq, true); err != nil {
		return err
	}

	if err := b.analog.Design(order, stopBandDb); err != nil {
		return err
	}

	iir.BandStopTransform(b.digital, b.analog.Layout(), sampleRate, centerFreq, widthFreq)
	b.order = order

	return nil
}

// LowShelfBase designs a low-shelf layout.
type LowShelfBase struct {
	stage
	analog *AnalogLowShelf
}

// NewLowShelfBase reserves a low-shelf design of up to maxOrder poles.
// A maxOrder below 1 reserves order 1.
func NewLowShelfBase(maxOrder int) *LowShelfBase {
	maxOrder = clampOrder(maxOrder)

	return &LowShelfBase{
		stage:  newStage(maxOrder, maxOrder),
		analog: NewAnalogLowShelf(maxOrder),
	}
}

// Setup designs a low shelf with gainDb below cutoffFreq. On error the
// previous layout is kept.
func (b *LowShelfBase) Setup(order int, sampleRate, cutoffFreq, gainDb, stopBandDb float64) error {
	if err := iir.ValidateOrder(order, b.maxOrder); err != nil {
		return err
	}

	if err := iir.ValidateFrequency(sampleRate, cutoffFreq); err != nil {
		return err
	}

	if err := b.analog.Design(order, gainDb, stopBandDb); err != nil {
		return err
	}

	iir.LowPassTransform(b.digital, b.analog.Layout(), sampleRate, cutoffFreq)
	b.order = order

	return nil
}

// HighShelfBase designs a high-shelf layout.
type HighShelfBase struct {
	stage
	analog *AnalogLowShelf
}

// NewHighShelfBase reserves a high-shelf design of up to maxOrder poles.
// A maxOrder below 1 reserves order 1.
func NewHighShelfBase(maxOrder int) *HighShelfBase {
	maxOrder = clampOrder(maxOrder)

	return &HighShelfBase{
		stage:  newStage(maxOrder, maxOrder),
		analog: NewAnalogLowShelf(maxOrder),
	}
}

// Setup designs a high shelf with gainDb above cutoffFreq. On error the
// previous layout is kept.
func (b *HighShelfBase) Setup(order int, sampleRate, cutoffFreq, gainDb, stopBandDb float64) error {
	if err := iir.ValidateOrder(order, b.maxOrder); err != nil {
		return err
	}

	if err := iir.ValidateFrequency(sampleRate, cutoffFreq); err != nil {
		return err
	}

	if err := b.analog.Design(order, gainDb, stopBandDb); err != nil {
		return err
	}

	iir.HighPassTransform(b.digital, b.analog.Layout(), sampleRate, cutoffFreq)
	b.order = order

	return nil
}

// BandShelfBase designs a band-shelf layout. An order N prototype yields 2N
// poles.
type BandShelfBase struct {
	stage
	analog *AnalogLowShelf
}

// NewBandShelfBase reserves a band-shelf design of up to maxOrder prototype
// poles.
// A maxOrder below 1 reserves order 1.
func NewBandShelfBase(maxOrder int) *BandShelfBase {
	maxOrder = clampOrder(maxOrder)

	return &BandShelfBase{
		stage:  newStage(maxOrder, 2*maxOrder),
		analog: NewAnalogLowShelf(maxOrder),
	}
}

// Setup designs a band shelf with gainDb inside centerFreq ∓ widthFreq/2.
// On error the previous layout is kept.
func (b *BandShelfBase) Setup(order int, sampleRate, centerFreq, widthFreq, gainDb, stopBandDb float64) error {
	if err := iir.ValidateOrder(order, b.maxOrder); err != nil {
		return err
	}

	if err := iir.ValidateBand(sampleRate, centerFreq, widthFreq, false); err != nil {
		return err
	}

	if err := b.analog.Design(order, gainDb, stopBandDb); err != nil {
		return err
	}

	iir.BandPassTransform(b.digital, b.analog.Layout(), sampleRate, centerFreq, widthFreq)
	b.order = order

	return nil
}

// Package chebyshev2 designs Chebyshev Type II (inverse Chebyshev) IIR
// filters and runs them as cascades of biquad sections.
//
// The passband is maximally flat and the stopband is equiripple, never
// rising above -stopBandDb. The design follows the classic pipeline: an
// analog prototype ([AnalogLowPass] or [AnalogLowShelf]) is frequency
// transformed in the s-plane, discretized with the bilinear transform and
// decomposed into second-order sections.
//
// The cutoff frequency of the lowpass and highpass responses is the
// half-power point (-3.01 dB). Band responses place their half-power edges at
// centerFreq ∓ widthFreq/2. Shelving responses reach gainDb at DC (low
// shelf), Nyquist (high shelf) or the band center (band shelf).
//
// Filters reserve storage for a maximum order at construction and accept
// any effective order up to it at runtime without allocating:
//
//	lp := chebyshev2.NewLowPass[biquad.TransposedDirectFormII](8)
//	if err := lp.SetupOrder(4, 48000, 1000, 60); err != nil {
//		return err
//	}
//	lp.ProcessBlock(buf)
package chebyshev2

package iir

import "math"

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidateOrder checks 1 <= order <= reserved.
func ValidateOrder(order, reserved int) error {
	if order < 1 {
		return ErrInvalidOrder
	}

	if order > reserved {
		return ErrOrderCapacity
	}

	return nil
}

// ValidateStopBand checks that a stopband rejection is positive and that its
// power ratio minus one, 10^(stopBandDb/10) - 1, is a finite non-zero value.
// Rejections too small or too large for float64 would yield a degenerate
// ripple factor.
func ValidateStopBand(stopBandDb float64) error {
	if !finite(stopBandDb) || stopBandDb <= 0 {
		return ErrInvalidStopBand
	}

	if r := math.Pow(10, stopBandDb/10) - 1; r <= 0 || !finite(r) {
		return ErrInvalidStopBand
	}

	return nil
}

// ValidateGain checks that a shelf gain is finite and that its amplitude
// ratio 10^(gainDb/20) neither overflows nor underflows.
func ValidateGain(gainDb float64) error {
	if !finite(gainDb) {
		return ErrInvalidGain
	}

	if g := math.Pow(10, gainDb/20); g == 0 || !finite(g) {
		return ErrInvalidGain
	}

	return nil
}

// ValidateFrequency checks sampleRate > 0 and 0 < freq < sampleRate/2.
func ValidateFrequency(sampleRate, freq float64) error {
	if !finite(sampleRate) || sampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	if !finite(freq) || freq <= 0 || freq >= sampleRate*0.5 {
		return ErrInvalidFrequency
	}

	return nil
}

// ValidateBand checks a band definition: both band edges
// centerFreq ∓ widthFreq/2 must lie strictly inside (0, Nyquist).
// When stop is set, widthFreq must also be smaller than centerFreq.
func ValidateBand(sampleRate, centerFreq, widthFreq float64, stop bool) error {
	err := ValidateFrequency(sampleRate, centerFreq)
	if err != nil {
		return err
	}

	if !finite(widthFreq) || widthFreq <= 0 {
		return ErrInvalidWidth
	}

	if stop && widthFreq >= centerFreq {
		return ErrInvalidWidth
	}

	lo := centerFreq - widthFreq*0.5
	hi := centerFreq + widthFreq*0.5

	if lo <= 0 || hi >= sampleRate*0.5 {
		return ErrInvalidWidth
	}

	return nil
}

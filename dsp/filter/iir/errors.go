package iir

import "errors"

// ErrOrderCapacity is returned when the requested order exceeds the order
// reserved at construction.
var ErrOrderCapacity = errors.New("iir: requested order exceeds reserved order")

// ErrDomain is matched by every parameter domain error below.
var ErrDomain = errors.New("iir: parameter out of domain")

// Domain errors. Each of them also satisfies errors.Is(err, ErrDomain).
var (
	ErrInvalidOrder      error = domainError("iir: order must be at least 1")
	ErrInvalidSampleRate error = domainError("iir: sample rate must be positive and finite")
	ErrInvalidFrequency  error = domainError("iir: frequency must lie strictly between 0 and Nyquist")
	ErrInvalidWidth      error = domainError("iir: band width incompatible with center frequency")
	ErrInvalidStopBand   error = domainError("iir: stopband rejection must be positive and finite")
	ErrInvalidGain       error = domainError("iir: gain must be finite")
)

// domainError is a constant error string, so returning one never allocates.
type domainError string

func (e domainError) Error() string { return string(e) }

func (e domainError) Is(target error) bool { return target == ErrDomain }

// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// [Coefficients] describe one second-order section with a0 normalized to 1.
// The per-section delay line is supplied by an execution topology:
// [DirectFormI], [DirectFormII] or [TransposedDirectFormII]. A [Cascade]
// chains a fixed, reserved number of sections and is generic over the
// topology, so the choice is made at compile time:
//
//	c := biquad.NewCascade[biquad.TransposedDirectFormII](4)
//	c.SetLayout(layout) // digital pole/zero layout from dsp/filter/iir
//	y := c.ProcessSample(x)
//
// Coefficient design lives in dsp/filter/design.
package biquad

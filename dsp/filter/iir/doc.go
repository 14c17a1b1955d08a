// Package iir provides the pole/zero machinery shared by the recursive
// filter designers in dsp/filter/design.
//
// A [Layout] holds poles and zeros grouped into [PoleZeroPair] values, one per
// future cascade section, plus the frequency and gain used to normalize the
// final response. Layouts have a fixed capacity chosen at construction, so
// redesigning a filter never allocates.
//
// The transforms in this package map a normalized analog lowpass layout to a
// denormalized analog layout of the requested response type and then to the
// z-plane via the bilinear transform.
package iir

package iir

import (
	"math/cmplx"
)

// Infinity returns the complex infinity used to mark a zero (or pole) at
// s = ∞. The bilinear transform maps it to z = -1.
func Infinity() complex128 {
	return cmplx.Inf()
}

// PoleZeroPair stores the two poles and two zeros of one cascade section.
// For a single (first-order) pair the second pole and zero are 0.
type PoleZeroPair struct {
	Poles  [2]complex128
	Zeros  [2]complex128
	single bool
}

// IsSingle reports whether the pair holds only one real pole and zero.
func (p PoleZeroPair) IsSingle() bool {
	return p.single
}

// ConjugatePair returns a pair made of pole, zero and their conjugates.
func ConjugatePair(pole, zero complex128) PoleZeroPair {
	return PoleZeroPair{
		Poles: [2]complex128{pole, cmplx.Conj(pole)},
		Zeros: [2]complex128{zero, cmplx.Conj(zero)},
	}
}

// SinglePair returns a first-order pair holding one real pole and zero.
func SinglePair(pole, zero complex128) PoleZeroPair {
	return PoleZeroPair{
		Poles:  [2]complex128{pole, 0},
		Zeros:  [2]complex128{zero, 0},
		single: true,
	}
}

// Layout is an ordered, fixed-capacity collection of pole/zero pairs together
// with the normalization point of the response.
//
// NormalW is the radian frequency at which the magnitude equals NormalGain:
// rad/s for analog layouts, rad/sample for digital ones.
type Layout struct {
	pairs      []PoleZeroPair
	NormalW    float64
	NormalGain float64
}

// NewLayout returns an empty layout able to hold maxPoles poles.
func NewLayout(maxPoles int) *Layout {
	if maxPoles < 1 {
		maxPoles = 1
	}

	return &Layout{
		pairs:      make([]PoleZeroPair, 0, (maxPoles+1)/2),
		NormalGain: 1,
	}
}

// Reset empties the layout without releasing its storage.
func (l *Layout) Reset() {
	l.pairs = l.pairs[:0]
	l.NormalW = 0
	l.NormalGain = 1
}

// SetNormal sets the normalization frequency and gain.
func (l *Layout) SetNormal(w, gain float64) {
	l.NormalW = w
	l.NormalGain = gain
}

// Add appends a pair. It panics when the reserved capacity would be exceeded,
// since that can only happen through a design defect.
func (l *Layout) Add(p PoleZeroPair) {
	if len(l.pairs) == cap(l.pairs) {
		panic("iir: layout capacity exceeded")
	}

	l.pairs = append(l.pairs, p)
}

// AddConjugatePairs appends pole, zero and their conjugates as one pair.
func (l *Layout) AddConjugatePairs(pole, zero complex128) {
	l.Add(ConjugatePair(pole, zero))
}

// AddSingle appends a first-order pair with one real pole and zero.
func (l *Layout) AddSingle(pole, zero complex128) {
	l.Add(SinglePair(pole, zero))
}

// NumPairs returns the number of pairs currently stored.
func (l *Layout) NumPairs() int {
	return len(l.pairs)
}

// MaxPairs returns the reserved pair capacity.
func (l *Layout) MaxPairs() int {
	return cap(l.pairs)
}

// NumPoles returns the number of poles (a single pair counts once).
func (l *Layout) NumPoles() int {
	n := 0
	for i := range l.pairs {
		if l.pairs[i].single {
			n++
		} else {
			n += 2
		}
	}

	return n
}

// Pair returns the i-th pair.
func (l *Layout) Pair(i int) PoleZeroPair {
	return l.pairs[i]
}

// Pairs returns the stored pairs. The slice aliases the layout storage and is
// only valid until the next modification.
func (l *Layout) Pairs() []PoleZeroPair {
	return l.pairs
}

// CopyFrom replaces the content of l with src. It panics if src does not fit.
func (l *Layout) CopyFrom(src *Layout) {
	if len(src.pairs) > cap(l.pairs) {
		panic("iir: layout capacity exceeded")
	}

	l.pairs = l.pairs[:len(src.pairs)]
	copy(l.pairs, src.pairs)
	l.NormalW = src.NormalW
	l.NormalGain = src.NormalGain
}

// Poles appends every pole of the layout to dst and returns it.
func (l *Layout) Poles(dst []complex128) []complex128 {
	for _, p := range l.pairs {
		dst = append(dst, p.Poles[0])
		if !p.single {
			dst = append(dst, p.Poles[1])
		}
	}

	return dst
}

// Zeros appends every zero of the layout to dst and returns it.
func (l *Layout) Zeros(dst []complex128) []complex128 {
	for _, p := range l.pairs {
		dst = append(dst, p.Zeros[0])
		if !p.single {
			dst = append(dst, p.Zeros[1])
		}
	}

	return dst
}

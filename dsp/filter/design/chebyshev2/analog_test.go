package chebyshev2

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// analogResponse evaluates the unnormalized product of root factors at s = jw.
func analogResponse(l *iir.Layout, w float64) complex128 {
	s := complex(0, w)
	h := complex(1, 0)

	for _, p := range l.Pairs() {
		n := 2
		if p.IsSingle() {
			n = 1
		}

		for i := range n {
			if !cmplx.IsInf(p.Zeros[i]) {
				h *= s - p.Zeros[i]
			}

			h /= s - p.Poles[i]
		}
	}

	return h
}

// analogPower returns |H(jw)|² normalized to NormalGain at NormalW.
func analogPower(l *iir.Layout, w float64) float64 {
	ref := cmplx.Abs(analogResponse(l, l.NormalW))
	m := cmplx.Abs(analogResponse(l, w)) / ref * l.NormalGain

	return m * m
}

func TestAnalogLowPass_InvalidArguments(t *testing.T) {
	tests := []struct {
		name       string
		numPoles   int
		stopBandDb float64
		want       error
	}{
		{"zero order", 0, 40, iir.ErrInvalidOrder},
		{"negative order", -3, 40, iir.ErrInvalidOrder},
		{"above capacity", 9, 40, iir.ErrOrderCapacity},
		{"zero stopband", 4, 0, iir.ErrInvalidStopBand},
		{"negative stopband", 4, -10, iir.ErrInvalidStopBand},
		{"NaN stopband", 4, math.NaN(), iir.ErrInvalidStopBand},
		{"infinite stopband", 4, math.Inf(1), iir.ErrInvalidStopBand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnalogLowPass(8)
			if err := a.Design(tt.numPoles, tt.stopBandDb); !errors.Is(err, tt.want) {
				t.Fatalf("Design error = %v, want %v", err, tt.want)
			}

			if a.NumPoles() != 0 || a.Layout().NumPairs() != 0 {
				t.Fatal("failed design modified the prototype")
			}
		})
	}
}

func TestAnalogLowPass_Roots(t *testing.T) {
	for n := 1; n <= 10; n++ {
		a := NewAnalogLowPass(10)
		if err := a.Design(n, 40); err != nil {
			t.Fatalf("order %d: %v", n, err)
		}

		l := a.Layout()
		if got := l.NumPoles(); got != n {
			t.Fatalf("order %d: %d poles", n, got)
		}

		if got, want := l.NumPairs(), (n+1)/2; got != want {
			t.Fatalf("order %d: %d pairs, want %d", n, got, want)
		}

		for i, p := range l.Pairs() {
			if real(p.Poles[0]) >= 0 {
				t.Errorf("order %d pair %d: pole %v not in left half-plane", n, i, p.Poles[0])
			}

			if p.IsSingle() {
				if i != l.NumPairs()-1 {
					t.Errorf("order %d: single pair at %d, want last", n, i)
				}

				if imag(p.Poles[0]) != 0 || !cmplx.IsInf(p.Zeros[0]) {
					t.Errorf("order %d: single pair %v, want real pole and zero at infinity", n, p)
				}

				continue
			}

			if p.Poles[1] != cmplx.Conj(p.Poles[0]) || p.Zeros[1] != cmplx.Conj(p.Zeros[0]) {
				t.Errorf("order %d pair %d: roots not conjugate: %v", n, i, p)
			}

			if real(p.Zeros[0]) != 0 || imag(p.Zeros[0]) < a.StopBandEdge() {
				t.Errorf("order %d pair %d: zero %v not on the imaginary axis beyond the stopband edge %v",
					n, i, p.Zeros[0], a.StopBandEdge())
			}
		}

		if (n&1 == 1) != l.Pair(l.NumPairs()-1).IsSingle() {
			t.Errorf("order %d: odd order must end with exactly one single pair", n)
		}
	}
}

func TestAnalogLowPass_HalfPowerAndStopBand(t *testing.T) {
	for _, stop := range []float64{10, 40, 80} {
		for n := 1; n <= 8; n++ {
			a := NewAnalogLowPass(8)
			if err := a.Design(n, stop); err != nil {
				t.Fatal(err)
			}

			l := a.Layout()

			if dc := analogPower(l, 0); math.Abs(dc-1) > 1e-12 {
				t.Errorf("n=%d stop=%v: |H(0)|² = %v, want 1", n, stop, dc)
			}

			if hp := analogPower(l, 1); math.Abs(hp-0.5) > 1e-9 {
				t.Errorf("n=%d stop=%v: |H(j)|² = %v, want 0.5", n, stop, hp)
			}

			floor := math.Pow(10, -stop/10)
			edge := a.StopBandEdge()

			if got := analogPower(l, edge); math.Abs(got-floor)/floor > 1e-6 {
				t.Errorf("n=%d stop=%v: power at edge = %v, want %v", n, stop, got, floor)
			}

			for w := edge; w < 50*edge; w *= 1.07 {
				if got := analogPower(l, w); got > floor*(1+1e-6) {
					t.Fatalf("n=%d stop=%v: power %v at w=%v exceeds stopband %v", n, stop, got, w, floor)
				}
			}
		}
	}
}

func TestAnalogLowPass_ShallowStopBandKeepsUnitEdge(t *testing.T) {
	a := NewAnalogLowPass(4)
	if err := a.Design(4, 2); err != nil {
		t.Fatal(err)
	}

	if a.StopBandEdge() != 1 {
		t.Fatalf("StopBandEdge = %v, want 1 for a stopband above the half-power level", a.StopBandEdge())
	}
}

func TestAnalogLowPass_RepeatedDesignIsNoOp(t *testing.T) {
	a := NewAnalogLowPass(6)
	if err := a.Design(5, 60); err != nil {
		t.Fatal(err)
	}

	before := a.Layout().Poles(nil)

	// Tamper with the normal point: a memoized call must not recompute it.
	a.Layout().NormalGain = 2
	if err := a.Design(5, 60); err != nil {
		t.Fatal(err)
	}

	if a.Layout().NormalGain != 2 {
		t.Fatal("identical design recomputed the layout")
	}

	if err := a.Design(6, 60); err != nil {
		t.Fatal(err)
	}

	if a.Layout().NormalGain != 1 || a.Layout().NumPoles() != 6 {
		t.Fatal("changed design did not recompute the layout")
	}

	if len(before) != 5 {
		t.Fatalf("first design had %d poles, want 5", len(before))
	}
}

func TestAnalogLowShelf_ZeroGainIsFlat(t *testing.T) {
	for n := 1; n <= 6; n++ {
		a := NewAnalogLowShelf(6)
		if err := a.Design(n, 0, 20); err != nil {
			t.Fatal(err)
		}

		for i, p := range a.Layout().Pairs() {
			if p.Poles != p.Zeros {
				t.Errorf("order %d pair %d: zeros %v differ from poles %v", n, i, p.Zeros, p.Poles)
			}
		}
	}
}

func TestAnalogLowShelf_Response(t *testing.T) {
	for _, gainDb := range []float64{-12, -3, 6, 18} {
		for n := 1; n <= 6; n++ {
			const stop = 40

			a := NewAnalogLowShelf(6)
			if err := a.Design(n, gainDb, stop); err != nil {
				t.Fatal(err)
			}

			l := a.Layout()
			g2 := math.Pow(10, gainDb/10)

			if dc := analogPower(l, 0); math.Abs(dc-g2)/g2 > 1e-12 {
				t.Errorf("n=%d gain=%v: |H(0)|² = %v, want %v", n, gainDb, dc, g2)
			}

			if mid := analogPower(l, 1); math.Abs(mid-(1+g2)/2) > 1e-9*g2 {
				t.Errorf("n=%d gain=%v: |H(j)|² = %v, want %v", n, gainDb, mid, (1+g2)/2)
			}

			lp := NewAnalogLowPass(6)
			if err := lp.Design(n, stop); err != nil {
				t.Fatal(err)
			}

			bound := math.Abs(g2-1) * math.Pow(10, -stop/10)
			for w := lp.StopBandEdge(); w < 100; w *= 1.1 {
				if dev := math.Abs(analogPower(l, w) - 1); dev > bound*(1+1e-6) {
					t.Fatalf("n=%d gain=%v: deviation %v at w=%v exceeds %v", n, gainDb, dev, w, bound)
				}
			}
		}
	}
}

func TestAnalogLowShelf_InvalidArguments(t *testing.T) {
	a := NewAnalogLowShelf(4)

	if err := a.Design(2, math.Inf(-1), 20); !errors.Is(err, iir.ErrInvalidGain) {
		t.Fatalf("infinite gain: err = %v, want ErrInvalidGain", err)
	}

	if err := a.Design(2, math.NaN(), 20); !errors.Is(err, iir.ErrDomain) {
		t.Fatalf("NaN gain: err = %v, want ErrDomain", err)
	}

	if err := a.Design(5, 6, 20); !errors.Is(err, iir.ErrOrderCapacity) {
		t.Fatalf("order 5: err = %v, want ErrOrderCapacity", err)
	}

	if err := a.Design(2, 6, 0); !errors.Is(err, iir.ErrInvalidStopBand) {
		t.Fatalf("zero stopband: err = %v, want ErrInvalidStopBand", err)
	}

	if err := a.Design(2, 6, 3100); !errors.Is(err, iir.ErrInvalidStopBand) {
		t.Fatalf("overflowing stopband: err = %v, want ErrInvalidStopBand", err)
	}
}

func TestAnalogLowShelf_DegenerateRippleKeepsLayout(t *testing.T) {
	a := NewAnalogLowShelf(4)
	if err := a.Design(3, 6, 40); err != nil {
		t.Fatal(err)
	}

	before := append([]iir.PoleZeroPair(nil), a.Layout().Pairs()...)

	// Both values are valid alone; ε·G underflows to zero.
	if err := a.Design(3, -6000, 3000); !errors.Is(err, iir.ErrInvalidGain) {
		t.Fatalf("err = %v, want ErrInvalidGain", err)
	}

	after := a.Layout().Pairs()
	if len(after) != len(before) {
		t.Fatalf("pairs = %d, want %d", len(after), len(before))
	}

	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("pair %d changed: %v, want %v", i, after[i], before[i])
		}
	}
}

func TestAnalogLowPass_OverflowingStopBand(t *testing.T) {
	a := NewAnalogLowPass(4)

	if err := a.Design(4, 3100); !errors.Is(err, iir.ErrInvalidStopBand) {
		t.Fatalf("3100 dB: err = %v, want ErrInvalidStopBand", err)
	}

	if err := a.Design(4, 3000); err != nil {
		t.Fatalf("3000 dB: %v", err)
	}

	for _, p := range a.Layout().Pairs() {
		for _, r := range p.Poles {
			if cmplx.IsNaN(r) || cmplx.IsInf(r) {
				t.Fatalf("non-finite pole %v", r)
			}
		}
	}
}

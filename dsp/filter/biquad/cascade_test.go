package biquad

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-iir/dsp/filter/iir"
)

// twoSectionCoeffs returns two distinct stable biquad sections.
func twoSectionCoeffs() []Coefficients {
	return []Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.5, B1: -0.3, B2: 0.1, A1: -0.5, A2: 0.2},
	}
}

func TestNewCascade(t *testing.T) {
	c := NewCascade[TransposedDirectFormII](3)
	if c.MaxSections() != 3 {
		t.Fatalf("MaxSections = %d, want 3", c.MaxSections())
	}
	if c.NumSections() != 0 {
		t.Fatalf("NumSections = %d, want 0", c.NumSections())
	}
	if c.Gain() != 1 {
		t.Fatalf("Gain = %v, want 1", c.Gain())
	}
	if y := c.ProcessSample(0.7); y != 0.7 {
		t.Fatalf("empty cascade should pass through, got %v", y)
	}
}

func TestNewCascade_WithGain(t *testing.T) {
	c := NewCascade[DirectFormI](2, WithGain(0.5))
	if c.Gain() != 0.5 {
		t.Fatalf("Gain = %v, want 0.5", c.Gain())
	}
}

func TestCascade_ProcessSample_MatchesManualCascade(t *testing.T) {
	coeffs := twoSectionCoeffs()
	c := NewCascade[TransposedDirectFormII](4)
	c.SetCoefficients(coeffs, 1)

	var s1, s2 TransposedDirectFormII

	for i, x := range testInput() {
		want := s2.ProcessSample(s1.ProcessSample(x, &coeffs[0]), &coeffs[1])
		got := c.ProcessSample(x)
		if !almostEqual(got, want, eps) {
			t.Fatalf("sample %d: got %.15f, want %.15f", i, got, want)
		}
	}
}

func TestCascade_ProcessBlock_MatchesSample(t *testing.T) {
	coeffs := twoSectionCoeffs()
	ref := NewCascade[DirectFormII](2)
	ref.SetCoefficients(coeffs, 0.8)
	blk := NewCascade[DirectFormII](2)
	blk.SetCoefficients(coeffs, 0.8)

	in := testInput()
	buf := append([]float64(nil), in...)
	blk.ProcessBlock(buf)

	for i, x := range in {
		want := ref.ProcessSample(x)
		if !almostEqual(buf[i], want, eps) {
			t.Fatalf("sample %d: block %.15f, sample %.15f", i, buf[i], want)
		}
	}
}

func TestCascade_SetCoefficients_PreservesStateWhenSectionCountMatches(t *testing.T) {
	coeffs := twoSectionCoeffs()
	c := NewCascade[TransposedDirectFormII](2)
	c.SetCoefficients(coeffs, 1)
	c.ProcessSample(1)

	c.SetCoefficients(coeffs, 1)

	if y := c.ProcessSample(0); y == 0 {
		t.Fatal("state was cleared although the section count did not change")
	}
}

func TestCascade_SetCoefficients_DifferentSectionCountResetsState(t *testing.T) {
	coeffs := twoSectionCoeffs()
	c := NewCascade[TransposedDirectFormII](2)
	c.SetCoefficients(coeffs, 1)
	c.ProcessSample(1)

	c.SetCoefficients(coeffs[:1], 1)

	if y := c.ProcessSample(0); y != 0 {
		t.Fatalf("state survived a section count change: %v", y)
	}
}

func TestCascade_SetCoefficients_PanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()

	c := NewCascade[TransposedDirectFormII](1)
	c.SetCoefficients(twoSectionCoeffs(), 1)
}

func TestCascade_Reset(t *testing.T) {
	c := NewCascade[DirectFormI](2)
	c.SetCoefficients(twoSectionCoeffs(), 1)
	c.ProcessSample(1)
	c.ProcessSample(-0.5)
	c.Reset()

	if y := c.ProcessSample(0); y != 0 {
		t.Fatalf("output after Reset = %v, want 0", y)
	}
}

func TestCascade_OrderCountsFirstOrderOnce(t *testing.T) {
	c := NewCascade[TransposedDirectFormII](3)
	c.SetCoefficients([]Coefficients{
		{B0: 1, B1: 0.1, B2: 0.2, A1: -0.3, A2: 0.1},
		{B0: 1, B1: 1, A1: -0.5},
	}, 1)

	if c.Order() != 3 {
		t.Fatalf("Order = %d, want 3", c.Order())
	}
}

func TestCascade_SetLayout(t *testing.T) {
	p := complex(0.6, 0.3)
	l := iir.NewLayout(3)
	l.AddConjugatePairs(p, -1)
	l.AddSingle(0.4, -1)
	l.SetNormal(0, 1)

	c := NewCascade[TransposedDirectFormII](2)
	c.SetLayout(l)

	if c.NumSections() != 2 {
		t.Fatalf("NumSections = %d, want 2", c.NumSections())
	}

	s0 := c.Section(0)
	if !almostEqual(s0.A1, -2*real(p), eps) || !almostEqual(s0.A2, real(p*cmplx.Conj(p)), eps) {
		t.Fatalf("unexpected denominator %+v", s0)
	}
	if !almostEqual(s0.B1, 2, eps) || !almostEqual(s0.B2, 1, eps) {
		t.Fatalf("zeros at z=-1 expected, got %+v", s0)
	}

	s1 := c.Section(1)
	if !s1.IsFirstOrder() || !almostEqual(s1.A1, -0.4, eps) {
		t.Fatalf("unexpected first-order section %+v", s1)
	}

	if dc := cmplx.Abs(c.ResponseW(0)); !almostEqual(dc, 1, 1e-12) {
		t.Fatalf("|H(1)| = %v, want 1", dc)
	}
}

func TestCascade_SetLayout_NormalGain(t *testing.T) {
	l := iir.NewLayout(2)
	l.AddConjugatePairs(complex(-0.2, 0.5), complex(0, 1))
	l.SetNormal(math.Pi, 0.25)

	c := NewCascade[DirectFormII](1)
	c.SetLayout(l)

	if got := cmplx.Abs(c.ResponseW(math.Pi)); !almostEqual(got, 0.25, 1e-12) {
		t.Fatalf("|H(-1)| = %v, want 0.25", got)
	}
}

func TestCascade_SetLayout_PanicsOnOverflow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()

	l := iir.NewLayout(4)
	l.AddConjugatePairs(0.5i, -1)
	l.AddConjugatePairs(0.3i, -1)

	NewCascade[TransposedDirectFormII](1).SetLayout(l)
}

func TestCascade_SetLayout_DoesNotAllocate(t *testing.T) {
	l := iir.NewLayout(4)
	l.AddConjugatePairs(complex(0.5, 0.2), -1)
	l.AddConjugatePairs(complex(0.3, 0.1), -1)

	c := NewCascade[TransposedDirectFormII](2)

	allocs := testing.AllocsPerRun(100, func() {
		c.SetLayout(l)
	})
	if allocs != 0 {
		t.Fatalf("SetLayout allocated %.1f times per run", allocs)
	}
}

func BenchmarkCascade_ProcessSample(b *testing.B) {
	c := NewCascade[TransposedDirectFormII](2)
	c.SetCoefficients(twoSectionCoeffs(), 1)

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		c.ProcessSample(0.5)
	}
}

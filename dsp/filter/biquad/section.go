package biquad

import (
	"sync"

	archregistry "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
//	H(z) = (B0 + B1·z⁻¹ + B2·z⁻²) / (1 + A1·z⁻¹ + A2·z⁻²)
//
// A first-order section has B2 = A2 = 0.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// IsFirstOrder reports whether the section reduces to first order.
func (c *Coefficients) IsFirstOrder() bool {
	return c.B2 == 0 && c.A2 == 0
}

var (
	processBlockImpl     archregistry.ProcessBlockFn
	processBlockInitOnce sync.Once
)

func initProcessBlockKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no ProcessBlock kernel registered (missing generic fallback?)")
	}

	if entry.ProcessBlock == nil {
		panic("biquad: selected kernel missing ProcessBlock")
	}

	processBlockImpl = entry.ProcessBlock
}

// KernelName returns the name of the block kernel selected for this CPU.
func KernelName() string {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		return ""
	}

	return entry.Name
}

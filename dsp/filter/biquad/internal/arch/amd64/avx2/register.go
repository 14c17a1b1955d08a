//go:build amd64 && !purego

// Package avx2 registers the 4x-unrolled block kernel used on AVX2 CPUs.
package avx2

import (
	"github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "avx2",
		SIMDLevel:    cpu.SIMDAVX2,
		Priority:     20,
		ProcessBlock: processBlock,
	})
}

// processBlock runs four samples per iteration; the recursion stays serial,
// the unroll only removes loop overhead.
func processBlock(c registry.Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	n := len(buf)
	i := 0

	for ; i+3 < n; i += 4 {
		blk := buf[i : i+4 : i+4]
		for j, x := range blk {
			y := b0*x + d0
			d0 = b1*x - a1*y + d1
			d1 = b2*x - a2*y
			blk[j] = y
		}
	}

	for ; i < n; i++ {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	return d0, d1
}

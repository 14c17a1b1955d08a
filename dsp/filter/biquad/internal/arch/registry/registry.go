// Package registry holds the block kernels available to the biquad
// TransposedDirectFormII topology, keyed by the SIMD level they need.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients are biquad transfer coefficients (a0 normalized to 1).
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// ProcessBlockFn processes buf in-place with one biquad section and returns
// the updated delay-line state.
type ProcessBlockFn func(c Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64)

// OpEntry is one registered kernel.
type OpEntry struct {
	Name         string
	SIMDLevel    cpu.SIMDLevel
	Priority     int
	ProcessBlock ProcessBlockFn
}

// OpRegistry stores available kernels ordered by descending priority.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
}

// Global is the default biquad kernel registry, filled by init functions.
var Global = &OpRegistry{}

// Register adds a kernel, keeping entries sorted by priority.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := len(r.entries)
	for i > 0 && r.entries[i-1].Priority < entry.Priority {
		i--
	}

	r.entries = append(r.entries, OpEntry{})
	copy(r.entries[i+1:], r.entries[i:])
	r.entries[i] = entry
}

// Lookup returns the highest-priority kernel supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			return &r.entries[i]
		}
	}

	return nil
}

// Names lists the registered kernels in lookup order.
func (r *OpRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i := range r.entries {
		names[i] = r.entries[i].Name
	}

	return names
}

// Package registry provides the kernel registry for contiguous scans.
//
// Backend packages (generic, avx2, neon) register an OpEntry from init().
// The find package looks up the best entry for the running CPU once and
// uses its kernels for unit-stride views of the hot element types.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-find1st/internal/scan"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Kernel signatures. Each returns the first index i with s[i] <c> v, or
// scan.NotFound.
type (
	Float64Fn func(s []float64, c scan.Cmp, v float64) int
	Float32Fn func(s []float32, c scan.Cmp, v float32) int
	Int64Fn   func(s []int64, c scan.Cmp, v int64) int
	Uint8Fn   func(s []uint8, c scan.Cmp, v uint8) int
)

// OpEntry is one registered kernel set.
//
// Priority orders entries that are all supported by the CPU; the generic
// entry uses 0 and must populate every kernel.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	Float64 Float64Fn
	Float32 Float32Fn
	Int64   Int64Fn
	Uint8   Uint8Fn
}

// OpRegistry stores available kernel sets.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default scan kernel registry.
var Global = &OpRegistry{}

// Register adds an entry. Registrations are expected to complete during
// package initialization.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry supported by features, or nil
// if nothing compatible is registered.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// supports reports whether features can run kernels built for level.
// ForceGeneric restricts selection to SIMDNone.
func supports(features cpu.Features, level cpu.SIMDLevel) bool {
	if features.ForceGeneric {
		return level == cpu.SIMDNone
	}

	switch level {
	case cpu.SIMDNone:
		return true
	case cpu.SIMDSSE2:
		return features.HasSSE2
	case cpu.SIMDAVX2:
		return features.HasAVX2
	case cpu.SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

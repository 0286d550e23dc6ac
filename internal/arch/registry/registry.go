// Package registry provides the backend registry for the kernel packages.
//
// Each architecture package registers one entry describing the vector lane
// width it supports and the SIMD level required to use it. The kernel package
// selects the highest-priority entry compatible with the detected CPU features.
//
// Architecture-specific packages register themselves via init() functions,
// pulled in by the build-tagged init files of the kernel package.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-kernels/internal/lane"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// OpEntry represents one registered backend.
type OpEntry struct {
	// Name is a human-readable identifier (e.g., "avx2", "neon").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this backend.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible backends
	// exist. Higher priority wins. Suggested priorities:
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - NEON: 15
	//   - AVX2: 20
	Priority int

	// LaneWidth is the number of float32 lanes per vector operation.
	// Zero selects the scalar kernels.
	LaneWidth lane.Width
}

// Vectorized reports whether the entry selects lane-group kernels.
func (e OpEntry) Vectorized() bool {
	return e.LaneWidth != 0
}

// OpRegistry manages registration and lookup of backends.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance.
var Global = &OpRegistry{}

// Register adds a backend to the registry.
//
// Intended to be called from init(). Safe for concurrent use, but all
// registrations should complete before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	if entry.LaneWidth != 0 && !entry.LaneWidth.Valid() {
		panic("registry: invalid lane width for " + entry.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry compatible with features, or nil
// if none is (which should never happen once the generic backend is
// registered).
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
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Insertion sort; the registry holds a handful of entries.
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

// ListEntries returns a copy of all registered entries.
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

package registry

import (
	"testing"

	"github.com/cwbudde/algo-kernels/internal/lane"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func newTestRegistry() *OpRegistry {
	reg := &OpRegistry{}
	// Registered out of order to exercise sorting.
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20, LaneWidth: lane.Width8})
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10, LaneWidth: lane.Width4})
	reg.Register(OpEntry{Name: "neon", SIMDLevel: cpu.SIMDNEON, Priority: 15, LaneWidth: lane.Width4})
	return reg
}

func TestRegistryLookupPrefersHigherPriority(t *testing.T) {
	reg := newTestRegistry()

	tests := []struct {
		name      string
		features  cpu.Features
		wantName  string
		wantWidth lane.Width
	}{
		{"avx2", cpu.Features{HasSSE2: true, HasAVX2: true}, "avx2", lane.Width8},
		{"sse2 only", cpu.Features{HasSSE2: true}, "sse2", lane.Width4},
		{"neon", cpu.Features{HasNEON: true}, "neon", lane.Width4},
		{"no simd", cpu.Features{}, "generic", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.wantName {
				t.Fatalf("expected %q, got %q", tt.wantName, entry.Name)
			}
			if entry.LaneWidth != tt.wantWidth {
				t.Fatalf("expected width %d, got %d", tt.wantWidth, entry.LaneWidth)
			}
			if entry.Vectorized() != (tt.wantWidth != 0) {
				t.Fatalf("Vectorized() = %v for width %d", entry.Vectorized(), entry.LaneWidth)
			}
		})
	}
}

func TestRegistryLookupForceGeneric(t *testing.T) {
	reg := newTestRegistry()

	entry := reg.Lookup(cpu.Features{HasSSE2: true, HasAVX2: true, ForceGeneric: true})
	if entry == nil || entry.Name != "generic" {
		t.Fatalf("expected generic with ForceGeneric, got %#v", entry)
	}
}

func TestRegistryLookupEmpty(t *testing.T) {
	reg := &OpRegistry{}
	if entry := reg.Lookup(cpu.Features{HasAVX2: true}); entry != nil {
		t.Fatalf("expected nil from empty registry, got %#v", entry)
	}
}

func TestRegistryListAndReset(t *testing.T) {
	reg := newTestRegistry()

	entries := reg.ListEntries()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	// ListEntries returns a copy.
	entries[0].Name = "mutated"
	for _, e := range reg.ListEntries() {
		if e.Name == "mutated" {
			t.Fatal("ListEntries exposed internal storage")
		}
	}

	reg.Reset()
	if n := len(reg.ListEntries()); n != 0 {
		t.Fatalf("expected empty registry after Reset, got %d entries", n)
	}
}

func TestRegisterRejectsInvalidWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for lane width 3")
		}
	}()
	(&OpRegistry{}).Register(OpEntry{Name: "bogus", LaneWidth: 3})
}

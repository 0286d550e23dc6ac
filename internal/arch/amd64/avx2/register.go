//go:build amd64 && !purego

// Package avx2 registers the 256-bit (8 x float32) lane backend for amd64.
package avx2

import (
	"github.com/cwbudde/algo-kernels/internal/arch/registry"
	"github.com/cwbudde/algo-kernels/internal/lane"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// AVX2 is available on Intel Haswell (2013+) and AMD Excavator (2015+).
//
// Priority: 20 (preferred over SSE2 and generic when available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		LaneWidth: lane.Width8,
	})
}

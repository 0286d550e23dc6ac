//go:build arm64 && !purego

// Package neon registers the 128-bit (4 x float32) Advanced SIMD backend.
package neon

import (
	"github.com/cwbudde/algo-kernels/internal/arch/registry"
	"github.com/cwbudde/algo-kernels/internal/lane"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// NEON is mandatory on ARMv8.
//
// Priority: 15
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		LaneWidth: lane.Width4,
	})
}

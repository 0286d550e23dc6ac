//go:build amd64 && !purego

// Package sse2 registers the 128-bit (4 x float32) lane backend for amd64.
package sse2

import (
	"github.com/cwbudde/algo-kernels/internal/arch/registry"
	"github.com/cwbudde/algo-kernels/internal/lane"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// SSE2 is the x86-64 baseline, so this backend is always available on amd64
// unless generic kernels are forced.
//
// Priority: 10
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		LaneWidth: lane.Width4,
	})
}

// Package generic registers the scalar backend.
package generic

import (
	"github.com/cwbudde/algo-kernels/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the scalar kernels as the baseline fallback used when no
// SIMD level is available or when ForceGeneric is set.
//
// Priority: 0 (lowest)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
	})
}

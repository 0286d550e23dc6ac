//go:build arm64 && !purego

package kernel

import (
	_ "github.com/cwbudde/algo-kernels/internal/arch/arm64/neon" // register NEON backend
	_ "github.com/cwbudde/algo-kernels/internal/arch/generic"    // register generic backend
)

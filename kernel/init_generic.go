//go:build purego || !(amd64 || arm64)

package kernel

import (
	_ "github.com/cwbudde/algo-kernels/internal/arch/generic" // register generic backend
)

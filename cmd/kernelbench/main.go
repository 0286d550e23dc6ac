// Command kernelbench inspects, benchmarks and verifies the scalar and
// vectorized kernels on the running machine.
//
// Usage:
//
//	kernelbench info
//	kernelbench bench [elementwise|tensor|conv ...]
//	kernelbench verify [elementwise|tensor|conv ...]
//	kernelbench demo
//
// Settings come from kernelbench.yaml and KERNELBENCH_* environment
// variables; see internal/config.
package main

import (
	"os"

	"github.com/cwbudde/algo-kernels/cmd/kernelbench/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

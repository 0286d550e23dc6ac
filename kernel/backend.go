package kernel

import (
	"sync"

	"github.com/cwbudde/algo-kernels/internal/arch/registry"
	"github.com/cwbudde/algo-kernels/internal/lane"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Width is the number of float32 lanes per vector operation.
type Width = lane.Width

// Supported lane widths.
const (
	Width4 = lane.Width4
	Width8 = lane.Width8
)

// Backend describes the implementation selected for a set of CPU features.
type Backend struct {
	// Name is the registry name ("generic", "sse2", "avx2", "neon").
	Name string

	// Level is the SIMD level the backend requires.
	Level cpu.SIMDLevel

	// Width is the lane width, or zero for the scalar backend.
	Width Width
}

// Vectorized reports whether the backend uses lane-group kernels.
func (b Backend) Vectorized() bool {
	return b.Width != 0
}

// String returns "name/width", e.g. "avx2/x8" or "generic/scalar".
func (b Backend) String() string {
	if !b.Vectorized() {
		return b.Name + "/scalar"
	}
	return b.Name + "/" + b.Width.String()
}

// Lookup returns the best backend for features.
func Lookup(features cpu.Features) (Backend, error) {
	entry := registry.Global.Lookup(features)
	if entry == nil {
		return Backend{}, ErrNoBackend
	}
	return Backend{Name: entry.Name, Level: entry.SIMDLevel, Width: entry.LaneWidth}, nil
}

// Backends returns every registered backend in registration order.
func Backends() []Backend {
	entries := registry.Global.ListEntries()
	out := make([]Backend, len(entries))
	for i, e := range entries {
		out[i] = Backend{Name: e.Name, Level: e.SIMDLevel, Width: e.LaneWidth}
	}
	return out
}

var (
	selected     Backend
	selectedOnce sync.Once
)

// Selected returns the backend for the running CPU. The choice is made once,
// on first use, from cpu.DetectFeatures.
func Selected() Backend {
	selectedOnce.Do(initSelected)
	return selected
}

func initSelected() {
	b, err := Lookup(cpu.DetectFeatures())
	if err != nil {
		panic("kernel: no backend registered (missing generic fallback?)")
	}
	selected = b
}

// CheckWidth returns ErrInvalidWidth unless w is 4 or 8.
func CheckWidth(w Width) error {
	if !w.Valid() {
		return ErrInvalidWidth
	}
	return nil
}

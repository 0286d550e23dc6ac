package commands

import (
	"fmt"

	"github.com/cwbudde/algo-kernels/internal/config"
	"github.com/cwbudde/algo-kernels/kernel"
	"github.com/cwbudde/algo-kernels/kernel/conv"
	"github.com/cwbudde/algo-kernels/kernel/elementwise"
	"github.com/cwbudde/algo-kernels/kernel/tensor"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// family bundles one kernel per family for a single code path.
type family struct {
	elementwise elementwise.Kernel
	tensor      tensor.Kernel
	conv        conv.Kernel
}

// kernelSet holds the scalar and vector paths chosen for this run.
type kernelSet struct {
	backend  kernel.Backend
	features cpu.Features

	// width is the vector path's lane width. On the generic backend without
	// an override it is Width4, so comparisons still have a vector side.
	width kernel.Width

	// vectorized is true when the vector path is the selected one.
	vectorized bool

	scalar family
	vector family
}

// selected returns the path the package-level entry points would use.
func (ks kernelSet) selected() family {
	if ks.vectorized {
		return ks.vector
	}
	return ks.scalar
}

func selectKernels(kc config.KernelConfig) (kernelSet, error) {
	features := cpu.DetectFeatures()
	if kc.ForceGeneric {
		features.ForceGeneric = true
	}

	backend, err := kernel.Lookup(features)
	if err != nil {
		return kernelSet{}, err
	}

	ks := kernelSet{
		backend:    backend,
		features:   features,
		width:      backend.Width,
		vectorized: backend.Vectorized(),
		scalar: family{
			elementwise: elementwise.Scalar{},
			tensor:      tensor.Scalar{},
			conv:        conv.Scalar{},
		},
	}

	if kc.LaneWidth != 0 {
		ks.width = kernel.Width(kc.LaneWidth)
		ks.vectorized = true
	}
	if ks.width == 0 {
		ks.width = kernel.Width4
	}

	ev, err := elementwise.NewVector(ks.width)
	if err != nil {
		return kernelSet{}, fmt.Errorf("lane width %d: %w", ks.width, err)
	}
	tv, err := tensor.NewVector(ks.width)
	if err != nil {
		return kernelSet{}, fmt.Errorf("lane width %d: %w", ks.width, err)
	}
	cv, err := conv.NewVector(ks.width)
	if err != nil {
		return kernelSet{}, fmt.Errorf("lane width %d: %w", ks.width, err)
	}
	ks.vector = family{elementwise: ev, tensor: tv, conv: cv}

	return ks, nil
}

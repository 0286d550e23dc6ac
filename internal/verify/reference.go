package verify

import (
	"github.com/cwbudde/algo-kernels/kernel/elementwise"
	"github.com/cwbudde/algo-kernels/kernel/tensor"
	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/samber/lo"
)

func widen(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}

// ReferenceElementwise computes op(a[i], b[i]) in float64. a and b must have
// equal length.
func ReferenceElementwise(op elementwise.Op, a, b []float32) []float64 {
	a64, b64 := widen(a), widen(b)
	dst := make([]float64, len(a64))

	switch op {
	case elementwise.Add:
		copy(dst, a64)
		vecmath.AddBlockInPlace(dst, b64)
	case elementwise.Sub:
		vecmath.ScaleBlock(dst, b64, -1)
		vecmath.AddBlockInPlace(dst, a64)
	case elementwise.Mul:
		vecmath.MulBlock(dst, a64, b64)
	case elementwise.Div:
		// No block division in vecmath.
		for i := range dst {
			dst[i] = a64[i] / b64[i]
		}
	}
	return dst
}

// ReferenceTensor computes op(a, b) in float64 and returns it row-major.
// Div is not a tensor operation and yields nil.
func ReferenceTensor(op elementwise.Op, a, b tensor.Tensor) []float64 {
	switch op {
	case elementwise.Add, elementwise.Sub:
		return ReferenceElementwise(op, a.Flatten(), b.Flatten())
	case elementwise.Mul:
		return referenceMatMul(a, b)
	}
	return nil
}

func referenceMatMul(a, b tensor.Tensor) []float64 {
	bt := b.Transpose()
	dst := make([]float64, tensor.Size*tensor.Size)
	prod := make([]float64, tensor.Size)
	for i := 0; i < tensor.Size; i++ {
		row := widen(a[i][:])
		for j := 0; j < tensor.Size; j++ {
			vecmath.MulBlock(prod, row, widen(bt[j][:]))
			dst[i*tensor.Size+j] = lo.Sum(prod)
		}
	}
	return dst
}

// ReferenceConv computes the full linear convolution of x and h in float64 by
// scaled-and-shifted accumulation of h.
func ReferenceConv(x, h []float32) []float64 {
	if len(x) == 0 || len(h) == 0 {
		return nil
	}
	x64, h64 := widen(x), widen(h)
	m := len(h64)
	dst := make([]float64, len(x64)+m-1)
	tmp := make([]float64, m)
	for i, xi := range x64 {
		vecmath.ScaleBlock(tmp, h64, xi)
		vecmath.AddBlockInPlace(dst[i:i+m], tmp)
	}
	return dst
}

// Package tensor implements add, subtract, and multiply over fixed 4x4
// float32 tensors.
//
// The shape is part of the type, so there are no runtime shape errors. The
// [Vector] kernel loads tensor rows as lane groups; multiplication gathers the
// columns of the right operand into lane groups and computes each output
// element with one lanewise multiply and one horizontal reduction.
package tensor

import (
	"math"

	"github.com/cwbudde/algo-kernels/kernel"
)

// Size is the fixed tensor dimension.
const Size = 4

// Tensor is a row-major 4x4 grid of float32 values.
type Tensor [Size][Size]float32

// Identity returns the 4x4 identity tensor.
func Identity() Tensor {
	var t Tensor
	for i := 0; i < Size; i++ {
		t[i][i] = 1
	}
	return t
}

// Fill returns a tensor with every element set to v.
func Fill(v float32) Tensor {
	var t Tensor
	for i := range t {
		for j := range t[i] {
			t[i][j] = v
		}
	}
	return t
}

// Transpose returns the transpose of t.
func (t Tensor) Transpose() Tensor {
	var out Tensor
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			out[j][i] = t[i][j]
		}
	}
	return out
}

// Flatten returns the 16 elements in row-major order.
func (t Tensor) Flatten() []float32 {
	out := make([]float32, 0, Size*Size)
	for i := range t {
		out = append(out, t[i][:]...)
	}
	return out
}

// NearlyEqual reports whether every element of a and b differs by at most
// tol, relative to max(1, |b[i][j]|).
func NearlyEqual(a, b Tensor, tol float64) bool {
	for i := range a {
		for j := range a[i] {
			x, y := float64(a[i][j]), float64(b[i][j])
			if math.Abs(x-y) > tol*math.Max(1, math.Abs(y)) {
				return false
			}
		}
	}
	return true
}

// Kernel computes tensor operations into dst.
//
// dst may alias a or b.
type Kernel interface {
	Name() string
	Add(dst, a, b *Tensor)
	Sub(dst, a, b *Tensor)
	Mul(dst, a, b *Tensor)
}

// Scalar is the reference implementation.
type Scalar struct{}

// Name returns "scalar".
func (Scalar) Name() string { return "scalar" }

// Add sets dst = a + b.
func (Scalar) Add(dst, a, b *Tensor) {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			dst[i][j] = a[i][j] + b[i][j]
		}
	}
}

// Sub sets dst = a - b.
func (Scalar) Sub(dst, a, b *Tensor) {
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			dst[i][j] = a[i][j] - b[i][j]
		}
	}
}

// Mul sets dst to the matrix product a x b.
func (Scalar) Mul(dst, a, b *Tensor) {
	var out Tensor
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			var sum float32
			for k := 0; k < Size; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	*dst = out
}

// Default returns the kernel for the selected backend.
func Default() Kernel {
	b := kernel.Selected()
	if !b.Vectorized() {
		return Scalar{}
	}
	return Vector{width: b.Width}
}

// Add returns a + b using the default kernel.
func Add(a, b Tensor) Tensor {
	var c Tensor
	Default().Add(&c, &a, &b)
	return c
}

// Sub returns a - b using the default kernel.
func Sub(a, b Tensor) Tensor {
	var c Tensor
	Default().Sub(&c, &a, &b)
	return c
}

// Mul returns the matrix product a x b using the default kernel.
func Mul(a, b Tensor) Tensor {
	var c Tensor
	Default().Mul(&c, &a, &b)
	return c
}

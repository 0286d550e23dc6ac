// Package elementwise provides per-position binary arithmetic over float32
// sequences.
//
// Two kernels implement the same [Kernel] contract:
//
//   - [Scalar]: a plain per-index loop, the reference.
//   - [Vector]: processes floor(n/W)*W elements in W-wide lane groups and the
//     remaining n mod W elements with the scalar loop (the remainder tail).
//
// Both produce identical results for every index.
//
// # Usage
//
//	c, err := elementwise.Apply(elementwise.Add, a, b)
//
// or, with caller-owned output and an explicit kernel:
//
//	k, err := elementwise.NewVector(kernel.Width8)
//	err = k.ApplyTo(dst, a, b, elementwise.Div)
//
// Division by zero yields ±Inf or NaN per IEEE-754 and is not an error.
package elementwise

// Package conv provides direct one-dimensional linear convolution.
//
// For a signal x of length l1 and a response h of length l2 the result has
// length l1+l2-1:
//
//	y[n] = Σ x[k]·h[n-k]   over 0 <= k < l1 and 0 <= n-k < l2
//
// # Kernels
//
//   - [Scalar]: ascending-k multiply-accumulate for every output sample.
//   - [Vector]: batches the valid (x[k], h[n-k]) pairs of each output sample
//     into W-wide lane groups. Each full group is multiplied lanewise and
//     horizontally reduced into y[n]; a trailing partial group is zero-padded
//     and flushed the same way.
//
// The two kernels sum in different orders and agree within floating-point
// re-association tolerance, not bit for bit.
//
// # Usage
//
//	y, err := conv.Convolve(signal, response)
//
// With caller-owned output (at least OutputLen(len(x), len(h)) long; elements
// past that length are untouched):
//
//	y := make([]float32, conv.OutputLen(len(x), len(h)))
//	err := conv.ConvolveTo(y, x, h)
//
// Output trimming follows the usual full/same/valid modes:
//
//	same, err := conv.ConvolveMode(conv.Default(), x, h, conv.ModeSame)
package conv

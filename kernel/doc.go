// Package kernel holds what the kernel families share: the error taxonomy,
// the lane width capability, and backend selection.
//
// Three independent families live in sub-packages:
//
//   - elementwise: add, subtract, multiply, divide over float32 sequences
//   - tensor: add, subtract, multiply over fixed 4x4 tensors
//   - conv: direct linear convolution
//
// Every family offers a Scalar reference kernel and a Vector kernel built on
// fixed-width lane groups. Both satisfy the same interface and must agree
// within floating-point re-association tolerance.
//
// # Backend Selection
//
// The lane width is a capability of the target CPU: 8 lanes with AVX2,
// 4 lanes with SSE2 or NEON. [Selected] returns the backend chosen for the
// running process; each family's Default() builds its kernel from it:
//
//	b := kernel.Selected()
//	fmt.Println(b.Name, b.Width) // e.g. "avx2 x8"
//
// Building with the purego tag (or forcing generic CPU features) selects the
// scalar kernels.
//
// # Errors
//
// Precondition failures (length mismatches, empty inputs, undersized outputs)
// are returned as errors wrapping [ErrInvalidArgument]. Numeric anomalies
// such as division by zero are not errors: they follow IEEE-754 and appear in
// the result.
package kernel

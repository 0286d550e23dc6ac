package conv

import (
	"github.com/cwbudde/algo-kernels/internal/lane"
	"github.com/cwbudde/algo-kernels/kernel"
)

// Vector is the lane-group implementation.
type Vector struct {
	width lane.Width
}

// NewVector returns a Vector kernel with lane width w (4 or 8).
func NewVector(w kernel.Width) (Vector, error) {
	if err := kernel.CheckWidth(w); err != nil {
		return Vector{}, err
	}
	return Vector{width: w}, nil
}

// Width returns the lane width.
func (v Vector) Width() kernel.Width { return v.width }

// Name returns "vector/x4" or "vector/x8".
func (v Vector) Name() string { return "vector/" + v.width.String() }

// ConvolveTo implements Kernel. Each call allocates len(h) values of scratch;
// use ConvolveScratchTo to supply that storage.
func (v Vector) ConvolveTo(dst, x, h []float32) error {
	return v.ConvolveScratchTo(dst, x, h, nil)
}

// ConvolveScratchTo is ConvolveTo with caller-owned scratch. scratch is used
// when it holds at least len(h) values and is allocated otherwise; its
// contents are overwritten.
//
// The response is reversed once into scratch, rev[j] = h[l2-1-j], so that
// h[n-k] = rev[l2-1-n+k]. For a fixed n the valid pairs then occupy
// contiguous runs of x and rev, and lane.Dot can load them a group at a time,
// flushing the zero-padded partial group at the end of each run.
func (v Vector) ConvolveScratchTo(dst, x, h, scratch []float32) error {
	if err := kernel.CheckWidth(v.width); err != nil {
		return err
	}
	if err := validate(dst, x, h); err != nil {
		return err
	}

	l1, l2 := len(x), len(h)
	l := OutputLen(l1, l2)

	rev := scratch
	if len(rev) < l2 {
		rev = make([]float32, l2)
	}
	rev = rev[:l2]
	for j := range rev {
		rev[j] = h[l2-1-j]
	}

	for n := 0; n < l; n++ {
		lo, hi := span(n, l1, l2)
		count := hi - lo + 1
		off := l2 - 1 - n + lo
		dst[n] = lane.Dot(v.width, x[lo:lo+count], rev[off:off+count])
	}
	return nil
}

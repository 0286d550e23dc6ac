package tensor

import (
	"github.com/cwbudde/algo-kernels/internal/lane"
	"github.com/cwbudde/algo-kernels/kernel"
)

// Vector is the lane-group implementation. Each tensor row fills the first
// four lanes of a group; with 8 lanes the upper half stays zero.
//
// Build it with NewVector. The Kernel methods return no error, so the zero
// Vector panics when used.
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

func (v Vector) mustWidth() lane.Width {
	if !v.width.Valid() {
		panic("tensor: Vector used without NewVector")
	}
	return v.width
}

// Add sets dst = a + b, one row per lane group.
func (v Vector) Add(dst, a, b *Tensor) {
	w := v.mustWidth()
	for i := 0; i < Size; i++ {
		r := lane.LoadPartial(w, a[i][:]).Add(lane.LoadPartial(w, b[i][:]))
		r.StorePartial(dst[i][:])
	}
}

// Sub sets dst = a - b, one row per lane group.
func (v Vector) Sub(dst, a, b *Tensor) {
	w := v.mustWidth()
	for i := 0; i < Size; i++ {
		r := lane.LoadPartial(w, a[i][:]).Sub(lane.LoadPartial(w, b[i][:]))
		r.StorePartial(dst[i][:])
	}
}

// Mul sets dst to the matrix product a x b.
//
// Every output element is its own reduction: the row group of a times the
// column group of b, horizontally summed. No partial sums are shared between
// output elements.
func (v Vector) Mul(dst, a, b *Tensor) {
	w := v.mustWidth()

	var rows, cols [Size]lane.Group
	for i := 0; i < Size; i++ {
		rows[i] = lane.LoadPartial(w, a[i][:])
	}
	for j := 0; j < Size; j++ {
		cols[j] = lane.Zero(w)
		for k := 0; k < Size; k++ {
			cols[j].Set(k, b[k][j])
		}
	}

	var out Tensor
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			out[i][j] = rows[i].Mul(cols[j]).ReduceSum()
		}
	}
	*dst = out
}

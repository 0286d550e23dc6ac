package elementwise

import (
	"github.com/cwbudde/algo-kernels/internal/lane"
	"github.com/cwbudde/algo-kernels/kernel"
)

// Vector processes whole lane groups of width W and falls back to the scalar
// loop for the trailing n mod W elements.
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

// ApplyTo implements Kernel.
func (v Vector) ApplyTo(dst, a, b []float32, op Op) error {
	if err := kernel.CheckWidth(v.width); err != nil {
		return err
	}
	if err := validate(dst, a, b, op); err != nil {
		return err
	}

	n := len(a)
	w := v.width
	full := w.Floor(n)

	for i := 0; i < full; i += int(w) {
		ga := lane.Load(w, a[i:])
		gb := lane.Load(w, b[i:])

		var gc lane.Group
		switch op {
		case Add:
			gc = ga.Add(gb)
		case Sub:
			gc = ga.Sub(gb)
		case Mul:
			gc = ga.Mul(gb)
		case Div:
			gc = ga.Div(gb)
		}
		gc.Store(dst[i:])
	}

	// Remainder tail.
	applyScalar(dst[full:n], a[full:], b[full:], op)
	return nil
}

// Package verify checks kernel output against float64 references and reports
// the largest deviation along with any non-finite values in the output.
package verify

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-kernels/kernel/conv"
	"github.com/cwbudde/algo-kernels/kernel/elementwise"
	"github.com/cwbudde/algo-kernels/kernel/tensor"
)

// Kernel families.
const (
	FamilyElementwise = "elementwise"
	FamilyTensor      = "tensor"
	FamilyConv        = "conv"
)

// Families returns all family names in display order.
func Families() []string {
	return []string{FamilyElementwise, FamilyTensor, FamilyConv}
}

// ErrUnsupportedOp is returned when a family has no such operation.
var ErrUnsupportedOp = errors.New("verify: unsupported operation")

// Anomalies counts non-finite values in a kernel result.
type Anomalies struct {
	NaN    int
	PosInf int
	NegInf int
}

// Total returns the number of non-finite values.
func (a Anomalies) Total() int {
	return a.NaN + a.PosInf + a.NegInf
}

// String returns e.g. "nan=1 +inf=0 -inf=2".
func (a Anomalies) String() string {
	return fmt.Sprintf("nan=%d +inf=%d -inf=%d", a.NaN, a.PosInf, a.NegInf)
}

// Scan counts NaN and infinite values in xs.
func Scan(xs []float32) Anomalies {
	var a Anomalies
	for _, x := range xs {
		f := float64(x)
		switch {
		case math.IsNaN(f):
			a.NaN++
		case math.IsInf(f, 1):
			a.PosInf++
		case math.IsInf(f, -1):
			a.NegInf++
		}
	}
	return a
}

// Result summarizes one kernel run compared against its reference.
type Result struct {
	Family string
	Op     string
	Kernel string
	N      int

	// MaxAbsErr is max |got-want| over all outputs.
	MaxAbsErr float64

	// MaxRelErr is max |got-want| / max(1, |want|). Small references are
	// measured absolutely so that near-zero outputs do not dominate.
	MaxRelErr float64

	Anomalies Anomalies
}

// Within reports whether MaxRelErr is at most tol.
func (r Result) Within(tol float64) bool {
	return !math.IsNaN(r.MaxRelErr) && r.MaxRelErr <= tol
}

// Compare returns the largest absolute and scaled-relative errors between
// got and want. Non-finite values match when both sides agree (same infinity
// or both NaN); any other disagreement is an infinite error.
func Compare(got []float32, want []float64) (maxAbs, maxRel float64) {
	if len(got) != len(want) {
		return math.Inf(1), math.Inf(1)
	}
	for i, g := range got {
		gf, w := float64(g), want[i]
		if math.IsNaN(gf) || math.IsNaN(w) || math.IsInf(gf, 0) || math.IsInf(w, 0) {
			if sameNonFinite(gf, w) {
				continue
			}
			return math.Inf(1), math.Inf(1)
		}
		d := math.Abs(gf - w)
		maxAbs = math.Max(maxAbs, d)
		maxRel = math.Max(maxRel, d/math.Max(1, math.Abs(w)))
	}
	return maxAbs, maxRel
}

func sameNonFinite(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}

func newResult(family, op, kernel string, got []float32, want []float64) Result {
	r := Result{Family: family, Op: op, Kernel: kernel, N: len(got)}
	r.MaxAbsErr, r.MaxRelErr = Compare(got, want)
	r.Anomalies = Scan(got)
	return r
}

// Elementwise runs k on a and b and compares the output with the reference.
func Elementwise(k elementwise.Kernel, op elementwise.Op, a, b []float32) (Result, error) {
	got := make([]float32, len(a))
	if err := k.ApplyTo(got, a, b, op); err != nil {
		return Result{}, err
	}
	want := ReferenceElementwise(op, a, b)
	return newResult(FamilyElementwise, op.String(), k.Name(), got, want), nil
}

// Tensor runs op on a and b with k and compares the output with the
// reference. op must be Add, Sub or Mul.
func Tensor(k tensor.Kernel, op elementwise.Op, a, b tensor.Tensor) (Result, error) {
	var c tensor.Tensor
	switch op {
	case elementwise.Add:
		k.Add(&c, &a, &b)
	case elementwise.Sub:
		k.Sub(&c, &a, &b)
	case elementwise.Mul:
		k.Mul(&c, &a, &b)
	default:
		return Result{}, fmt.Errorf("%w: tensor %s", ErrUnsupportedOp, op)
	}
	want := ReferenceTensor(op, a, b)
	return newResult(FamilyTensor, op.String(), k.Name(), c.Flatten(), want), nil
}

// Conv runs k on x and h and compares the output with the reference.
func Conv(k conv.Kernel, x, h []float32) (Result, error) {
	got := make([]float32, conv.OutputLen(len(x), len(h)))
	if err := k.ConvolveTo(got, x, h); err != nil {
		return Result{}, err
	}
	want := ReferenceConv(x, h)
	return newResult(FamilyConv, "full", k.Name(), got, want), nil
}

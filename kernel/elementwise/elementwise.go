package elementwise

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-kernels/kernel"
)

// Errors returned by elementwise kernels. All wrap kernel.ErrInvalidArgument.
var (
	ErrLengthMismatch = kernel.Invalid("elementwise", "operand length mismatch")
	ErrShortOutput    = kernel.Invalid("elementwise", "output shorter than operands")
	ErrUnknownOp      = kernel.Invalid("elementwise", "unknown operation")
)

// Op selects the binary operation.
type Op int

const (
	// Add computes a[i] + b[i].
	Add Op = iota
	// Sub computes a[i] - b[i].
	Sub
	// Mul computes a[i] * b[i].
	Mul
	// Div computes a[i] / b[i].
	Div
)

var opNames = [...]string{Add: "add", Sub: "sub", Mul: "mul", Div: "div"}

// Ops returns all operations in declaration order.
func Ops() []Op {
	return []Op{Add, Sub, Mul, Div}
}

// Valid reports whether o is a known operation.
func (o Op) Valid() bool {
	return o >= Add && o <= Div
}

// String returns the short name ("add", "sub", "mul", "div").
func (o Op) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// ParseOp parses a short or long operation name, case-insensitively.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+":
		return Add, nil
	case "sub", "subtract", "-":
		return Sub, nil
	case "mul", "multiply", "*":
		return Mul, nil
	case "div", "divide", "/":
		return Div, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// Kernel computes dst[i] = op(a[i], b[i]) for i < len(a).
//
// a and b must have equal length and dst must be at least that long; elements
// of dst beyond len(a) are left untouched.
type Kernel interface {
	Name() string
	ApplyTo(dst, a, b []float32, op Op) error
}

func validate(dst, a, b []float32, op Op) error {
	if !op.Valid() {
		return ErrUnknownOp
	}
	if len(a) != len(b) {
		return ErrLengthMismatch
	}
	if len(dst) < len(a) {
		return ErrShortOutput
	}
	return nil
}

// Scalar is the reference per-index implementation.
type Scalar struct{}

// Name returns "scalar".
func (Scalar) Name() string { return "scalar" }

// ApplyTo implements Kernel.
func (Scalar) ApplyTo(dst, a, b []float32, op Op) error {
	if err := validate(dst, a, b, op); err != nil {
		return err
	}
	applyScalar(dst[:len(a)], a, b, op)
	return nil
}

// applyScalar is shared with the vector remainder tail. Lengths are
// pre-validated.
func applyScalar(dst, a, b []float32, op Op) {
	switch op {
	case Add:
		for i := range dst {
			dst[i] = a[i] + b[i]
		}
	case Sub:
		for i := range dst {
			dst[i] = a[i] - b[i]
		}
	case Mul:
		for i := range dst {
			dst[i] = a[i] * b[i]
		}
	case Div:
		for i := range dst {
			dst[i] = a[i] / b[i]
		}
	}
}

// Default returns the kernel for the selected backend: a Vector with the
// backend's lane width, or Scalar on the generic backend.
func Default() Kernel {
	b := kernel.Selected()
	if !b.Vectorized() {
		return Scalar{}
	}
	return Vector{width: b.Width}
}

// ApplyTo computes op into dst with the default kernel.
func ApplyTo(dst, a, b []float32, op Op) error {
	return Default().ApplyTo(dst, a, b, op)
}

// Apply computes op into a newly allocated slice of length len(a).
func Apply(op Op, a, b []float32) ([]float32, error) {
	if err := validate(a, a, b, op); err != nil {
		return nil, err
	}
	dst := make([]float32, len(a))
	if err := ApplyTo(dst, a, b, op); err != nil {
		return nil, err
	}
	return dst, nil
}

package conv

import (
	"github.com/cwbudde/algo-kernels/kernel"
)

// Errors returned by convolution functions. All wrap kernel.ErrInvalidArgument.
var (
	ErrEmptyInput    = kernel.Invalid("conv", "empty input")
	ErrEmptyResponse = kernel.Invalid("conv", "empty response")
	ErrShortOutput   = kernel.Invalid("conv", "output shorter than len(x)+len(h)-1")
)

// OutputLen returns the full linear convolution length l1+l2-1, or 0 if
// either length is not positive.
func OutputLen(l1, l2 int) int {
	if l1 <= 0 || l2 <= 0 {
		return 0
	}
	return l1 + l2 - 1
}

// Kernel writes the full linear convolution of x and h into
// dst[:OutputLen(len(x), len(h))].
type Kernel interface {
	Name() string
	ConvolveTo(dst, x, h []float32) error
}

func validate(dst, x, h []float32) error {
	if len(x) == 0 {
		return ErrEmptyInput
	}
	if len(h) == 0 {
		return ErrEmptyResponse
	}
	if len(dst) < OutputLen(len(x), len(h)) {
		return ErrShortOutput
	}
	return nil
}

// span returns the inclusive range of signal indices k that contribute to
// y[n]: both 0 <= k < l1 and 0 <= n-k < l2 hold.
func span(n, l1, l2 int) (lo, hi int) {
	lo = n - l2 + 1
	if lo < 0 {
		lo = 0
	}
	hi = n
	if hi > l1-1 {
		hi = l1 - 1
	}
	return lo, hi
}

// Scalar is the reference implementation.
type Scalar struct{}

// Name returns "scalar".
func (Scalar) Name() string { return "scalar" }

// ConvolveTo implements Kernel.
func (Scalar) ConvolveTo(dst, x, h []float32) error {
	if err := validate(dst, x, h); err != nil {
		return err
	}

	l1, l2 := len(x), len(h)
	l := OutputLen(l1, l2)

	for n := 0; n < l; n++ {
		lo, hi := span(n, l1, l2)
		var sum float32
		for k := lo; k <= hi; k++ {
			sum += x[k] * h[n-k]
		}
		dst[n] = sum
	}
	return nil
}

// Default returns the kernel for the selected backend.
func Default() Kernel {
	b := kernel.Selected()
	if !b.Vectorized() {
		return Scalar{}
	}
	return Vector{width: b.Width}
}

// ConvolveTo convolves x and h into dst with the default kernel.
func ConvolveTo(dst, x, h []float32) error {
	return Default().ConvolveTo(dst, x, h)
}

// Convolve returns the full linear convolution of x and h in a new slice of
// length len(x)+len(h)-1.
func Convolve(x, h []float32) ([]float32, error) {
	return convolveWith(Default(), x, h)
}

func convolveWith(k Kernel, x, h []float32) ([]float32, error) {
	dst := make([]float32, OutputLen(len(x), len(h)))
	if err := k.ConvolveTo(dst, x, h); err != nil {
		return nil, err
	}
	return dst, nil
}

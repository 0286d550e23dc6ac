package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-kernels/kernel"
	"github.com/cwbudde/algo-kernels/kernel/conv"
)

func ExampleConvolve() {
	y, err := conv.Convolve([]float32{1, 1, 1}, []float32{1, 1, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(y)
	// Output: [1 2 3 2 1]
}

func ExampleVector_ConvolveTo() {
	k, err := conv.NewVector(kernel.Width4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	x := []float32{1, 2, 3}
	h := []float32{0, 1}
	y := make([]float32, conv.OutputLen(len(x), len(h)))
	if err := k.ConvolveTo(y, x, h); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(y)
	// Output: [0 1 2 3]
}

func ExampleConvolveMode() {
	x := []float32{1, 2, 3, 4, 5}
	h := []float32{1, 0, -1}

	valid, err := conv.ConvolveMode(conv.Scalar{}, x, h, conv.ModeValid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(valid)
	// Output: [2 2 2]
}

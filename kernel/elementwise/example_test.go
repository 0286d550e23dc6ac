package elementwise_test

import (
	"fmt"

	"github.com/cwbudde/algo-kernels/kernel"
	"github.com/cwbudde/algo-kernels/kernel/elementwise"
)

func ExampleApply() {
	a := []float32{1, 2, 3, 4, 5, 6, 7}
	b := []float32{7, 6, 5, 4, 3, 2, 1}

	c, err := elementwise.Apply(elementwise.Add, a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c)
	// Output: [8 8 8 8 8 8 8]
}

func ExampleVector_ApplyTo() {
	k, err := elementwise.NewVector(kernel.Width4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	dst := make([]float32, 5)
	if err := k.ApplyTo(dst, []float32{2, 4, 6, 8, 10}, []float32{2, 2, 2, 2, 4}, elementwise.Div); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(k.Name(), dst)
	// Output: vector/x4 [1 2 3 4 2.5]
}

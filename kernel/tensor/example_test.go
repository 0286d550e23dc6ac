package tensor_test

import (
	"fmt"

	"github.com/cwbudde/algo-kernels/kernel"
	"github.com/cwbudde/algo-kernels/kernel/tensor"
)

func ExampleMul() {
	a := tensor.Fill(1)
	b := tensor.Fill(1)
	fmt.Println(tensor.Mul(a, b)[0])
	// Output: [4 4 4 4]
}

func ExampleVector_Mul() {
	k, err := tensor.NewVector(kernel.Width4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	a := tensor.Tensor{{1, 2, 3, 4}, {2, 3, 4, 5}, {3, 4, 5, 6}, {4, 5, 6, 7}}
	id := tensor.Identity()

	var c tensor.Tensor
	k.Mul(&c, &a, &id)
	fmt.Println(c == a)
	// Output: true
}

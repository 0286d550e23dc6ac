package commands

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-kernels/internal/signal"
	"github.com/cwbudde/algo-kernels/kernel/conv"
	"github.com/cwbudde/algo-kernels/kernel/elementwise"
	"github.com/cwbudde/algo-kernels/kernel/tensor"
	"github.com/spf13/cobra"
)

// demoLen is the number of elementwise samples shown.
const demoLen = 9

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print scalar and vector results side by side on fixed inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), opts.kernels)
		},
	}
}

func runDemo(out io.Writer, ks kernelSet) error {
	if err := demoElementwise(out, ks); err != nil {
		return err
	}
	if err := demoTensorMul(out, ks); err != nil {
		return err
	}
	return demoConv(out, ks)
}

// demoTensor is the ramp matrix A[i][j] = i+j+1.
func demoTensor() tensor.Tensor {
	var t tensor.Tensor
	for i := range t {
		for j := range t[i] {
			t[i][j] = float32(i + j + 1)
		}
	}
	return t
}

// demoSignal is 1,2,3,4 repeated four times.
func demoSignal() []float32 {
	x := make([]float32, 0, 16)
	for i := 0; i < 4; i++ {
		x = append(x, 1, 2, 3, 4)
	}
	return x
}

func demoElementwise(out io.Writer, ks kernelSet) error {
	a := signal.Ramp(0.9, demoLen)
	b := signal.Ramp(0.6, demoLen)
	s := make([]float32, demoLen)
	v := make([]float32, demoLen)

	heading(out, "elementwise", fmt.Sprintf("(n=%d, %s)", demoLen, ks.vector.elementwise.Name()))
	tw := newTable(out)
	fmt.Fprintln(tw, "OP\tI\tA\tB\tSCALAR\tVECTOR")
	for _, op := range elementwise.Ops() {
		if err := ks.scalar.elementwise.ApplyTo(s, a, b, op); err != nil {
			return err
		}
		if err := ks.vector.elementwise.ApplyTo(v, a, b, op); err != nil {
			return err
		}
		for i := range s {
			fmt.Fprintf(tw, "%s\t%d\t%g\t%g\t%g\t%g\n", op, i, a[i], b[i], s[i], v[i])
		}
	}
	return tw.Flush()
}

func demoTensorMul(out io.Writer, ks kernelSet) error {
	a := demoTensor()
	var s, v tensor.Tensor
	ks.scalar.tensor.Mul(&s, &a, &a)
	ks.vector.tensor.Mul(&v, &a, &a)

	heading(out, "tensor", fmt.Sprintf("A x A (%s)", ks.vector.tensor.Name()))
	tw := newTable(out)
	fmt.Fprintln(tw, "ROW\tSCALAR\tVECTOR")
	for i := range s {
		fmt.Fprintf(tw, "%d\t%v\t%v\n", i, s[i], v[i])
	}
	return tw.Flush()
}

func demoConv(out io.Writer, ks kernelSet) error {
	x := demoSignal()
	h := []float32{1, 2, 3, 4}
	n := conv.OutputLen(len(x), len(h))
	s := make([]float32, n)
	v := make([]float32, n)
	if err := ks.scalar.conv.ConvolveTo(s, x, h); err != nil {
		return err
	}
	if err := ks.vector.conv.ConvolveTo(v, x, h); err != nil {
		return err
	}

	heading(out, "conv", fmt.Sprintf("(x=%d, h=%d, %s)", len(x), len(h), ks.vector.conv.Name()))
	tw := newTable(out)
	fmt.Fprintln(tw, "N\tSCALAR\tVECTOR")
	for i := range s {
		fmt.Fprintf(tw, "%d\t%g\t%g\n", i, s[i], v[i])
	}
	return tw.Flush()
}

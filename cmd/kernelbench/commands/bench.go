package commands

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-kernels/internal/bench"
	"github.com/cwbudde/algo-kernels/internal/config"
	"github.com/cwbudde/algo-kernels/internal/logging"
	"github.com/cwbudde/algo-kernels/internal/signal"
	"github.com/cwbudde/algo-kernels/internal/verify"
	"github.com/cwbudde/algo-kernels/kernel/conv"
	"github.com/cwbudde/algo-kernels/kernel/elementwise"
	"github.com/cwbudde/algo-kernels/kernel/tensor"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// tensorBatch is how many 4x4 operations one timed tensor call performs;
// a single one is too short to time.
const tensorBatch = 1000

func newBenchCmd(opts *options) *cobra.Command {
	var iterations int

	cmd := &cobra.Command{
		Use:   "bench [family ...]",
		Short: "Time the scalar and vector paths and report the uplift",
		Long: `Time the scalar and vector kernels for each family and print the
uplift, scalar time as a percentage of vector time. Families are
elementwise, tensor and conv; all run when none are named.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			families, err := parseFamilies(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("iterations") {
				if iterations < 1 {
					return fmt.Errorf("--iterations must be at least 1")
				}
				opts.cfg.Bench.Iterations = iterations
			}
			return runBench(cmd.OutOrStdout(), opts, families)
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "n", 0, "iterations per measurement (overrides bench.iterations)")
	return cmd
}

func runBench(out io.Writer, opts *options, families []string) error {
	bc := opts.cfg.Bench
	ks := opts.kernels

	if !ks.vectorized {
		logging.Warnf("backend %s has no lane groups; vector timings run the emulated %s path",
			ks.backend, ks.width)
	}

	for _, fam := range families {
		logging.Debugf("benchmarking %s, %d iterations", fam, bc.Iterations)
		var (
			rows []bench.Comparison
			err  error
		)
		switch fam {
		case verify.FamilyElementwise:
			heading(out, fam, fmt.Sprintf("(n=%d, %s)", bc.ElementwiseLen, ks.width))
			rows, err = benchElementwise(bc, ks)
		case verify.FamilyTensor:
			heading(out, fam, fmt.Sprintf("(4x4, batch=%d, %s)", tensorBatch, ks.width))
			rows = benchTensor(bc, ks)
		case verify.FamilyConv:
			heading(out, fam, fmt.Sprintf("(x=%d, h=%d, %s)", bc.SignalLen, bc.ResponseLen, ks.width))
			rows, err = benchConv(bc, ks)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", fam, err)
		}

		tw := newTable(out)
		fmt.Fprintln(tw, "OP\tSCALAR\tVECTOR\tUPLIFT")
		for _, c := range rows {
			fmt.Fprintf(tw, "%s\t%v\t%v\t%.1f%%\n", c.Name, c.Scalar, c.Vector, c.Uplift())
			logging.WithFields(logrus.Fields{
				"family":  fam,
				"op":      c.Name,
				"speedup": c.Speedup(),
			}).Debug("benchmark done")
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func benchElementwise(bc config.BenchConfig, ks kernelSet) ([]bench.Comparison, error) {
	a := signal.Ramp(0.9, bc.ElementwiseLen)
	b := signal.Ramp(0.6, bc.ElementwiseLen)
	dst := make([]float32, bc.ElementwiseLen)

	var rows []bench.Comparison
	for _, op := range elementwise.Ops() {
		// Validate once so the timed loops can ignore errors.
		if err := ks.vector.elementwise.ApplyTo(dst, a, b, op); err != nil {
			return nil, err
		}
		rows = append(rows, bench.Compare(op.String(), bc.Iterations,
			func() { _ = ks.scalar.elementwise.ApplyTo(dst, a, b, op) },
			func() { _ = ks.vector.elementwise.ApplyTo(dst, a, b, op) },
		))
	}
	return rows, nil
}

func benchTensor(bc config.BenchConfig, ks kernelSet) []bench.Comparison {
	a := demoTensor()
	b := tensor.Identity()
	var c tensor.Tensor

	batch := func(fn func(dst, a, b *tensor.Tensor)) func() {
		return func() {
			for i := 0; i < tensorBatch; i++ {
				fn(&c, &a, &b)
			}
		}
	}

	return []bench.Comparison{
		bench.Compare("add", bc.Iterations, batch(ks.scalar.tensor.Add), batch(ks.vector.tensor.Add)),
		bench.Compare("sub", bc.Iterations, batch(ks.scalar.tensor.Sub), batch(ks.vector.tensor.Sub)),
		bench.Compare("mul", bc.Iterations, batch(ks.scalar.tensor.Mul), batch(ks.vector.tensor.Mul)),
	}
}

func benchConv(bc config.BenchConfig, ks kernelSet) ([]bench.Comparison, error) {
	x := input(bc, 0, bc.SignalLen)
	h := input(bc, 1, bc.ResponseLen)
	dst := make([]float32, conv.OutputLen(len(x), len(h)))

	if err := ks.vector.conv.ConvolveTo(dst, x, h); err != nil {
		return nil, err
	}
	return []bench.Comparison{
		bench.Compare("full", bc.Iterations,
			func() { _ = ks.scalar.conv.ConvolveTo(dst, x, h) },
			func() { _ = ks.vector.conv.ConvolveTo(dst, x, h) },
		),
	}, nil
}

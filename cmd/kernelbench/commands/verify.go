package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-kernels/internal/config"
	"github.com/cwbudde/algo-kernels/internal/logging"
	"github.com/cwbudde/algo-kernels/internal/verify"
	"github.com/cwbudde/algo-kernels/kernel/elementwise"
	"github.com/cwbudde/algo-kernels/kernel/tensor"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errToleranceExceeded is returned when any check is outside tolerance, so
// the process exits non-zero.
var errToleranceExceeded = errors.New("tolerance exceeded")

func newVerifyCmd(opts *options) *cobra.Command {
	var tolerance float64

	cmd := &cobra.Command{
		Use:   "verify [family ...]",
		Short: "Compare both paths against a float64 reference",
		Long: `Run the scalar and vector kernels on seeded random inputs and compare
each output with a float64 reference. Errors are measured relative to
max(1, |reference|). Exits non-zero when any check exceeds the tolerance.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			families, err := parseFamilies(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("tolerance") {
				if tolerance <= 0 {
					return fmt.Errorf("--tolerance must be positive")
				}
				opts.cfg.Verify.Tolerance = tolerance
			}
			return runVerify(cmd.OutOrStdout(), opts, families)
		},
	}

	cmd.Flags().Float64VarP(&tolerance, "tolerance", "t", 0, "maximum scaled error (overrides verify.tolerance)")
	return cmd
}

func runVerify(out io.Writer, opts *options, families []string) error {
	tol := opts.cfg.Verify.Tolerance

	var results []verify.Result
	for _, fam := range families {
		rs, err := verifyFamily(fam, opts.cfg.Bench, opts.kernels)
		if err != nil {
			return fmt.Errorf("%s: %w", fam, err)
		}
		results = append(results, rs...)
	}

	tw := newTable(out)
	fmt.Fprintln(tw, "FAMILY\tOP\tKERNEL\tN\tMAX ABS\tMAX REL\tANOMALIES\tSTATUS")
	for _, r := range results {
		status := "ok"
		if !r.Within(tol) {
			status = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.3g\t%.3g\t%d\t%s\n",
			r.Family, r.Op, r.Kernel, r.N, r.MaxAbsErr, r.MaxRelErr, r.Anomalies.Total(), status)

		if r.Anomalies.Total() > 0 {
			logging.WithFields(logrus.Fields{
				"family": r.Family,
				"op":     r.Op,
				"kernel": r.Kernel,
			}).Warnf("non-finite output: %s", r.Anomalies)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	failed := lo.CountBy(results, func(r verify.Result) bool { return !r.Within(tol) })
	if failed > 0 {
		logging.Errorf("verification failed: %d of %d checks above %g", failed, len(results), tol)
		return fmt.Errorf("%w: %d of %d checks above %g", errToleranceExceeded, failed, len(results), tol)
	}
	fmt.Fprintf(out, "\nall %d checks within %g\n", len(results), tol)
	return nil
}

func verifyFamily(fam string, bc config.BenchConfig, ks kernelSet) ([]verify.Result, error) {
	paths := []family{ks.scalar, ks.vector}
	var results []verify.Result

	switch fam {
	case verify.FamilyElementwise:
		a := input(bc, 0, bc.ElementwiseLen)
		b := input(bc, 1, bc.ElementwiseLen)
		for _, op := range elementwise.Ops() {
			for _, p := range paths {
				r, err := verify.Elementwise(p.elementwise, op, a, b)
				if err != nil {
					return nil, err
				}
				results = append(results, r)
			}
		}

	case verify.FamilyTensor:
		a := inputTensor(bc, 0)
		b := inputTensor(bc, 1)
		for _, op := range tensorOps {
			for _, p := range paths {
				r, err := verify.Tensor(p.tensor, op, a, b)
				if err != nil {
					return nil, err
				}
				results = append(results, r)
			}
		}

	case verify.FamilyConv:
		x := input(bc, 0, bc.SignalLen)
		h := input(bc, 1, bc.ResponseLen)
		for _, p := range paths {
			r, err := verify.Conv(p.conv, x, h)
			if err != nil {
				return nil, err
			}
			results = append(results, r)
		}
	}

	return results, nil
}

func inputTensor(bc config.BenchConfig, offset int64) tensor.Tensor {
	var t tensor.Tensor
	vals := input(bc, offset, tensor.Size*tensor.Size)
	for i := range t {
		copy(t[i][:], vals[i*tensor.Size:(i+1)*tensor.Size])
	}
	return t
}

package commands

import (
	"fmt"

	"github.com/cwbudde/algo-kernels/kernel"
	"github.com/spf13/cobra"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show CPU features and the selected backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, opts)
		},
	}
}

func runInfo(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()
	ks := opts.kernels

	tw := newTable(out)
	fmt.Fprintf(tw, "Architecture:\t%s\n", ks.features.Architecture)
	fmt.Fprintf(tw, "SSE2:\t%v\n", ks.features.HasSSE2)
	fmt.Fprintf(tw, "AVX2:\t%v\n", ks.features.HasAVX2)
	fmt.Fprintf(tw, "NEON:\t%v\n", ks.features.HasNEON)
	fmt.Fprintf(tw, "Forced generic:\t%v\n", ks.features.ForceGeneric)
	fmt.Fprintf(tw, "Backend:\t%s\n", ks.backend)
	fmt.Fprintf(tw, "Vector width:\t%s\n", ks.width)
	fmt.Fprintf(tw, "Default path:\t%s\n", ks.selected().elementwise.Name())
	if err := tw.Flush(); err != nil {
		return err
	}

	heading(out, "registered backends", "")
	tw = newTable(out)
	fmt.Fprintln(tw, "NAME\tWIDTH\tSELECTED")
	for _, b := range kernel.Backends() {
		width := "scalar"
		if b.Vectorized() {
			width = b.Width.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%v\n", b.Name, width, b.Name == ks.backend.Name)
	}
	return tw.Flush()
}

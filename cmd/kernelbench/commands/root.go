package commands

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-kernels/internal/config"
	"github.com/cwbudde/algo-kernels/internal/logging"
	"github.com/spf13/cobra"
)

// options is shared by all subcommands of one root command.
type options struct {
	cfgFile string
	verbose bool
	generic bool
	width   int

	cfg     *config.Config
	kernels kernelSet
}

// newRootCmd builds the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "kernelbench",
		Short: "Benchmark and verify scalar vs vectorized numeric kernels",
		Long: `kernelbench runs the elementwise, 4x4 tensor and convolution kernels
on both the scalar and the lane-group path, compares their speed and
checks them against a float64 reference.`,
		Version:      "0.1.0",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./kernelbench.yaml or $HOME/.kernelbench/kernelbench.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.generic, "generic", false, "force the scalar generic backend")
	rootCmd.PersistentFlags().IntVar(&opts.width, "width", 0, "lane width override (4 or 8)")

	rootCmd.AddCommand(
		newInfoCmd(opts),
		newBenchCmd(opts),
		newVerifyCmd(opts),
		newDemoCmd(opts),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return execute(newRootCmd())
}

// execute runs root and closes the log file its setup may have opened.
func execute(root *cobra.Command) error {
	err := root.Execute()
	return errors.Join(err, logging.Close())
}

func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("generic") {
		cfg.Kernel.ForceGeneric = o.generic
	}
	if flags.Changed("width") {
		cfg.Kernel.LaneWidth = o.width
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating flags: %w", err)
	}

	level := cfg.Logging.Level
	if o.verbose {
		level = "debug"
	}
	if err := logging.Init(level, cfg.Logging.File, cfg.Logging.Console); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	ks, err := selectKernels(cfg.Kernel)
	if err != nil {
		return err
	}

	logging.Infof("kernels selected: backend=%s width=%s vectorized=%t",
		ks.backend, ks.width, ks.vectorized)

	o.cfg = cfg
	o.kernels = ks
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kingdwd/Copter/cosmo"
	"github.com/kingdwd/Copter/logging"
	"github.com/kingdwd/Copter/version"
)

func newRootCmd() *cobra.Command {
	var debug, perf bool

	cmd := &cobra.Command{
		Use:   "copter",
		Short: "copter - Lambda-CDM parameters and linear power spectra",
		Long: `My modes are:
copter print  [flags] [____.config]
copter sigma  [flags] ____.config
copter pk     ____.config
copter hubble [flags] [____.config]
copter version

Config files are either ini files with a [Cosmology] header or YAML files
ending in .yaml or .yml. An example ini config:

` + cosmo.ExampleConfig(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			switch {
			case debug:
				logging.Setup(cmd.ErrOrStderr(), logging.Debug)
				logging.L().Debug("starting copter", "mem", logging.MemString())
			case perf:
				logging.Setup(cmd.ErrOrStderr(), logging.Performance)
			default:
				logging.Setup(nil, logging.Nil)
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs to stderr")
	cmd.PersistentFlags().BoolVar(&perf, "perf", false, "write timing and memory statistics to stderr")
	cmd.AddCommand(
		printCmd(),
		sigmaCmd(),
		pkCmd(),
		hubbleCmd(),
		versionCmd(),
	)
	return cmd
}

// load returns the fiducial cosmology when args is empty and otherwise reads
// the config file args[0].
func load(args []string) (*cosmo.Cosmology, error) {
	if len(args) == 0 {
		return cosmo.Default(), nil
	}
	return cosmo.FromFile(args[0])
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the source version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Copter version %s\n", version.SourceVersion)
			return err
		},
	}
}

package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var configPath string

// newRootCmd builds the root command with every subcommand attached. logger
// is passed directly into each subcommand constructor rather than threaded
// through cobra's own context plumbing, which buys nothing for a
// single-process CLI.
func newRootCmd(logger zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "allocsolver",
		Short: "Allocate monthly income across spending categories",
		Long: `allocsolver runs a cascading chain of optimizers (A*, greedy,
simulated annealing) to allocate a monthly income across a fixed set of
spending categories, subject to per-category floors and an optional
savings target.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML settings file (optional)")

	root.AddCommand(newSolveCmd(logger))
	root.AddCommand(newServeCmd(logger))
	root.AddCommand(newScheduleCmd(logger))

	return root
}

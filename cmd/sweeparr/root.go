package main

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func newRootCommand() *cobra.Command {
	var dryRunFlag bool

	rootCmd := &cobra.Command{
		Use:           "sweeparr <config>",
		Short:         "Retention cleanup for daily series",
		Long:          "Sweeparr removes downloaded daily-series episodes older than a retention threshold,\nunmonitoring them first so the library manager does not fetch them again.",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runCleanup(cmd, args[0], dryRunFlag)
		},
	}

	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Preview deletions without modifying anything")

	rootCmd.AddCommand(newWatchCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

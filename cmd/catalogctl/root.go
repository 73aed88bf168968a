package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Film catalog normalizer CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newFetchCommand())
	rootCmd.AddCommand(newProfitCommand())
	rootCmd.AddCommand(newMagnitudeCommand())

	return rootCmd
}

package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ffeval",
		Short: "ffeval evaluates classical molecular-mechanics energies and forces",
	}
	cmd.AddCommand(newEvaluateCommand())
	return cmd
}

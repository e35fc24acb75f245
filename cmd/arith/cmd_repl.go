package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/arith/repl"
)

func newREPLCmd(a *app) *cobra.Command {
	var output outputFlags

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl.Run(a.evaluator, output.resolvePrecision(a, cmd))
		},
	}

	cmd.Flags().IntVarP(&output.precision, "precision", "p", -1, "significant digits in results, -1 for shortest")

	return cmd
}

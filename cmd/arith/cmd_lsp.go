package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/arith/workspace"
)

func newLSPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := workspace.NewLSPServer(version, a.evaluator, a.cfg.Output.Precision)
			return server.RunStdio()
		},
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/arith/format"
)

func newTreeCmd(a *app) *cobra.Command {
	var output outputFlags

	cmd := &cobra.Command{
		Use:   "tree <expression...>",
		Short: "Print the expression tree of an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := output.encoder(a, cmd, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			expr := strings.Join(args, " ")
			tree, err := a.evaluator.Parse(expr)
			if err != nil {
				return err
			}
			if err := enc.Encode(format.Result{Expression: expr, Tree: tree, Value: tree.Eval()}); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	output.register(cmd)

	return cmd
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/arith/format"
	"github.com/dhamidi/arith/workspace"
)

func newCheckCmd(a *app) *cobra.Command {
	var output outputFlags
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Evaluate every expression in .arith files",
		Long: `Evaluate each line of the given files as a separate expression.
Blank lines and text after "#" are ignored. The command fails if any
expression does not evaluate.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := output.encoder(a, cmd, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			total, failed := 0, 0
			for _, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				for _, l := range workspace.EvaluateLines(a.evaluator, string(content)) {
					total++
					if l.Err != nil {
						failed++
					} else if quiet {
						continue
					}
					r := format.Result{Line: l.Number, Expression: l.Expression, Value: l.Value, Err: l.Err}
					if len(args) > 1 {
						r.Path = path
					}
					if err := enc.Encode(r); err != nil {
						return fmt.Errorf("encode: %w", err)
					}
				}
			}

			log.Infof("checked %d expressions in %d files", total, len(args))
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, total)
			}
			return nil
		},
	}

	output.register(cmd)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print failing expressions")

	return cmd
}

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/arith/format"
)

func newEvalCmd(a *app) *cobra.Command {
	var output outputFlags

	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate an expression, or each line of standard input",
		Long: `Evaluate the expression formed by joining the arguments with spaces.
Without arguments every non-blank line of standard input is evaluated.

An expression starting with a minus sign would be read as a flag; put --
before it:

  arith eval -- -1 + 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := output.encoder(a, cmd, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			var exprs []string
			if len(args) > 0 {
				exprs = []string{strings.Join(args, " ")}
			} else {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if strings.TrimSpace(scanner.Text()) != "" {
						exprs = append(exprs, scanner.Text())
					}
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}

			failed := 0
			for _, expr := range exprs {
				v, err := a.evaluator.Evaluate(expr)
				if err != nil {
					failed++
				}
				if err := enc.Encode(format.Result{Expression: expr, Value: v, Err: err}); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(exprs))
			}
			return nil
		},
	}

	output.register(cmd)

	return cmd
}

package main

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/arith/arith"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of arithmetic expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), arith.EBNF)
			return err
		},
	}

	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Parse and verify an EBNF grammar file, or the built-in grammar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "arith.ebnf"
			var src io.Reader = strings.NewReader(arith.EBNF)
			if len(args) > 0 {
				filename = args[0]
				f, err := os.Open(filename)
				if err != nil {
					return fmt.Errorf("open file: %w", err)
				}
				defer f.Close()
				src = f
			}

			grammar, err := ebnf.Parse(filename, src)
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return fmt.Errorf("parse %s: invalid grammar", filename)
			}

			if startProduction != "" {
				if err := ebnf.Verify(grammar, startProduction); err != nil {
					printErrors(cmd.ErrOrStderr(), err)
					return fmt.Errorf("verify %s: invalid grammar", filename)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d productions ok\n", filename, len(grammar))
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", arith.StartProduction, "start production for verification (if empty, only checks syntax)")

	return cmd
}

// printErrors prints each error of the list returned by the ebnf package on
// its own line.
func printErrors(w io.Writer, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}

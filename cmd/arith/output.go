package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/dhamidi/arith/format"
)

// outputFlags are the --format and --precision flags shared by commands that
// print results. Unset flags fall back to the [output] config section.
type outputFlags struct {
	format    string
	precision int
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format (text, json, yaml)")
	cmd.Flags().IntVarP(&o.precision, "precision", "p", -1, "significant digits in text output, -1 for shortest")
}

func (o *outputFlags) encoder(a *app, cmd *cobra.Command, w io.Writer) (format.Encoder, error) {
	name := a.cfg.Output.Format
	if cmd.Flags().Changed("format") {
		name = o.format
	}
	return format.NewEncoder(name, w, o.resolvePrecision(a, cmd))
}

func (o *outputFlags) resolvePrecision(a *app, cmd *cobra.Command) int {
	if cmd.Flags().Changed("precision") {
		return o.precision
	}
	return a.cfg.Output.Precision
}

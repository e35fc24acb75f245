package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/arith/format"
	"github.com/dhamidi/arith/workspace"
)

func newWatchCmd(a *app) *cobra.Command {
	var output outputFlags
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Re-evaluate expression files whenever they change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			if info, err := os.Stat(dir); err != nil {
				return fmt.Errorf("stat %s: %w", dir, err)
			} else if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}

			enc, err := output.encoder(a, cmd, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("interval") {
				interval = a.cfg.Watch.Interval.Duration
			}

			ws := workspace.New(dir, a.evaluator, a.cfg.Watch.Extensions...)
			watcher := workspace.NewWatcher(ws, interval, func(e workspace.Event) {
				if e.Doc == nil {
					log.Infof("removed %s", e.Path)
					return
				}
				log.Infof("%s: %d expressions, %d failed", e.Path, len(e.Doc.Lines), len(e.Doc.Failed()))
				for _, l := range e.Doc.Lines {
					r := format.Result{Path: e.Path, Line: l.Number, Expression: l.Expression, Value: l.Value, Err: l.Err}
					if err := enc.Encode(r); err != nil {
						log.Errorf("encode: %s", err)
					}
				}
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Infof("watching %s every %s", dir, interval)
			watcher.Start()
			<-ctx.Done()
			watcher.Stop()
			return nil
		},
	}

	output.register(cmd)
	cmd.Flags().DurationVarP(&interval, "interval", "i", time.Second, "poll interval")

	return cmd
}

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/arith/arith"
	"github.com/dhamidi/arith/config"
)

const version = "0.1.0"

var log = commonlog.GetLogger("arith")

// app carries the state shared by all commands once the root command has
// loaded the configuration.
type app struct {
	configPath string
	verbose    int

	cfg       *config.Config
	evaluator *arith.Evaluator
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "arith",
		Short:        "Evaluate arithmetic expressions",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $ARITH_CONFIG, ./arith.toml or ~/.config/arith/config.toml)")
	rootCmd.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newEvalCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newTreeCmd(a))
	rootCmd.AddCommand(newREPLCmd(a))
	rootCmd.AddCommand(newLSPCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newGrammarCmd())

	return rootCmd
}

func (a *app) load() error {
	cfg, err := config.Discover(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	commonlog.Configure(cfg.Log.Verbosity+a.verbose, cfg.LogPath())
	if cfg.Path != "" {
		log.Infof("using config %s", cfg.Path)
	}
	a.evaluator = arith.New(cfg.EvaluatorOptions()...)
	return nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/iw2rmb/ghostline/config"
	"github.com/iw2rmb/ghostline/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFile    string
	logDev     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "ghostline",
		Short: "Inline AI completion for the terminal",
		Long: `ghostline shows AI-generated continuations as ghost text after the caret.

  ghostline serve                       # completion backend on :3000
  ghostline edit --prompt "formal"      # edit text, Tab accepts a suggestion
  ghostline version`,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default ./ghostline.yaml or ~/.config/ghostline/ghostline.yaml)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	pf.BoolVar(&opts.logDev, "log-dev", false, "human-readable log output")

	cmd.AddCommand(newServeCmd(opts), newEditCmd(opts), newVersionCmd())
	return cmd
}

// load reads the config file and applies the persistent flags on top.
func (o *rootOptions) load(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if flags.Changed("log-dev") {
		cfg.Log.Development = o.logDev
	}
	return cfg, nil
}

func loggingOptions(l config.Log, discard bool) logging.Options {
	return logging.Options{
		Level:       l.Level,
		Development: l.Development,
		File:        l.File,
		Discard:     discard,
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"rocklab-sim/internal/config"
	"rocklab-sim/internal/specimen"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
	noColor  bool
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "rocklab",
		Short: "Rock, sediment and magnetic sample bench",
		Long: `rocklab creates rock, sediment and magnetic sediment samples, puts them
on a scale and reports densities, magnetizations and the total weight.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := config.LogConfig{Level: opts.logLevel}.SlogLevel()
			if err != nil {
				return err
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), level, opts.noColor)
			specimen.SetLogger(opts.logger)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored log output")

	root.AddCommand(newDemoCmd(opts))
	root.AddCommand(newWeighCmd(opts))
	return root
}

func newLogger(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

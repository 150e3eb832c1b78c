package main

import (
	"fmt"

	"rocklab-sim/internal/config"
	"rocklab-sim/internal/scale"
	"rocklab-sim/internal/specimen"

	"github.com/spf13/cobra"
)

func newWeighCmd(opts *rootOptions) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "weigh",
		Short: "Create the samples of a bench file and weigh them",
		Long: `Create every sample listed in a YAML bench file, put them all on a scale
and report the total weight and the density and magnetic summaries.

Example usage:
  rocklab weigh --config bench.yaml
  rocklab weigh --config bench.yaml --log-level=warn`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := applyLogConfig(cmd, opts, cfg.Log); err != nil {
				return err
			}
			samples, err := cfg.BuildSamples()
			if err != nil {
				return fmt.Errorf("failed to build samples: %w", err)
			}

			sc := scale.NewScale(scale.WithWeightLimit(cfg.Scale.WeightLimit), scale.WithLogger(opts.logger))
			for _, s := range samples {
				sc.PutOn(s)
			}
			return report(cmd.OutOrStdout(), opts.logger, samples, sc, cfg.FieldH)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "bench.yaml", "Path to the bench configuration file")
	return cmd
}

// applyLogConfig rebuilds the logger from the bench file settings
// unless they were given on the command line.
func applyLogConfig(cmd *cobra.Command, opts *rootOptions, lc config.LogConfig) error {
	if cmd.Flag("log-level").Changed {
		lc.Level = opts.logLevel
	}
	if cmd.Flag("no-color").Changed {
		lc.NoColor = opts.noColor
	}
	level, err := lc.SlogLevel()
	if err != nil {
		return err
	}
	opts.logger = newLogger(cmd.ErrOrStderr(), level, lc.NoColor)
	specimen.SetLogger(opts.logger)
	return nil
}

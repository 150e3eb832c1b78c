package main

import (
	"fmt"

	"rocklab-sim/internal/scale"
	"rocklab-sim/internal/specimen"

	"github.com/spf13/cobra"
)

func newDemoCmd(opts *rootOptions) *cobra.Command {
	var (
		weightLimit float64
		fieldH      float64
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in sample demonstration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts, weightLimit, fieldH)
		},
	}
	cmd.Flags().Float64Var(&weightLimit, "weight-limit", 0.05, "Scale weight limit in kg")
	cmd.Flags().Float64Var(&fieldH, "field", 40, "External field H in A/m")
	return cmd
}

func runDemo(cmd *cobra.Command, opts *rootOptions, weightLimit, fieldH float64) error {
	out := cmd.OutOrStdout()

	granite := specimen.NewRock("pink", 0.029)
	lapis := specimen.BlueRock(0.031, 11e-6)
	sand := specimen.NewSediment("yellow", 0.016, specimen.WithVolume(9e-6), specimen.WithGrainSize(2e-4))
	sand.DoubleGrainSize()
	magnetite := specimen.NewMagneticSediment("black", 0.052, 10e-6,
		specimen.WithGrainSize(1e-4),
		specimen.WithMagnetization(3.5),
		specimen.WithSusceptibility(0.6),
	)

	fmt.Fprintf(out, "Induced magnetization of %s at H=%.2f: %.3e A/m\n", magnetite, fieldH, magnetite.InducedMagnetization(fieldH))

	sc := scale.NewScale(scale.WithWeightLimit(weightLimit), scale.WithLogger(opts.logger))
	sc.PutOn(granite)
	sc.PutOn(lapis)
	sc.PutOn(lapis)
	sc.PutOn(sand)
	sc.PutOn(magnetite)
	sc.TakeOff(granite)
	sc.TakeOff(granite)

	samples := []specimen.Sample{granite, lapis, sand, magnetite}
	return report(out, opts.logger, samples, sc, fieldH)
}

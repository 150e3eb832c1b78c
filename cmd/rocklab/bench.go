package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"rocklab-sim/internal/analysis"
	"rocklab-sim/internal/scale"
	"rocklab-sim/internal/specimen"
)

// report prints the samples, the scale reading and the summaries.
func report(w io.Writer, logger *slog.Logger, samples []specimen.Sample, sc *scale.Scale, fieldH float64) error {
	fmt.Fprintln(w, "Samples:")
	if len(samples) == 0 {
		fmt.Fprintln(w, "  None")
	}
	for _, s := range samples {
		fmt.Fprintf(w, "  [%s] %s\n", s.GetID(), s)
	}

	fmt.Fprintf(w, "Scale: %d item(s), total weight %.3e kg (limit %.3e kg)\n", sc.Len(), sc.Weight(), sc.WeightLimit())

	onScale := make([]analysis.Sample, 0, sc.Len())
	var magnetic []analysis.Magnetic
	for _, item := range sc.Items() {
		if s, ok := item.(analysis.Sample); ok {
			onScale = append(onScale, s)
		}
		if m, ok := item.(analysis.Magnetic); ok {
			magnetic = append(magnetic, m)
		}
	}

	summary, err := analysis.Summarize(onScale)
	switch {
	case errors.Is(err, analysis.ErrNoSamples):
		logger.Debug("no samples on scale to summarize")
	case err != nil:
		return fmt.Errorf("density summary: %w", err)
	default:
		fmt.Fprintf(w, "Density: bulk %.2f, mean %.2f, std dev %.2f, min %.2f, max %.2f kg/m^3\n",
			summary.BulkDensity, summary.MeanDensity, summary.StdDevDensity, summary.MinDensity, summary.MaxDensity)
	}

	if len(magnetic) > 0 {
		ms, err := analysis.SummarizeMagnetic(magnetic, fieldH)
		if err != nil {
			return fmt.Errorf("magnetic summary: %w", err)
		}
		fmt.Fprintf(w, "Magnetic: %d sample(s), total moment %.3e A m^2, mean total magnetization %.3e A/m at H=%.2f A/m\n",
			ms.Count, ms.TotalMoment, ms.MeanTotalMagnetization, ms.Field)
	}
	return nil
}

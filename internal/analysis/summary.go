package analysis

import (
	"errors"
	"fmt"

	"rocklab-sim/internal/common"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrNoSamples is returned when a summary is requested for no samples.
var ErrNoSamples = errors.New("no samples to summarize")

// Sample is a physical sample with a weight and a volume.
type Sample interface {
	Weight() float64
	Volume() float64
}

// Magnetic is a sample with magnetic properties.
type Magnetic interface {
	Volume() float64
	Magnetization() float64
	TotalMagnetization(h float64) float64
}

// Summary describes the density distribution of a set of samples.
type Summary struct {
	Count         int
	TotalWeight   float64 // SI: kg
	TotalVolume   float64 // SI: m^3
	BulkDensity   float64 // TotalWeight / TotalVolume
	MeanDensity   float64 // Unweighted mean of the per-sample densities
	StdDevDensity float64 // Sample standard deviation; 0 for a single sample
	MinDensity    float64
	MaxDensity    float64
}

// Summarize computes density statistics for samples.
// Every sample must have a non-zero volume.
func Summarize(samples []Sample) (Summary, error) {
	var empty Summary
	if len(samples) == 0 {
		return empty, ErrNoSamples
	}

	weights := make([]float64, len(samples))
	volumes := make([]float64, len(samples))
	densities := make([]float64, len(samples))
	for i, s := range samples {
		d, err := common.CheckedDensity(s.Weight(), s.Volume())
		if err != nil {
			return empty, fmt.Errorf("sample %d: %w", i, err)
		}
		weights[i] = s.Weight()
		volumes[i] = s.Volume()
		densities[i] = d
	}

	summary := Summary{
		Count:       len(samples),
		TotalWeight: floats.Sum(weights),
		TotalVolume: floats.Sum(volumes),
		MinDensity:  floats.Min(densities),
		MaxDensity:  floats.Max(densities),
	}
	summary.BulkDensity = common.Density(summary.TotalWeight, summary.TotalVolume)
	if len(densities) == 1 {
		summary.MeanDensity = densities[0]
	} else {
		summary.MeanDensity, summary.StdDevDensity = stat.MeanStdDev(densities, nil)
	}
	return summary, nil
}

// MagneticSummary describes the magnetic state of a set of samples in a field.
type MagneticSummary struct {
	Count                  int
	Field                  float64 // External field H (SI: A/m)
	TotalMoment            float64 // Sum of remanent moments (SI: A m^2)
	MeanTotalMagnetization float64 // Volume weighted, at Field (SI: A/m)
}

// SummarizeMagnetic computes the remanent moment and the volume weighted mean
// total magnetization of samples in the external field h.
func SummarizeMagnetic(samples []Magnetic, h float64) (MagneticSummary, error) {
	var empty MagneticSummary
	if len(samples) == 0 {
		return empty, ErrNoSamples
	}

	moments := make([]float64, len(samples))
	totals := make([]float64, len(samples))
	volumes := make([]float64, len(samples))
	for i, s := range samples {
		moments[i] = common.MagneticMoment(s.Magnetization(), s.Volume())
		totals[i] = s.TotalMagnetization(h)
		volumes[i] = s.Volume()
	}
	if floats.Sum(volumes) == 0 {
		return empty, fmt.Errorf("magnetic summary: %w", common.ErrInvalidVolume)
	}

	return MagneticSummary{
		Count:                  len(samples),
		Field:                  h,
		TotalMoment:            floats.Sum(moments),
		MeanTotalMagnetization: stat.Mean(totals, volumes),
	}, nil
}

package analysis

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"rocklab-sim/internal/common"
	"rocklab-sim/internal/specimen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type block struct {
	weight, volume float64
}

func (b block) Weight() float64 { return b.weight }
func (b block) Volume() float64 { return b.volume }

func TestSummarize(t *testing.T) {
	summary, err := Summarize([]Sample{
		block{weight: 2, volume: 1},
		block{weight: 8, volume: 2},
		block{weight: 6, volume: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, 16.0, summary.TotalWeight)
	assert.Equal(t, 4.0, summary.TotalVolume)
	assert.Equal(t, 4.0, summary.BulkDensity)
	assert.InDelta(t, 4.0, summary.MeanDensity, 1e-12)
	assert.InDelta(t, 2.0, summary.StdDevDensity, 1e-12)
	assert.Equal(t, 2.0, summary.MinDensity)
	assert.Equal(t, 6.0, summary.MaxDensity)
}

func TestSummarizeSingle(t *testing.T) {
	summary, err := Summarize([]Sample{block{weight: 3, volume: 1}})
	require.NoError(t, err)
	assert.Equal(t, 3.0, summary.MeanDensity)
	assert.Equal(t, 0.0, summary.StdDevDensity)
}

func TestSummarizeErrors(t *testing.T) {
	_, err := Summarize(nil)
	assert.ErrorIs(t, err, ErrNoSamples)

	_, err = Summarize([]Sample{block{weight: 1, volume: 1}, block{weight: 1, volume: 0}})
	assert.ErrorIs(t, err, common.ErrInvalidVolume)
}

func TestSummarizeMagnetic(t *testing.T) {
	quiet := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	a := specimen.NewMagneticSediment("black", 1, 2,
		specimen.WithMagnetization(4), specimen.WithSusceptibility(0.1), specimen.WithLogger(quiet))
	b := specimen.NewMagneticSediment("brown", 1, 1,
		specimen.WithMagnetization(1), specimen.WithLogger(quiet))

	summary, err := SummarizeMagnetic([]Magnetic{a, b}, 10)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 10.0, summary.Field)
	assert.Equal(t, 9.0, summary.TotalMoment)
	// (5*2 + 1*1) / 3
	assert.InDelta(t, 11.0/3.0, summary.MeanTotalMagnetization, 1e-12)
}

func TestSummarizeMagneticErrors(t *testing.T) {
	_, err := SummarizeMagnetic(nil, 1)
	assert.ErrorIs(t, err, ErrNoSamples)

	quiet := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	flat := specimen.NewMagneticSediment("black", 1, 0, specimen.WithLogger(quiet))
	_, err = SummarizeMagnetic([]Magnetic{flat}, 1)
	assert.ErrorIs(t, err, common.ErrInvalidVolume)
	assert.False(t, math.IsNaN(flat.MagneticMoment()))
}

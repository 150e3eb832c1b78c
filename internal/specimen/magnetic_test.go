package specimen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagneticProperties(t *testing.T) {
	m := NewMagneticProperties(2.0, 0.1)

	assert.InDelta(t, 1.0, m.InducedMagnetization(10), 1e-12)
	assert.InDelta(t, 3.0, m.TotalMagnetization(10), 1e-12)
	assert.Equal(t, 2.0, m.TotalMagnetization(0))
}

func TestZeroMagneticProperties(t *testing.T) {
	var m MagneticProperties
	assert.Equal(t, 0.0, m.TotalMagnetization(100))
}

func TestMagneticSediment(t *testing.T) {
	resetCounter()
	logger, buf := captureLogger()

	ms := NewMagneticSediment("black", 6.0, 2.0,
		WithGrainSize(0.25),
		WithMagnetization(4.0),
		WithSusceptibility(0.1),
		WithLogger(logger),
	)

	assert.Equal(t, int64(1), ms.Serial())
	assert.Equal(t, "black", ms.Color())
	assert.Equal(t, 6.0, ms.Weight())
	assert.Equal(t, 2.0, ms.Volume())
	assert.Equal(t, 0.25, ms.GrainSize())
	assert.Equal(t, 8.0, ms.MagneticMoment())
	assert.InDelta(t, 5.0, ms.TotalMagnetization(10), 1e-12)

	d, err := ms.CalculateDensity()
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)

	ms.DoubleGrainSize()
	assert.Equal(t, 0.5, ms.GrainSize())

	recs := decodeRecords(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "magnetic-sediment", recs[0]["kind"])
}

func TestMagneticSedimentString(t *testing.T) {
	resetCounter()
	logger, _ := captureLogger()

	ms := NewMagneticSediment("black", 4, 2, WithMagnetization(3), WithLogger(logger))
	assert.Equal(t,
		"black magnetic sediment (No 1) with a density of 2.00e+00, a grainsize of 0.00e+00 and a magnetization of 3.00e+00",
		ms.String())
}

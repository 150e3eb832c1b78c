package specimen

import (
	"testing"

	"rocklab-sim/internal/common"

	"github.com/stretchr/testify/assert"
)

func TestNewSedimentDefaults(t *testing.T) {
	logger, _ := captureLogger()
	s := NewSediment("grey", 0.02, WithLogger(logger))

	assert.Equal(t, 0.0, s.GrainSize())
	assert.Equal(t, common.DefaultVolume, s.Volume())
	assert.Regexp(t, `^sediment-`, s.GetID())
}

func TestDoubleGrainSize(t *testing.T) {
	logger, _ := captureLogger()
	s := NewSediment("grey", 0.02, WithGrainSize(1.0), WithLogger(logger))

	for i := 0; i < 3; i++ {
		s.DoubleGrainSize()
	}
	assert.Equal(t, 8.0, s.GrainSize())
}

func TestDoubleGrainSizeFromZero(t *testing.T) {
	logger, _ := captureLogger()
	s := NewSediment("grey", 0.02, WithLogger(logger))
	s.DoubleGrainSize()
	assert.Equal(t, 0.0, s.GrainSize())
}

func TestSedimentString(t *testing.T) {
	resetCounter()
	logger, _ := captureLogger()

	s := NewSediment("grey", 4, WithVolume(2), WithGrainSize(0.5), WithLogger(logger))
	assert.Equal(t, "grey sediment (No 1) with a density of 2.00e+00 and a grainsize of 5.00e-01", s.String())
}

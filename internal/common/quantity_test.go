package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDensity(t *testing.T) {
	assert.Equal(t, 2.0, Density(2.0, 1.0))
	assert.InDelta(t, 2727.2727, Density(0.03, DefaultVolume), 1e-3)
	assert.True(t, math.IsInf(Density(1, 0), 1))
	assert.True(t, math.IsNaN(Density(0, 0)))
}

func TestCheckedDensity(t *testing.T) {
	d, err := CheckedDensity(6, 3)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)

	_, err = CheckedDensity(6, 0)
	assert.ErrorIs(t, err, ErrInvalidVolume)
}

func TestMagneticMoment(t *testing.T) {
	assert.Equal(t, 8.0, MagneticMoment(4.0, 2.0))
}

package common

import (
	"errors"
	"fmt"
)

// DefaultVolume is the volume assigned to a sample when none is given (SI: m^3).
const DefaultVolume = 11e-6

// ErrInvalidVolume is returned when a density is requested for a zero volume.
var ErrInvalidVolume = errors.New("volume must be non-zero")

// Density returns weight / volume (SI: kg / m^3).
// It does not guard against a zero volume: the IEEE result (Inf or NaN) is returned.
func Density(weight, volume float64) float64 {
	return weight / volume
}

// CheckedDensity is Density with a zero-volume check.
func CheckedDensity(weight, volume float64) (float64, error) {
	if volume == 0 {
		return 0, fmt.Errorf("density of weight %g: %w", weight, ErrInvalidVolume)
	}
	return Density(weight, volume), nil
}

// MagneticMoment returns magnetization * volume (SI: A m^2).
func MagneticMoment(magnetization, volume float64) float64 {
	return magnetization * volume
}

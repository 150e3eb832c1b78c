package specimen

import (
	"fmt"
	"log/slog"

	"rocklab-sim/internal/common"

	"github.com/google/uuid"
)

const (
	kindRock             = "rock"
	kindSediment         = "sediment"
	kindMagneticSediment = "magnetic-sediment"
)

// Rock represents a rock sample with a color and a serial number.
type Rock struct {
	id     string
	serial int64
	color  string
	weight float64 // SI: kg
	volume float64 // SI: m^3
}

// NewRock creates a new rock and assigns it the next serial number.
func NewRock(color string, weight float64, opts ...Option) *Rock {
	p := newParams(opts)
	r := newRock(kindRock, color, weight, p)
	return &r
}

// BlueRock creates a blue rock of the given weight and volume.
func BlueRock(weight, volume float64, opts ...Option) *Rock {
	return NewRock("blue", weight, append(opts[:len(opts):len(opts)], WithVolume(volume))...)
}

func newRock(kind, color string, weight float64, p params) Rock {
	r := Rock{
		id:     fmt.Sprintf("%s-%s", kind, uuid.NewString()[:8]),
		serial: nextSerial(),
		color:  color,
		weight: weight,
		volume: p.volume,
	}
	p.logger.Info("rock created",
		slog.Int64("serial", r.serial),
		slog.String("id", r.id),
		slog.String("kind", kind),
		slog.String("color", r.color),
	)
	return r
}

// GetID returns the unique identifier of the rock.
func (r *Rock) GetID() string {
	return r.id
}

// Serial returns the serial number assigned at creation.
func (r *Rock) Serial() int64 {
	return r.serial
}

// Color returns the color tag of the rock.
func (r *Rock) Color() string {
	return r.color
}

// Weight returns the weight of the rock (SI: kg).
func (r *Rock) Weight() float64 {
	return r.weight
}

// Volume returns the volume of the rock (SI: m^3).
func (r *Rock) Volume() float64 {
	return r.volume
}

// CalculateDensity returns the density of the rock (SI: kg / m^3).
func (r *Rock) CalculateDensity() (float64, error) {
	d, err := common.CheckedDensity(r.weight, r.volume)
	if err != nil {
		return 0, fmt.Errorf("rock %d: %w", r.serial, err)
	}
	return d, nil
}

// densityString formats the density with verb, or "undefined" for a zero volume.
func (r *Rock) densityString(verb string) string {
	d, err := r.CalculateDensity()
	if err != nil {
		return "undefined"
	}
	return fmt.Sprintf(verb, d)
}

// String representation for logging
func (r *Rock) String() string {
	return fmt.Sprintf("%s rock (No %d) with a density of %s", r.color, r.serial, r.densityString("%.2f"))
}

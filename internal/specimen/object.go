package specimen

// Weighable is anything that can be put on a scale.
type Weighable interface {
	// Weight returns the mass of the object (SI: kg).
	Weight() float64
}

// Sample defines the interface for any physical sample on the bench.
type Sample interface {
	Weighable
	// Volume returns the volume of the sample (SI: m^3).
	Volume() float64
	// GetID returns the unique identifier of the sample.
	GetID() string
	// Serial returns the creation-order serial number of the sample.
	Serial() int64
}

var (
	_ Sample = (*Rock)(nil)
	_ Sample = (*Sediment)(nil)
	_ Sample = (*MagneticSediment)(nil)
)

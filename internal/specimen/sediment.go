package specimen

import "fmt"

// Sediment is a rock with a grain size.
type Sediment struct {
	Rock
	grainSize float64
}

// NewSediment creates a new sediment. It consumes one serial number.
func NewSediment(color string, weight float64, opts ...Option) *Sediment {
	p := newParams(opts)
	s := newSediment(kindSediment, color, weight, p)
	return &s
}

func newSediment(kind, color string, weight float64, p params) Sediment {
	return Sediment{
		Rock:      newRock(kind, color, weight, p),
		grainSize: p.grainSize,
	}
}

// GrainSize returns the current grain size.
func (s *Sediment) GrainSize() float64 {
	return s.grainSize
}

// DoubleGrainSize multiplies the grain size by two in place.
func (s *Sediment) DoubleGrainSize() {
	s.grainSize *= 2
}

func (s *Sediment) String() string {
	return fmt.Sprintf("%s sediment (No %d) with a density of %s and a grainsize of %.2e",
		s.color, s.serial, s.densityString("%.2e"), s.grainSize)
}

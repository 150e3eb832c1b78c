package specimen

import (
	"fmt"

	"rocklab-sim/internal/common"
)

// MagneticSediment combines a sediment with magnetic properties.
// Both parts are embedded, so it exposes the methods of each.
type MagneticSediment struct {
	MagneticProperties
	Sediment
}

// NewMagneticSediment creates a magnetic sediment. The magnetic part is set up
// first, then the sediment part, which consumes one serial number.
func NewMagneticSediment(color string, weight, volume float64, opts ...Option) *MagneticSediment {
	p := newParams(append(opts[:len(opts):len(opts)], WithVolume(volume)))
	ms := &MagneticSediment{
		MagneticProperties: NewMagneticProperties(p.magnetization, p.susceptibility),
	}
	ms.Sediment = newSediment(kindMagneticSediment, color, weight, p)
	return ms
}

// MagneticMoment returns magnetization * volume (SI: A m^2).
func (m *MagneticSediment) MagneticMoment() float64 {
	return common.MagneticMoment(m.Magnetization(), m.Volume())
}

func (m *MagneticSediment) String() string {
	return fmt.Sprintf("%s magnetic sediment (No %d) with a density of %s, a grainsize of %.2e and a magnetization of %.2e",
		m.color, m.serial, m.densityString("%.2e"), m.grainSize, m.magnetization)
}

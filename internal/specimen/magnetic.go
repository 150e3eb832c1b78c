package specimen

// MagneticProperties holds volume normalized magnetic properties.
// It is independent of the rock family and never touches the serial counter.
type MagneticProperties struct {
	magnetization  float64 // SI: A m^2 / m^3 = A/m
	susceptibility float64 // volume normalized, no units
}

// NewMagneticProperties creates magnetic properties with the given remanent
// magnetization and susceptibility.
func NewMagneticProperties(magnetization, susceptibility float64) MagneticProperties {
	return MagneticProperties{
		magnetization:  magnetization,
		susceptibility: susceptibility,
	}
}

// Magnetization returns the remanent magnetization (SI: A/m).
func (m MagneticProperties) Magnetization() float64 {
	return m.magnetization
}

// Susceptibility returns the volume normalized susceptibility.
func (m MagneticProperties) Susceptibility() float64 {
	return m.susceptibility
}

// InducedMagnetization returns the magnetization induced by the external field h (SI: A/m).
func (m MagneticProperties) InducedMagnetization(h float64) float64 {
	return m.susceptibility * h
}

// TotalMagnetization returns induced plus remanent magnetization in the field h (SI: A/m).
func (m MagneticProperties) TotalMagnetization(h float64) float64 {
	return m.InducedMagnetization(h) + m.magnetization
}

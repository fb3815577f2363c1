package apollo

import "gonum.org/v1/gonum/floats"

// DryAirR is the specific gas constant of dry air (J kg^-1 K^-1).
const DryAirR = 287.058

// Gas is an ideal gas at a given pressure and temperature.
type Gas struct {
	R           float64 // specific gas constant
	Pressure    float64 // Pa
	Temperature float64 // K
}

// Density returns the density of the gas in kg/m^3.
func (g Gas) Density() float64 {
	return g.Pressure / (g.R * g.Temperature)
}

// DryAir returns dry air at the provided pressure and temperature.
func DryAir(pressure, temperature float64) Gas {
	return Gas{DryAirR, pressure, temperature}
}

// CompoundGas is one component of a Compound.
type CompoundGas struct {
	Gas      Gas
	Fraction float64
}

// Compound is a mixture of gases. Fractions are used as is and need not sum to one.
type Compound []CompoundGas

// Density returns the fraction weighted density of the compound.
func (c Compound) Density() float64 {
	densities := make([]float64, len(c))
	fractions := make([]float64, len(c))
	for i, cg := range c {
		densities[i] = cg.Gas.Density()
		fractions[i] = cg.Fraction
	}
	return floats.Dot(densities, fractions)
}

// Drag returns the drag force applied by a gas moving at gasVelocity on an object moving at
// objectVelocity. The force points along the velocity of the gas relative to the object.
// If both velocities are equal, there is no drag.
func Drag(objectVelocity, gasVelocity Vector3, gasDensity, crossSectionArea, dragCoefficient float64) Vector3 {
	relative := gasVelocity.Sub(objectVelocity)
	if relative == (Vector3{}) {
		return Vector3{} // Don't want no NaNs now.
	}
	speed := relative.Length()
	magnitude := 0.5 * gasDensity * speed * speed * dragCoefficient * crossSectionArea
	return relative.Normalize().Scale(magnitude)
}

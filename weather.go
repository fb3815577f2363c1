package apollo

import (
	"fmt"
	"math"
)

// WeatherConditionWind defines a horizontal wind.
type WeatherConditionWind struct {
	Speed     float64 // m/s
	Direction float64 // rad, 0 blows along +X and pi/2 along +Z
}

// Velocity returns the velocity vector of the wind.
func (w WeatherConditionWind) Velocity() Vector3 {
	sinD, cosD := math.Sincos(w.Direction)
	return Vector3{X: cosD * w.Speed, Y: 0, Z: sinD * w.Speed}
}

// WeatherConditionTemperatures defines the temperatures of the air.
type WeatherConditionTemperatures struct {
	Average float64 // K
}

// WeatherConditionAir defines the state of the air.
type WeatherConditionAir struct {
	Pressure float64 // Pa
	Humidity float64 // relative, between 0 and 1
}

// WeatherCondition aggregates the wind, temperature and air state the projectile flies through.
type WeatherCondition struct {
	Wind         WeatherConditionWind
	Temperatures WeatherConditionTemperatures
	Air          WeatherConditionAir
}

// NewWeatherCondition returns a new weather condition. The wind direction is in radians.
func NewWeatherCondition(windSpeed, windDirection, temperature, pressure, humidity float64) WeatherCondition {
	return WeatherCondition{
		Wind:         WeatherConditionWind{windSpeed, windDirection},
		Temperatures: WeatherConditionTemperatures{temperature},
		Air:          WeatherConditionAir{pressure, humidity},
	}
}

// StandardAtmosphere is a calm day at sea level: 101325 Pa, 288 K and dry air.
var StandardAtmosphere = NewWeatherCondition(0, 0, 288, 101325, 0)

// AirCompound returns the gas compound of the air: dry air weighted by 1-humidity.
func (w WeatherCondition) AirCompound() Compound {
	return Compound{
		{DryAir(w.Air.Pressure, w.Temperatures.Average), 1 - w.Air.Humidity},
	}
}

// String implements the Stringer interface.
func (w WeatherCondition) String() string {
	return fmt.Sprintf("wind=%.2f m/s @ %.1f deg T=%.2f K p=%.1f Pa φ=%.2f", w.Wind.Speed, Rad2deg(w.Wind.Direction), w.Temperatures.Average, w.Air.Pressure, w.Air.Humidity)
}

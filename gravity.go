package apollo

import (
	"fmt"
	"strings"
)

// G is the gravitational constant in m^3 kg^-1 s^-2.
const G = 6.67430e-11

// GravitationalBody defines the body a projectile is launched from.
// Altitudes are measured from its mean radius.
type GravitationalBody struct {
	Name   string
	Mass   float64 // kg
	Radius float64 // m
}

// ForceOnObject returns the gravitational force on an object of the provided mass at the provided altitude.
// A negative value points towards the center of the body.
func (b GravitationalBody) ForceOnObject(altitude, mass float64) float64 {
	r := b.Radius + altitude
	return -G * b.Mass * mass / (r * r)
}

// SurfaceGravity returns the gravitational acceleration at zero altitude (m/s^2, positive).
func (b GravitationalBody) SurfaceGravity() float64 {
	return -b.ForceOnObject(0, 1)
}

// String implements the Stringer interface.
func (b GravitationalBody) String() string {
	return b.Name + " body"
}

// BodyFromString returns the body from its name.
func BodyFromString(name string) (GravitationalBody, error) {
	switch strings.ToLower(name) {
	case "", "earth":
		return Earth, nil
	case "moon":
		return Moon, nil
	case "mars":
		return Mars, nil
	default:
		return GravitationalBody{}, fmt.Errorf("undefined body '%s'", name)
	}
}

/* Definitions */

// Earth is home.
var Earth = GravitationalBody{"Earth", 5.972e24, 6371000}

// Moon is where Apollo went.
var Moon = GravitationalBody{"Moon", 7.342e22, 1737400}

// Mars has a thin atmosphere, which the weather conditions must reflect.
var Mars = GravitationalBody{"Mars", 6.4171e23, 3389500}

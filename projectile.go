package apollo

import (
	"fmt"
	"math"
	"strings"
)

const (
	sphereDragCoefficient   = 0.47
	cylinderDragCoefficient = 0.82
)

// Projectile defines the shape dependent properties the simulator needs.
type Projectile interface {
	Mass() float64            // kg
	DragCoefficient() float64 // dimensionless
	ProjectedArea() float64   // m^2, perpendicular to the relative airflow
}

// circleArea returns the area of a circle.
func circleArea(radius float64) float64 {
	return math.Pi * radius * radius
}

// SphericalProjectile is a ball.
type SphericalProjectile struct {
	mass, radius float64 // kg, m
}

// NewSphericalProjectile returns a new spherical projectile. Mass is in kg and radius in m.
func NewSphericalProjectile(mass, radius float64) SphericalProjectile {
	return SphericalProjectile{mass, radius}
}

// Mass implements the Projectile interface.
func (p SphericalProjectile) Mass() float64 {
	return p.mass
}

// Radius returns the radius in m.
func (p SphericalProjectile) Radius() float64 {
	return p.radius
}

// DragCoefficient implements the Projectile interface.
func (p SphericalProjectile) DragCoefficient() float64 {
	return sphereDragCoefficient
}

// ProjectedArea implements the Projectile interface.
// It is the great circle of the sphere.
func (p SphericalProjectile) ProjectedArea() float64 {
	return circleArea(p.radius)
}

// SurfaceArea returns the surface area of the sphere.
func (p SphericalProjectile) SurfaceArea() float64 {
	return 4 * circleArea(p.radius)
}

func (p SphericalProjectile) String() string {
	return fmt.Sprintf("sphere m=%.3f kg r=%.3f m", p.mass, p.radius)
}

// CylindricalProjectile is a long cylinder flying end-on.
type CylindricalProjectile struct {
	mass, radius float64 // kg, m
}

// NewCylindricalProjectile returns a new cylindrical projectile. Mass is in kg and radius in m.
func NewCylindricalProjectile(mass, radius float64) CylindricalProjectile {
	return CylindricalProjectile{mass, radius}
}

// Mass implements the Projectile interface.
func (p CylindricalProjectile) Mass() float64 {
	return p.mass
}

// Radius returns the radius in m.
func (p CylindricalProjectile) Radius() float64 {
	return p.radius
}

// DragCoefficient implements the Projectile interface.
func (p CylindricalProjectile) DragCoefficient() float64 {
	return cylinderDragCoefficient
}

// ProjectedArea implements the Projectile interface.
func (p CylindricalProjectile) ProjectedArea() float64 {
	return circleArea(p.radius)
}

func (p CylindricalProjectile) String() string {
	return fmt.Sprintf("cylinder m=%.3f kg r=%.3f m", p.mass, p.radius)
}

// ProjectileFromString returns a projectile of the named shape.
func ProjectileFromString(shape string, mass, radius float64) (Projectile, error) {
	switch strings.ToLower(shape) {
	case "", "sphere", "spherical":
		return NewSphericalProjectile(mass, radius), nil
	case "cylinder", "cylindrical":
		return NewCylindricalProjectile(mass, radius), nil
	default:
		return nil, fmt.Errorf("undefined projectile shape '%s'", shape)
	}
}

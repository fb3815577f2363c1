package apollo

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vector3 is a 3D vector where Y is the vertical axis.
// All operations return a new vector and never alter the receiver.
type Vector3 r3.Vec

// NewVector3 returns a new Vector3.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns v+w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3(r3.Add(r3.Vec(v), r3.Vec(w)))
}

// Sub returns v-w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3(r3.Sub(r3.Vec(v), r3.Vec(w)))
}

// Scale returns f*v.
func (v Vector3) Scale(f float64) Vector3 {
	return Vector3(r3.Scale(f, r3.Vec(v)))
}

// Dot returns the inner product of v and w.
func (v Vector3) Dot(w Vector3) float64 {
	return r3.Dot(r3.Vec(v), r3.Vec(w))
}

// Length returns the Euclidean norm of v.
func (v Vector3) Length() float64 {
	return r3.Norm(r3.Vec(v))
}

// Normalize returns the unit vector of v, or the zero vector if v has no length.
func (v Vector3) Normalize() Vector3 {
	if scalar.EqualWithinAbs(v.Length(), 0, 1e-12) {
		return Vector3{}
	}
	return Vector3(r3.Unit(r3.Vec(v)))
}

// Distance returns the Euclidean distance between v and w.
func (v Vector3) Distance(w Vector3) float64 {
	return v.Sub(w).Length()
}

// Horizontal returns v projected on the ground plane.
func (v Vector3) Horizontal() Vector3 {
	return Vector3{X: v.X, Z: v.Z}
}

// String implements the Stringer interface.
func (v Vector3) String() string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

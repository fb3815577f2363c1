package apollo

import "math"

const (
	deg2rad = math.Pi / 180
)

// Deg2rad converts degrees to radians, keeping the sign.
func Deg2rad(a float64) float64 {
	return a * deg2rad
}

// Rad2deg converts radians to degrees, keeping the sign.
func Rad2deg(a float64) float64 {
	return a / deg2rad
}

// VelocityFromAngles returns the launch velocity for the provided speed, pitch and yaw (in radians).
// A pitch of zero is horizontal, and a yaw of zero points along +Z.
func VelocityFromAngles(speed, pitch, yaw float64) Vector3 {
	sinP, cosP := math.Sincos(pitch)
	sinY, cosY := math.Sincos(yaw)
	return Vector3{
		X: speed * cosP * sinY,
		Y: speed * sinP,
		Z: speed * cosP * cosY,
	}
}

// Interval is a closed search interval of angles in radians.
type Interval struct {
	Begin, End float64
}

// Mid returns the midpoint of the interval.
func (i Interval) Mid() float64 {
	return (i.End-i.Begin)/2 + i.Begin
}

// Lower returns the lower half of the interval.
func (i Interval) Lower() Interval {
	return Interval{i.Begin, i.Mid()}
}

// Upper returns the upper half of the interval.
func (i Interval) Upper() Interval {
	return Interval{i.Mid(), i.End}
}

// Width returns the width of the interval.
func (i Interval) Width() float64 {
	return i.End - i.Begin
}

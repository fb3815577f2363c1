package apollo

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// pointMass is a projectile without any drag.
type pointMass float64

func (p pointMass) Mass() float64            { return float64(p) }
func (p pointMass) DragCoefficient() float64 { return 0 }
func (p pointMass) ProjectedArea() float64   { return 0 }

var baseball = NewSphericalProjectile(0.15, 0.09)

func TestSimulatorNotRun(t *testing.T) {
	sim := NewSimulator(NewSimulatorOptions(10, true), StandardAtmosphere, baseball, NewVector3(0, 10, 10), Vector3{})
	if sim.State() != Uninitialized {
		t.Fatalf("state = %s", sim.State())
	}
	if _, err := sim.Position(); !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("position: %v", err)
	}
	if _, err := sim.Duration(); !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("duration: %v", err)
	}
	if _, err := sim.DataPoints(); !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("data points: %v", err)
	}
	if _, err := sim.Iterations(); !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("iterations: %v", err)
	}
	if _, err := sim.FlightTime(); !errors.Is(err, ErrNotCompleted) {
		t.Fatalf("flight time: %v", err)
	}
}

func TestSimulatorInvalidRun(t *testing.T) {
	sim := NewSimulator(NewSimulatorOptions(10, false), StandardAtmosphere, baseball, NewVector3(0, 10, 10), Vector3{})
	for _, dt := range []float64{0, -0.01, math.NaN()} {
		if err := sim.Run(dt); !errors.Is(err, ErrInvalidStep) {
			t.Fatalf("dt=%f: %v", dt, err)
		}
	}
	sim = NewSimulator(NewSimulatorOptions(0, false), StandardAtmosphere, baseball, NewVector3(0, 10, 10), Vector3{})
	if err := sim.Run(0.01); !errors.Is(err, ErrInvalidIterations) {
		t.Fatalf("max=0: %v", err)
	}
	if sim.State() != Uninitialized {
		t.Fatal("an invalid run must not change the state")
	}
}

func TestSimulatorNoDataPoints(t *testing.T) {
	sim := NewSimulator(NewSimulatorOptions(1000, false), StandardAtmosphere, baseball, NewVector3(0, 10, 10), Vector3{})
	if err := sim.Run(0.01); err != nil {
		t.Fatal(err)
	}
	if _, err := sim.DataPoints(); !errors.Is(err, ErrNoDataPoints) {
		t.Fatalf("data points: %v", err)
	}
	if _, err := sim.Duration(); err != nil {
		t.Fatalf("duration: %s", err)
	}
}

func TestSimulatorVacuum(t *testing.T) {
	g := Earth.SurfaceGravity()
	v0 := VelocityFromAngles(20, math.Pi/4, 0)
	dt := 0.01
	sim := NewSimulator(NewSimulatorOptions(10000, true), StandardAtmosphere, pointMass(1), v0, Vector3{})
	if err := sim.Run(dt); err != nil {
		t.Fatal(err)
	}
	path, err := sim.DataPoints()
	if err != nil {
		t.Fatal(err)
	}
	iterations, _ := sim.Iterations()
	if len(path) != iterations {
		t.Fatalf("%d data points for %d iterations", len(path), iterations)
	}
	for i, p := range path {
		ti := float64(i+1) * dt
		expY := v0.Y*ti - 0.5*g*ti*ti
		expZ := v0.Z * ti
		// The Euler scheme drifts linearly in dt.
		if !scalar.EqualWithinAbs(p.Y, expY, g*ti*dt+1e-6) {
			t.Fatalf("step %d: y=%f expected %f", i+1, p.Y, expY)
		}
		if !scalar.EqualWithinAbs(p.Z, expZ, 1e-9) || p.X != 0 {
			t.Fatalf("step %d: horizontal %s expected z=%f", i+1, p, expZ)
		}
	}
	final, _ := sim.Position()
	if final.Y > 0 {
		t.Fatalf("final position above ground: %s", final)
	}
	if final != path[len(path)-1] {
		t.Fatal("final position is not the last data point")
	}
	vacuumRange := v0.Length() * v0.Length() / g
	if !scalar.EqualWithinAbs(final.Z, vacuumRange, 2*v0.Z*dt) {
		t.Fatalf("range %f expected %f", final.Z, vacuumRange)
	}
	if impacted, _ := sim.Impacted(); !impacted {
		t.Fatal("projectile should have landed")
	}
}

func TestSimulatorStepHalving(t *testing.T) {
	g := Earth.SurfaceGravity()
	v0 := VelocityFromAngles(20, math.Pi/4, 0)
	prevErr := math.Inf(1)
	for _, dt := range []float64{0.02, 0.01, 0.005, 0.0025} {
		sim := NewSimulator(NewSimulatorOptions(100000, true), StandardAtmosphere, pointMass(1), v0, Vector3{})
		if err := sim.Run(dt); err != nil {
			t.Fatal(err)
		}
		path, _ := sim.DataPoints()
		// Position after one second of flight.
		steps := int(math.Round(1 / dt))
		p := path[steps-1]
		err := math.Abs(p.Y - (v0.Y - 0.5*g))
		if err > prevErr {
			t.Fatalf("dt=%f: error %g increased from %g", dt, err, prevErr)
		}
		prevErr = err
	}
}

func TestSimulatorMaxIterations(t *testing.T) {
	for _, maxIter := range []int{1, 2, 50} {
		sim := NewSimulator(NewSimulatorOptions(maxIter, true), StandardAtmosphere, baseball, NewVector3(0, 1000, 0), Vector3{})
		if err := sim.Run(0.01); err != nil {
			t.Fatal(err)
		}
		iterations, _ := sim.Iterations()
		path, _ := sim.DataPoints()
		if iterations != maxIter || len(path) != maxIter {
			t.Fatalf("max=%d: %d iterations and %d data points", maxIter, iterations, len(path))
		}
		if impacted, _ := sim.Impacted(); impacted {
			t.Fatalf("max=%d: should not have landed", maxIter)
		}
		if ft, _ := sim.FlightTime(); !scalar.EqualWithinAbs(ft, float64(maxIter)*0.01, 1e-12) {
			t.Fatalf("flight time = %f", ft)
		}
	}
}

func TestSimulatorBaseball(t *testing.T) {
	v0 := VelocityFromAngles(20, Deg2rad(45), 0)
	sim := NewSimulator(NewSimulatorOptions(10000, false), StandardAtmosphere, baseball, v0, Vector3{})
	if err := sim.Run(0.01); err != nil {
		t.Fatal(err)
	}
	final, _ := sim.Position()
	vacuumRange := v0.Length() * v0.Length() / Earth.SurfaceGravity()
	if final.Z >= vacuumRange || final.Z >= 40.8 {
		t.Fatalf("drag range %f not below vacuum range %f", final.Z, vacuumRange)
	}
	if !scalar.EqualWithinAbs(final.Z, 17.53, 0.05) {
		t.Fatalf("range = %f", final.Z)
	}
	if final.X != 0 || final.Y > 0 {
		t.Fatalf("final = %s", final)
	}
	// Drag slows the projectile down.
	if v, _ := sim.Velocity(); v.Length() >= v0.Length() {
		t.Fatalf("final speed %f not below launch speed", v.Length())
	}
}

func TestSimulatorWind(t *testing.T) {
	windy := NewWeatherCondition(5, 0, 288, 101325, 0)
	sim := NewSimulator(NewSimulatorOptions(10000, false), windy, baseball, NewVector3(0, 10, 10), Vector3{})
	if err := sim.Run(0.01); err != nil {
		t.Fatal(err)
	}
	final, _ := sim.Position()
	if final.X <= 0 {
		t.Fatalf("wind along +X should push the projectile along +X: %s", final)
	}
}

func TestSimulatorDeterminism(t *testing.T) {
	weather := NewWeatherCondition(2, 0.3, 303, 102300, 0.4)
	v0 := NewVector3(3, 12, 9)
	p0 := NewVector3(0, 1.5, 0)
	sim := NewSimulator(NewSimulatorOptions(10000, true), weather, baseball, v0, p0)
	if err := sim.Run(0.005); err != nil {
		t.Fatal(err)
	}
	first, _ := sim.Position()
	firstPath, _ := sim.DataPoints()
	firstPath = append([]Vector3(nil), firstPath...)
	// Same simulator ran again, and a fresh one.
	for _, s := range []*Simulator{sim, NewSimulator(NewSimulatorOptions(10000, true), weather, baseball, v0, p0)} {
		if err := s.Run(0.005); err != nil {
			t.Fatal(err)
		}
		pos, _ := s.Position()
		path, _ := s.DataPoints()
		if pos != first || len(path) != len(firstPath) {
			t.Fatalf("%s != %s", pos, first)
		}
		for i := range path {
			if path[i] != firstPath[i] {
				t.Fatalf("step %d: %s != %s", i, path[i], firstPath[i])
			}
		}
	}
	if sim.InitialPosition != p0 || sim.InitialVelocity != v0 {
		t.Fatal("initial conditions were altered")
	}
}

func TestSimulatorDegenerateMass(t *testing.T) {
	sim := NewSimulator(NewSimulatorOptions(10, false), StandardAtmosphere, NewSphericalProjectile(0, 0.09), NewVector3(0, 10, 10), Vector3{})
	if err := sim.Run(0.01); err != nil {
		t.Fatalf("physically invalid inputs are not validated: %s", err)
	}
	p, _ := sim.Position()
	finite := func(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
	if finite(p.X) && finite(p.Y) && finite(p.Z) {
		t.Fatalf("zero mass should not give a finite trajectory: %s", p)
	}
}

package apollo

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSimulate(t *testing.T) {
	opts := NewSimulatorOptions(10000, true)
	rslt, err := Simulate(opts, StandardAtmosphere, baseball, VelocityFromAngles(20, math.Pi/4, 0), Vector3{}, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if rslt.FinalPosition.Y > 0 || rslt.FinalPosition.Z <= 0 {
		t.Fatalf("final = %s", rslt.FinalPosition)
	}
	if len(rslt.Path) != rslt.Iterations {
		t.Fatalf("%d data points for %d iterations", len(rslt.Path), rslt.Iterations)
	}
	if !scalar.EqualWithinAbs(rslt.FlightTime, float64(rslt.Iterations)*0.01, 1e-12) {
		t.Fatalf("flight time = %f", rslt.FlightTime)
	}

	opts.GenerateDataPoints = false
	rslt, err = Simulate(opts, StandardAtmosphere, baseball, VelocityFromAngles(20, math.Pi/4, 0), Vector3{}, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if rslt.Path != nil {
		t.Fatal("path should not be recorded")
	}
	if _, err = Simulate(opts, StandardAtmosphere, baseball, Vector3{}, Vector3{}, 0); !errors.Is(err, ErrInvalidStep) {
		t.Fatalf("dt=0: %v", err)
	}
}

func TestOptimize(t *testing.T) {
	target := NewVector3(5, 0, 12)
	rslt, err := Optimize(target, 100, 0.5, 20, NewSimulatorOptions(10000, false), StandardAtmosphere, baseball, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if rslt.Error >= 0.5 || rslt.Reason != "threshold" {
		t.Fatalf("error=%f reason=%s", rslt.Error, rslt.Reason)
	}
	sim, err := Simulate(NewSimulatorOptions(10000, false), StandardAtmosphere, baseball, VelocityFromAngles(20, rslt.Pitch, rslt.Yaw), Vector3{}, DefaultStep)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(sim.FinalPosition.Distance(target), rslt.Error, 1e-9) {
		t.Fatalf("replay error %f != %f", sim.FinalPosition.Distance(target), rslt.Error)
	}

	flat := Interval{0, 0}
	rslt, err = Optimize(NewVector3(0, 0, 15), 100, 0.01, 20, NewSimulatorOptions(10000, false), StandardAtmosphere, baseball, &Interval{0, math.Pi / 2}, &flat)
	if err != nil {
		t.Fatal(err)
	}
	if rslt.Yaw != 0 || rslt.Pitch > math.Pi/2 {
		t.Fatalf("pitch=%f yaw=%f", rslt.Pitch, rslt.Yaw)
	}
	if _, err = Optimize(target, 0, 0.5, 20, NewSimulatorOptions(10000, false), StandardAtmosphere, baseball, nil, nil); !errors.Is(err, ErrInvalidIterations) {
		t.Fatalf("max=0: %v", err)
	}
}

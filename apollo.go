// Package apollo computes the trajectory of a projectile under gravity and aerodynamic drag, and
// searches for the launch angles which make it land on a target.
//
// The integration is a fixed step Euler scheme which updates the velocity first and then moves the
// projectile with the updated velocity. The vertical axis is Y; the ground is at Y=0.
package apollo

import "time"

// SimulationResult is the outcome of Simulate.
type SimulationResult struct {
	FinalPosition Vector3
	FinalVelocity Vector3
	Iterations    int
	FlightTime    float64       // s, simulated
	Duration      time.Duration // wall clock
	Path          []Vector3     // nil unless GenerateDataPoints is set
}

// Simulate runs a single simulation.
func Simulate(opts SimulatorOptions, weather WeatherCondition, projectile Projectile, initialVelocity, initialPosition Vector3, dt float64) (SimulationResult, error) {
	sim := NewSimulator(opts, weather, projectile, initialVelocity, initialPosition)
	if err := sim.Run(dt); err != nil {
		return SimulationResult{}, err
	}
	rslt := SimulationResult{}
	rslt.FinalPosition, _ = sim.Position()
	rslt.FinalVelocity, _ = sim.Velocity()
	rslt.Iterations, _ = sim.Iterations()
	rslt.FlightTime, _ = sim.FlightTime()
	rslt.Duration, _ = sim.Duration()
	if opts.GenerateDataPoints {
		rslt.Path, _ = sim.DataPoints()
	}
	return rslt, nil
}

// OptimizationResult is the outcome of Optimize.
type OptimizationResult struct {
	Pitch, Yaw float64 // rad
	Error      float64 // m
	Iterations int
	Reason     string
}

// Optimize searches the launch angles to reach the target. The pitch and yaw intervals default to
// DefaultPitchInterval and DefaultYawInterval when nil.
func Optimize(target Vector3, maxIterations int, threshold, initialSpeed float64, opts SimulatorOptions, weather WeatherCondition, projectile Projectile, pitch, yaw *Interval) (OptimizationResult, error) {
	opti := NewSimulatorOptimizer(maxIterations, threshold, initialSpeed, opts, weather, projectile)
	pitchI, yawI := DefaultPitchInterval, DefaultYawInterval
	if pitch != nil {
		pitchI = *pitch
	}
	if yaw != nil {
		yawI = *yaw
	}
	if _, err := opti.RunWithin(target, pitchI, yawI); err != nil {
		return OptimizationResult{}, err
	}
	rslt := OptimizationResult{}
	rslt.Pitch, _ = opti.Pitch()
	rslt.Yaw, _ = opti.Yaw()
	rslt.Error, _ = opti.Error()
	rslt.Iterations, _ = opti.Iterations()
	rslt.Reason, _ = opti.Reason()
	return rslt, nil
}

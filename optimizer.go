package apollo

import (
	"fmt"
	"math"
	"sync"

	kitlog "github.com/go-kit/log"
)

// stallε is the minimum improvement of the landing error between two iterations.
const stallε = 1e-5

var (
	// DefaultPitchInterval is the default pitch search interval, from horizontal forward to horizontal backward.
	DefaultPitchInterval = Interval{0, math.Pi}
	// DefaultYawInterval is the default yaw search interval.
	DefaultYawInterval = Interval{-math.Pi / 2, math.Pi / 2}
)

// SimulatorOptimizer searches the launch pitch and yaw which make a projectile land closest to a target.
//
// Each iteration samples two probe angles per axis, at the middle of each half of the current
// interval, and simulates the four combinations from the origin. Each axis then keeps the half
// holding its best probe. The axes are narrowed independently although they are evaluated jointly,
// so this is a heuristic and not a guaranteed 2D minimizer.
type SimulatorOptimizer struct {
	MaxIterations int
	Threshold     float64 // Stop once the landing error (m) is below this.
	InitialSpeed  float64 // m/s
	Options       SimulatorOptions
	Weather       WeatherCondition
	Projectile    Projectile
	Dt            float64 // Step of each probe simulation, defaults to DefaultStep.
	Concurrent    bool    // Run the four probes of an iteration in parallel.

	completed    bool
	pitch, yaw   float64
	iterations   int
	err          float64
	reason       string
	bestProbe    *Simulator
	pitchI, yawI Interval
}

// NewSimulatorOptimizer returns a new SimulatorOptimizer.
func NewSimulatorOptimizer(maxIterations int, threshold, initialSpeed float64, opts SimulatorOptions, weather WeatherCondition, projectile Projectile) *SimulatorOptimizer {
	return &SimulatorOptimizer{
		MaxIterations: maxIterations,
		Threshold:     threshold,
		InitialSpeed:  initialSpeed,
		Options:       opts,
		Weather:       weather,
		Projectile:    projectile,
		Dt:            DefaultStep,
	}
}

type probe struct {
	pitch, yaw float64
	err        float64
	sim        *Simulator
	runErr     error
}

// evaluate simulates a launch at the probe angles and stores the landing error against target.
func (o *SimulatorOptimizer) evaluate(p *probe, opts SimulatorOptions, target Vector3) {
	velocity := VelocityFromAngles(o.InitialSpeed, p.pitch, p.yaw)
	p.sim = NewSimulator(opts, o.Weather, o.Projectile, velocity, Vector3{})
	if p.runErr = p.sim.Run(o.Dt); p.runErr != nil {
		return
	}
	landing, _ := p.sim.Position()
	p.err = landing.Distance(target)
}

// Run searches within the default intervals and returns the final landing error in meters.
func (o *SimulatorOptimizer) Run(target Vector3) (float64, error) {
	return o.RunWithin(target, DefaultPitchInterval, DefaultYawInterval)
}

// RunWithin searches within the provided pitch and yaw intervals (in radians) and returns the final
// landing error in meters. Not converging is not an error: check the error and iterations.
func (o *SimulatorOptimizer) RunWithin(target Vector3, pitchI, yawI Interval) (float64, error) {
	if o.MaxIterations < 1 {
		return 0, fmt.Errorf("%w (max=%d)", ErrInvalidIterations, o.MaxIterations)
	}
	if o.Dt == 0 {
		o.Dt = DefaultStep
	}
	opts := o.Options
	if o.Concurrent && opts.Logger != nil {
		// The probes of an iteration log from their own goroutines.
		opts.Logger = kitlog.NewSyncLogger(opts.Logger)
	}
	logger := opts.logger()
	o.completed = false
	o.iterations = 0
	o.bestProbe = nil
	o.reason = "max iterations"
	previous := math.Inf(1)

	for o.iterations < o.MaxIterations {
		o.iterations++
		pitchMid := pitchI.Mid()
		yawMid := yawI.Mid()
		pitchA, pitchB := pitchI.Lower().Mid(), pitchI.Upper().Mid()
		yawA, yawB := yawI.Lower().Mid(), yawI.Upper().Mid()
		probes := [4]probe{
			{pitch: pitchA, yaw: yawA},
			{pitch: pitchA, yaw: yawB},
			{pitch: pitchB, yaw: yawA},
			{pitch: pitchB, yaw: yawB},
		}
		if o.Concurrent {
			var wg sync.WaitGroup
			for i := range probes {
				wg.Add(1)
				go func(p *probe) {
					defer wg.Done()
					o.evaluate(p, opts, target)
				}(&probes[i])
			}
			wg.Wait()
		} else {
			for i := range probes {
				o.evaluate(&probes[i], opts, target)
			}
		}

		best := 0
		for i := range probes {
			if probes[i].runErr != nil {
				return 0, probes[i].runErr
			}
			if probes[i].err < probes[best].err {
				best = i
			}
		}
		bp := probes[best]

		if bp.pitch > pitchMid {
			pitchI = pitchI.Upper()
		} else {
			pitchI = pitchI.Lower()
		}
		if bp.yaw > yawMid {
			yawI = yawI.Upper()
		} else {
			yawI = yawI.Lower()
		}

		o.pitch, o.yaw, o.err = bp.pitch, bp.yaw, bp.err
		o.bestProbe = bp.sim
		o.Options.Metrics.RecordOptimizerIteration()
		logger.Log("level", "debug", "subsys", "optimizer", "iteration", o.iterations, "pitch(deg)", Rad2deg(o.pitch), "yaw(deg)", Rad2deg(o.yaw), "error(m)", o.err)

		if bp.err < o.Threshold {
			o.reason = "threshold"
			break
		}
		if math.Abs(bp.err-previous) < stallε {
			o.reason = "stalled"
			break
		}
		previous = bp.err
	}

	o.pitchI, o.yawI = pitchI, yawI
	o.completed = true
	o.Options.Metrics.RecordOptimization(o.err)
	logger.Log("level", "info", "subsys", "optimizer", "status", "finished", "reason", o.reason, "iterations", o.iterations, "pitch(deg)", Rad2deg(o.pitch), "yaw(deg)", Rad2deg(o.yaw), "error(m)", o.err)
	return o.err, nil
}

func (o *SimulatorOptimizer) done(what string) error {
	if !o.completed {
		return fmt.Errorf("%s: %w", what, ErrNotCompleted)
	}
	return nil
}

// Pitch returns the best pitch in radians.
func (o *SimulatorOptimizer) Pitch() (float64, error) {
	if err := o.done("pitch"); err != nil {
		return 0, err
	}
	return o.pitch, nil
}

// Yaw returns the best yaw in radians.
func (o *SimulatorOptimizer) Yaw() (float64, error) {
	if err := o.done("yaw"); err != nil {
		return 0, err
	}
	return o.yaw, nil
}

// Iterations returns the number of iterations performed.
func (o *SimulatorOptimizer) Iterations() (int, error) {
	if err := o.done("iterations"); err != nil {
		return 0, err
	}
	return o.iterations, nil
}

// Error returns the landing error of the best angles, in meters.
func (o *SimulatorOptimizer) Error() (float64, error) {
	if err := o.done("error"); err != nil {
		return 0, err
	}
	return o.err, nil
}

// Reason returns why the search stopped: "threshold", "stalled" or "max iterations".
func (o *SimulatorOptimizer) Reason() (string, error) {
	if err := o.done("reason"); err != nil {
		return "", err
	}
	return o.reason, nil
}

// Intervals returns the pitch and yaw intervals left when the search stopped.
func (o *SimulatorOptimizer) Intervals() (pitch, yaw Interval, err error) {
	if err = o.done("intervals"); err != nil {
		return
	}
	return o.pitchI, o.yawI, nil
}

// Simulator returns the completed simulation of the best probe of the last iteration, i.e. the launch
// at Pitch and Yaw. It is not the last probe evaluated.
func (o *SimulatorOptimizer) Simulator() (*Simulator, error) {
	if err := o.done("simulator"); err != nil {
		return nil, err
	}
	return o.bestProbe, nil
}

package apollo

import (
	"fmt"
	"time"
)

// SimulatorState defines the lifecycle of a Simulator.
type SimulatorState uint8

const (
	// Uninitialized is the state of a Simulator which has not been run.
	Uninitialized SimulatorState = iota
	// Running is the state of a Simulator while it integrates.
	Running
	// Completed is the state of a Simulator after its run.
	Completed
)

func (s SimulatorState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Completed:
		return "completed"
	}
	panic("cannot stringify unknown simulator state")
}

/* Handles the ballistic propagation. */

// Simulator integrates the flight of a projectile until it hits the ground or the iteration cap is reached.
// A Simulator is not safe for concurrent use, but distinct simulators share nothing.
type Simulator struct {
	Options         SimulatorOptions
	Weather         WeatherCondition
	Projectile      Projectile
	InitialVelocity Vector3
	InitialPosition Vector3

	state              SimulatorState
	position, velocity Vector3
	iterations         int
	dt                 float64
	impacted           bool
	start, end         time.Time
	dataPoints         []Vector3
}

// NewSimulator returns a new Simulator. Inputs are copied and not altered by the runs.
func NewSimulator(opts SimulatorOptions, weather WeatherCondition, projectile Projectile, initialVelocity, initialPosition Vector3) *Simulator {
	return &Simulator{
		Options:         opts,
		Weather:         weather,
		Projectile:      projectile,
		InitialVelocity: initialVelocity,
		InitialPosition: initialPosition,
	}
}

// State returns the current state of the simulator.
func (s *Simulator) State() SimulatorState {
	return s.state
}

// Run integrates with the provided time step in seconds. It may be called several times, each run
// starting over from the initial conditions.
func (s *Simulator) Run(dt float64) error {
	if !(dt > 0) {
		return fmt.Errorf("%w (dt=%f)", ErrInvalidStep, dt)
	}
	if s.Options.MaxIterations < 1 {
		return fmt.Errorf("%w (max=%d)", ErrInvalidIterations, s.Options.MaxIterations)
	}
	logger := s.Options.logger()
	body := s.Options.body()

	s.state = Running
	s.iterations = 0
	s.dt = dt
	s.impacted = false
	s.start = time.Now()

	s.position = s.InitialPosition
	s.velocity = s.InitialVelocity
	if s.Options.GenerateDataPoints {
		s.dataPoints = make([]Vector3, 0, 256)
	} else {
		s.dataPoints = nil
	}

	// The weather is constant during the flight.
	wind := s.Weather.Wind.Velocity()
	airDensity := s.Weather.AirCompound().Density()
	mass := s.Projectile.Mass()
	area := s.Projectile.ProjectedArea()
	cd := s.Projectile.DragCoefficient()

	for s.iterations < s.Options.MaxIterations {
		gravity := Vector3{Y: body.ForceOnObject(s.position.Y, mass)}
		drag := Drag(s.velocity, wind, airDensity, area, cd)
		acceleration := gravity.Add(drag).Scale(1 / mass)

		s.velocity = s.velocity.Add(acceleration.Scale(dt))
		s.position = s.position.Add(s.velocity.Scale(dt))
		s.iterations++

		if s.dataPoints != nil {
			s.dataPoints = append(s.dataPoints, s.position)
		}
		if s.position.Y <= 0 {
			s.impacted = true
			break
		}
	}

	s.end = time.Now()
	s.state = Completed

	if !s.impacted {
		logger.Log("level", "warning", "subsys", "sim", "status", "capped", "iterations", s.iterations, "position", s.position)
	}
	logger.Log("level", "debug", "subsys", "sim", "status", "finished", "iterations", s.iterations, "impacted", s.impacted, "position", s.position, "duration", s.end.Sub(s.start))
	s.Options.Metrics.RecordSimulation(body.Name, s.iterations, s.impacted, s.end.Sub(s.start))
	return nil
}

func (s *Simulator) completed(what string) error {
	if s.state != Completed {
		return fmt.Errorf("%s: %w (state=%s)", what, ErrNotCompleted, s.state)
	}
	return nil
}

// Position returns the final position of the projectile.
// It may be slightly below ground level since impact is detected after a step.
func (s *Simulator) Position() (Vector3, error) {
	if err := s.completed("position"); err != nil {
		return Vector3{}, err
	}
	return s.position, nil
}

// Velocity returns the final velocity of the projectile.
func (s *Simulator) Velocity() (Vector3, error) {
	if err := s.completed("velocity"); err != nil {
		return Vector3{}, err
	}
	return s.velocity, nil
}

// Iterations returns the number of steps performed.
func (s *Simulator) Iterations() (int, error) {
	if err := s.completed("iterations"); err != nil {
		return 0, err
	}
	return s.iterations, nil
}

// Impacted returns whether the run ended by hitting the ground rather than by exhausting the iterations.
func (s *Simulator) Impacted() (bool, error) {
	if err := s.completed("impacted"); err != nil {
		return false, err
	}
	return s.impacted, nil
}

// FlightTime returns the simulated time of flight in seconds.
func (s *Simulator) FlightTime() (float64, error) {
	if err := s.completed("flight time"); err != nil {
		return 0, err
	}
	return float64(s.iterations) * s.dt, nil
}

// Duration returns the wall clock time of the last run.
func (s *Simulator) Duration() (time.Duration, error) {
	if err := s.completed("duration"); err != nil {
		return 0, err
	}
	return s.end.Sub(s.start), nil
}

// StartedAt returns when the last run started.
func (s *Simulator) StartedAt() (time.Time, error) {
	if err := s.completed("start"); err != nil {
		return time.Time{}, err
	}
	return s.start, nil
}

// DataPoints returns the position after each step. The returned slice must not be modified.
func (s *Simulator) DataPoints() ([]Vector3, error) {
	if err := s.completed("data points"); err != nil {
		return nil, err
	}
	if s.dataPoints == nil {
		return nil, ErrNoDataPoints
	}
	return s.dataPoints, nil
}

package apollo

import (
	kitlog "github.com/go-kit/log"
	"github.com/skywa04885/apollo/metrics"
)

const (
	// DefaultStep is the default integration step in seconds.
	DefaultStep = 0.01
	// DefaultMaxIterations is the default iteration cap of a simulation.
	DefaultMaxIterations = 10000
)

// SimulatorOptions configures a simulation run.
type SimulatorOptions struct {
	MaxIterations      int               // Maximum number of integration steps.
	GenerateDataPoints bool              // Record every position of the path.
	Body               GravitationalBody // Defaults to Earth.
	Logger             kitlog.Logger     // Defaults to a nop logger. Concurrent optimizers serialize it.
	Metrics            *metrics.Collector
}

// NewSimulatorOptions returns the options for an Earth simulation.
func NewSimulatorOptions(maxIterations int, generateDataPoints bool) SimulatorOptions {
	return SimulatorOptions{MaxIterations: maxIterations, GenerateDataPoints: generateDataPoints, Body: Earth}
}

func (o SimulatorOptions) body() GravitationalBody {
	if o.Body == (GravitationalBody{}) {
		return Earth
	}
	return o.Body
}

func (o SimulatorOptions) logger() kitlog.Logger {
	if o.Logger == nil {
		return kitlog.NewNopLogger()
	}
	return o.Logger
}

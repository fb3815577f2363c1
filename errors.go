package apollo

import "errors"

var (
	// ErrNotCompleted is returned when reading a result before its run has completed.
	ErrNotCompleted = errors.New("apollo: run has not completed")
	// ErrNoDataPoints is returned when reading the path of a run which did not record it.
	ErrNoDataPoints = errors.New("apollo: no data points available")
	// ErrInvalidStep is returned when the time step is not strictly positive.
	ErrInvalidStep = errors.New("apollo: time step must be positive")
	// ErrInvalidIterations is returned when the iteration cap is lower than one.
	ErrInvalidIterations = errors.New("apollo: max iterations must be at least one")
)

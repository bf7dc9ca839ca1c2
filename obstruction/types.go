package obstruction

import (
	"errors"

	"github.com/katalvlaran/gridpatrol/grid"
	"github.com/katalvlaran/gridpatrol/patrol"
)

var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed in.
	ErrNilGrid = errors.New("obstruction: grid is nil")

	// ErrStartOutOfBounds indicates the guard's start cell lies off the grid
	// or its facing is not a valid direction.
	ErrStartOutOfBounds = errors.New("obstruction: start state outside the grid")

	// ErrStartOnObstacle indicates the guard's start cell holds an obstacle.
	ErrStartOnObstacle = errors.New("obstruction: start cell holds an obstacle")
)

// Option configures optional behavior of Search and Evaluate.
type Option func(*Options)

// Options holds configurable parameters for an obstruction search.
type Options struct {
	// Workers is the number of concurrent trial workers. Values ≤ 1 run
	// every trial sequentially on the caller's grid.
	Workers int

	// Patrol is passed to every patrol.Run, baseline included. With
	// Workers > 1 a patrol.WithOnStep hook runs on several goroutines.
	Patrol []patrol.Option

	// OnTrial, if non-nil, is invoked on the calling goroutine once per
	// evaluated candidate, after its obstacle has been removed again.
	OnTrial func(p grid.Position, outcome patrol.Outcome)
}

// DefaultOptions returns sequential Options with default patrol settings.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		Patrol:  nil,
		OnTrial: nil,
	}
}

// WithWorkers returns an Option that runs trials on n goroutines.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithPatrolOptions returns an Option that forwards opts to every walk.
func WithPatrolOptions(opts ...patrol.Option) Option {
	return func(o *Options) {
		o.Patrol = append(o.Patrol, opts...)
	}
}

// WithOnTrial returns an Option that installs fn as a per-trial hook.
func WithOnTrial(fn func(p grid.Position, outcome patrol.Outcome)) Option {
	return func(o *Options) {
		o.OnTrial = fn
	}
}

// Report summarises one obstruction search.
type Report struct {
	// Baseline is the walk on the unmodified grid.
	Baseline patrol.Result

	// Candidates is the number of placements actually simulated.
	Candidates int

	// Excluded counts candidates dropped before any trial: the start cell,
	// existing obstacles, off-grid cells and duplicates.
	Excluded int

	// Skipped counts candidates whose placement was refused mid-search.
	Skipped int

	// Loops counts placements that produced a structural cycle.
	Loops int

	// CapExceeded counts placements that ran out of moves without a repeat.
	CapExceeded int

	// LoopPositions lists the looping placements in row-major order.
	LoopPositions []grid.Position

	// CapPositions lists the cap-exceeded placements in row-major order.
	CapPositions []grid.Position
}

// Visited returns the number of distinct cells of the baseline walk.
func (r Report) Visited() int {
	return r.Baseline.DistinctPositions()
}

// Anomalous reports whether the baseline walk failed to leave the grid.
// The search still runs in that case, but its counts are suspect.
func (r Report) Anomalous() bool {
	return r.Baseline.Outcome != patrol.Exited
}

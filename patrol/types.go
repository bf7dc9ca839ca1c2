// Package patrol defines guard states, walk outcomes, cycle rules and the
// functional options accepted by Run.
package patrol

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpatrol/grid"
)

// ErrUnknownCycleRule is returned by ParseCycleRule for an unrecognised name.
var ErrUnknownCycleRule = errors.New("patrol: unknown cycle rule")

// OriginalMoveCap is the fixed step budget of the heuristic formulation.
// Pass it to WithMoveCap to reproduce that behavior.
const OriginalMoveCap = 6000

// State is one guard configuration: where it stands and where it faces.
type State struct {
	Pos grid.Position
	Dir grid.Direction
}

func (s State) String() string {
	return fmt.Sprintf("%v %v", s.Pos, s.Dir)
}

// Outcome is the terminal classification of a walk.
type Outcome int

const (
	// Exited: the guard's next cell was off the board.
	Exited Outcome = iota
	// Looped: the guard re-entered a state it had already occupied.
	Looped
	// CapExceeded: the move cap ran out with no repeated state observed.
	CapExceeded
)

func (o Outcome) String() string {
	switch o {
	case Exited:
		return "exited"
	case Looped:
		return "looped"
	case CapExceeded:
		return "cap-exceeded"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Cyclic reports whether the outcome carries structural cycle evidence.
func (o Outcome) Cyclic() bool {
	return o == Looped
}

// CycleRule selects the repeat test applied before each state is recorded.
type CycleRule int

const (
	// CycleExact halts as soon as the next state is already visited.
	CycleExact CycleRule = iota
	// CycleLookahead halts when the next state and its successor are both visited.
	CycleLookahead
)

func (r CycleRule) String() string {
	switch r {
	case CycleExact:
		return "exact"
	case CycleLookahead:
		return "lookahead"
	}
	return fmt.Sprintf("CycleRule(%d)", int(r))
}

// ParseCycleRule maps "exact" or "lookahead" (case-insensitive) to a CycleRule.
// The empty string selects CycleExact.
func ParseCycleRule(s string) (CycleRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "exact":
		return CycleExact, nil
	case "lookahead":
		return CycleLookahead, nil
	}
	return 0, fmt.Errorf("patrol: ParseCycleRule(%q): %w", s, ErrUnknownCycleRule)
}

// Option configures optional behavior of Run.
type Option func(*Options)

// Options holds configurable parameters for Run.
type Options struct {
	// MoveCap bounds the number of forward moves. A value ≤ 0 selects
	// DefaultMoveCap for the grid being walked.
	MoveCap int

	// Rule selects the cycle test; defaults to CycleExact.
	Rule CycleRule

	// OnStep, if non-nil, is invoked with each state as it is recorded,
	// starting with the start state.
	OnStep func(State)
}

// DefaultOptions returns Options with a derived move cap, the exact cycle
// rule and no hook.
func DefaultOptions() Options {
	return Options{
		MoveCap: 0,
		Rule:    CycleExact,
		OnStep:  nil,
	}
}

// WithMoveCap returns an Option that bounds forward moves to n.
// n ≤ 0 restores the derived default.
func WithMoveCap(n int) Option {
	return func(o *Options) {
		o.MoveCap = n
	}
}

// WithCycleRule returns an Option that selects the cycle test.
func WithCycleRule(r CycleRule) Option {
	return func(o *Options) {
		o.Rule = r
	}
}

// WithOnStep returns an Option that installs fn as a per-state hook.
func WithOnStep(fn func(State)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// Result captures one completed walk.
type Result struct {
	// Outcome is how the walk halted.
	Outcome Outcome

	// Visited lists every recorded state in the order it was entered,
	// starting with the start state. Each state appears at most once.
	Visited []State

	// Moves counts forward moves; turns in place are not moves.
	Moves int

	// Steps counts transitions of either kind (moves plus turns).
	Steps int
}

// Positions returns the distinct positions of Visited in first-visit order.
// Complexity: O(len(Visited)).
func (r Result) Positions() []grid.Position {
	seen := make(map[grid.Position]struct{}, len(r.Visited))
	out := make([]grid.Position, 0, len(r.Visited))
	for _, s := range r.Visited {
		if _, ok := seen[s.Pos]; ok {
			continue
		}
		seen[s.Pos] = struct{}{}
		out = append(out, s.Pos)
	}

	return out
}

// DistinctPositions returns the number of distinct cells the guard stood on.
func (r Result) DistinctPositions() int {
	return len(r.Positions())
}

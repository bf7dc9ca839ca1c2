package patrol

import (
	"github.com/katalvlaran/gridpatrol/grid"
)

// DefaultMoveCap returns the derived move cap for g: 4×Width×Height, the
// number of distinct states. An exact detector always sees a repeat first.
func DefaultMoveCap(g *grid.Grid) int {
	return 4 * g.Area()
}

// Step applies the movement rule once to s and returns the following state.
// If the cell ahead is off the board, exited is true and next equals s.
// If the cell ahead holds an obstacle, the guard turns right in place.
// Otherwise it moves one cell forward, keeping its facing.
// Step never mutates g. Complexity: O(1).
func Step(g *grid.Grid, s State) (next State, exited bool) {
	ahead := s.Pos.Add(s.Dir)
	if !g.InBounds(ahead) {
		return s, true
	}
	if g.HasObstacle(ahead) {
		return State{Pos: s.Pos, Dir: s.Dir.TurnRight()}, false
	}

	return State{Pos: ahead, Dir: s.Dir}, false
}

// visitSet is a dense (position, direction) membership table.
type visitSet struct {
	g    *grid.Grid
	seen []bool
}

func newVisitSet(g *grid.Grid) *visitSet {
	return &visitSet{g: g, seen: make([]bool, 4*g.Area())}
}

func (v *visitSet) slot(s State) int {
	return v.g.Index(s.Pos)*4 + int(s.Dir)
}

func (v *visitSet) has(s State) bool {
	return v.seen[v.slot(s)]
}

func (v *visitSet) add(s State) {
	v.seen[v.slot(s)] = true
}

// Run walks the guard from start until it exits, repeats a state, or
// exceeds the move cap. Every call starts with an empty visited set and a
// zero move count, so consecutive runs never share state.
//
// Behavior:
//  1. Record start.
//  2. Step. Exit → Exited.
//  3. Apply the cycle rule to the next state. Repeat → Looped.
//  4. Record the next state; a forward move increments Moves.
//  5. Moves > cap → CapExceeded; otherwise continue from 2.
//
// A start position outside g halts immediately as Exited with nothing
// recorded. Run is deterministic and does not mutate g.
// Complexity: O(S) time for S steps, O(W×H) memory.
func Run(g *grid.Grid, start State, opts ...Option) Result {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	limit := o.MoveCap
	if limit <= 0 {
		limit = DefaultMoveCap(g)
	}

	if !g.InBounds(start.Pos) || !start.Dir.Valid() {
		return Result{Outcome: Exited}
	}

	// 1) Record the start state
	seen := newVisitSet(g)
	res := Result{Visited: []State{start}}
	seen.add(start)
	if o.OnStep != nil {
		o.OnStep(start)
	}

	cur := start
	for {
		// 2) Transition
		next, exited := Step(g, cur)
		if exited {
			res.Outcome = Exited
			return res
		}
		res.Steps++
		if next.Pos != cur.Pos {
			res.Moves++
		}

		// 3) Repeat test
		if seen.has(next) && (o.Rule != CycleLookahead || successorSeen(g, seen, next)) {
			res.Outcome = Looped
			return res
		}

		// 4) Record
		seen.add(next)
		res.Visited = append(res.Visited, next)
		if o.OnStep != nil {
			o.OnStep(next)
		}

		// 5) Defensive bound
		if res.Moves > limit {
			res.Outcome = CapExceeded
			return res
		}
		cur = next
	}
}

// successorSeen reports whether the state following s was already recorded.
func successorSeen(g *grid.Grid, seen *visitSet, s State) bool {
	after, exited := Step(g, s)
	return !exited && seen.has(after)
}

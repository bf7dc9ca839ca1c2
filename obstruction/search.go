package obstruction

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/gridpatrol/grid"
	"github.com/katalvlaran/gridpatrol/patrol"
)

// Search runs the baseline walk on g from start and tries one new obstacle
// on every distinct cell it visits, except the start cell.
//
// Behavior:
//  1. Validate g and start.
//  2. Baseline patrol.Run; candidates = its distinct positions.
//  3. Drop the start cell and any existing obstacle from the candidates.
//  4. For each candidate: place, walk from start, tally, remove.
//
// g is restored to its original obstacle set before Search returns,
// including when a trial panics.
// Complexity: O(C × S) time, O(W×H) memory per worker.
func Search(g *grid.Grid, start patrol.State, opts ...Option) (Report, error) {
	if err := validate(g, start); err != nil {
		return Report{}, fmt.Errorf("obstruction: Search: %w", err)
	}
	o := newOptions(opts)

	baseline := patrol.Run(g, start, o.Patrol...)

	return evaluate(g, start, baseline, baseline.Positions(), o), nil
}

// Evaluate runs one trial per position in candidates. The start cell,
// existing obstacles, off-grid cells and duplicates are excluded up front
// and counted in Report.Excluded. The baseline walk is still computed and
// returned in the Report.
func Evaluate(g *grid.Grid, start patrol.State, candidates []grid.Position, opts ...Option) (Report, error) {
	if err := validate(g, start); err != nil {
		return Report{}, fmt.Errorf("obstruction: Evaluate: %w", err)
	}
	o := newOptions(opts)

	baseline := patrol.Run(g, start, o.Patrol...)

	return evaluate(g, start, baseline, candidates, o), nil
}

// Count returns the number of looping placements found by Search.
func Count(g *grid.Grid, start patrol.State, opts ...Option) (int, error) {
	r, err := Search(g, start, opts...)
	if err != nil {
		return 0, err
	}
	return r.Loops, nil
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func validate(g *grid.Grid, start patrol.State) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.InBounds(start.Pos) || !start.Dir.Valid() {
		return fmt.Errorf("%v: %w", start, ErrStartOutOfBounds)
	}
	if g.HasObstacle(start.Pos) {
		return fmt.Errorf("%v: %w", start.Pos, ErrStartOnObstacle)
	}
	return nil
}

// filter removes positions that can never be a new placement.
func filter(g *grid.Grid, start grid.Position, in []grid.Position) (out []grid.Position, excluded int) {
	seen := make(map[grid.Position]struct{}, len(in))
	out = make([]grid.Position, 0, len(in))
	for _, p := range in {
		if _, dup := seen[p]; dup || p == start || !g.InBounds(p) || g.HasObstacle(p) {
			excluded++
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out, excluded
}

// trial places an obstacle at p, walks from start and takes the obstacle
// back out. placed is false if the placement was refused.
func trial(g *grid.Grid, start patrol.State, p grid.Position, popts []patrol.Option) (outcome patrol.Outcome, placed bool) {
	if err := g.PlaceObstacle(p); err != nil {
		return 0, false
	}
	defer g.RemoveObstacle(p)

	return patrol.Run(g, start, popts...).Outcome, true
}

// verdict is the result of one candidate trial.
type verdict struct {
	outcome patrol.Outcome
	placed  bool
}

func evaluate(g *grid.Grid, start patrol.State, baseline patrol.Result, candidates []grid.Position, o Options) Report {
	r := Report{Baseline: baseline}

	// 1) Exclusions
	cands, excluded := filter(g, start.Pos, candidates)
	r.Excluded = excluded

	// 2) Trials
	verdicts := make([]verdict, len(cands))
	if o.Workers > 1 && len(cands) > 1 {
		runParallel(g, start, cands, verdicts, o)
	} else {
		for i, p := range cands {
			out, ok := trial(g, start, p, o.Patrol)
			verdicts[i] = verdict{outcome: out, placed: ok}
			if ok && o.OnTrial != nil {
				o.OnTrial(p, out)
			}
		}
	}

	// 3) Tally in candidate order
	for i, v := range verdicts {
		p := cands[i]
		if !v.placed {
			r.Skipped++
			continue
		}
		if o.Workers > 1 && len(cands) > 1 && o.OnTrial != nil {
			o.OnTrial(p, v.outcome)
		}
		r.Candidates++
		switch v.outcome {
		case patrol.Looped:
			r.Loops++
			r.LoopPositions = append(r.LoopPositions, p)
		case patrol.CapExceeded:
			r.CapExceeded++
			r.CapPositions = append(r.CapPositions, p)
		}
	}
	sortPositions(r.LoopPositions)
	sortPositions(r.CapPositions)

	return r
}

// runParallel fans the candidates out over o.Workers goroutines. Each
// worker owns a private clone of g; verdicts[i] is written by exactly one
// worker.
func runParallel(g *grid.Grid, start patrol.State, cands []grid.Position, verdicts []verdict, o Options) {
	workers := o.Workers
	if workers > len(cands) {
		workers = len(cands)
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		local := g.Clone()
		go func() {
			defer wg.Done()
			for i := range jobs {
				out, ok := trial(local, start, cands[i], o.Patrol)
				verdicts[i] = verdict{outcome: out, placed: ok}
			}
		}()
	}
	for i := range cands {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

func sortPositions(ps []grid.Position) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].Less(ps[j]) })
}

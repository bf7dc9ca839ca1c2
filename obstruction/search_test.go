package obstruction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpatrol/grid"
	"github.com/katalvlaran/gridpatrol/obstruction"
	"github.com/katalvlaran/gridpatrol/patrol"
)

const sample = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

// sampleLoops are the six placements that trap the guard in the sample.
var sampleLoops = []grid.Position{
	{X: 3, Y: 6}, {X: 6, Y: 7}, {X: 7, Y: 7}, {X: 1, Y: 8}, {X: 3, Y: 8}, {X: 7, Y: 9},
}

func mustLayout(t testing.TB, text string) (*grid.Grid, patrol.State) {
	t.Helper()
	l, err := grid.ParseString(text)
	require.NoError(t, err)
	return l.Grid, patrol.State{Pos: l.Start, Dir: l.Facing}
}

//----------------------------------------------------------------------------//
// Search on the sample
//----------------------------------------------------------------------------//

// TestSearch_Sample checks both results of the 10×10 sample in every mode.
func TestSearch_Sample(t *testing.T) {
	cases := []struct {
		name string
		opts []obstruction.Option
	}{
		{"Sequential", nil},
		{"Lookahead", []obstruction.Option{obstruction.WithPatrolOptions(patrol.WithCycleRule(patrol.CycleLookahead))}},
		{"Parallel", []obstruction.Option{obstruction.WithWorkers(4)}},
		{"ManyWorkers", []obstruction.Option{obstruction.WithWorkers(100)}},
		{"OriginalCap", []obstruction.Option{obstruction.WithPatrolOptions(patrol.WithMoveCap(patrol.OriginalMoveCap))}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, start := mustLayout(t, sample)
			before := g.Obstacles()

			r, err := obstruction.Search(g, start, tc.opts...)
			require.NoError(t, err)
			assert.False(t, r.Anomalous())
			assert.Equal(t, 41, r.Visited())
			assert.Equal(t, 6, r.Loops)
			assert.Equal(t, sampleLoops, r.LoopPositions)
			assert.Zero(t, r.CapExceeded)
			assert.Zero(t, r.Skipped)
			assert.Equal(t, 40, r.Candidates) // every visited cell but the start
			assert.Equal(t, 1, r.Excluded)
			assert.Equal(t, before, g.Obstacles())
		})
	}
}

// TestCount returns only the loop tally.
func TestCount(t *testing.T) {
	g, start := mustLayout(t, sample)
	n, err := obstruction.Count(g, start)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

//----------------------------------------------------------------------------//
// Restoration and exclusion
//----------------------------------------------------------------------------//

// TestSearch_RestoresAfterEveryTrial checks the obstacle set between trials.
func TestSearch_RestoresAfterEveryTrial(t *testing.T) {
	g, start := mustLayout(t, sample)
	before := g.Obstacles()

	trials := 0
	hook := func(p grid.Position, _ patrol.Outcome) {
		trials++
		assert.NotEqual(t, start.Pos, p, "start cell must never be tried")
		assert.Equal(t, before, g.Obstacles(), "grid not restored after %v", p)
	}
	r, err := obstruction.Search(g, start, obstruction.WithOnTrial(hook))
	require.NoError(t, err)
	assert.Equal(t, r.Candidates, trials)
}

// TestSearch_RestoresOnPanic: a panicking walk still leaves the grid intact.
func TestSearch_RestoresOnPanic(t *testing.T) {
	g, start := mustLayout(t, sample)
	before := g.Obstacles()

	boom := patrol.WithOnStep(func(patrol.State) {
		if g.ObstacleCount() > len(before) {
			panic("trial failure")
		}
	})
	assert.Panics(t, func() {
		_, _ = obstruction.Search(g, start, obstruction.WithPatrolOptions(boom))
	})
	assert.Equal(t, before, g.Obstacles())
}

// TestEvaluate_Exclusions: start, obstacles, off-grid cells and duplicates never run.
func TestEvaluate_Exclusions(t *testing.T) {
	g, start := mustLayout(t, sample)
	rock := grid.Position{X: 4, Y: 0}
	require.True(t, g.HasObstacle(rock))

	var tried []grid.Position
	hook := func(p grid.Position, _ patrol.Outcome) { tried = append(tried, p) }

	cands := []grid.Position{
		start.Pos,     // start cell
		rock,          // existing obstacle
		{X: -1, Y: 3}, // off grid
		{X: 3, Y: 6},  // loops
		{X: 3, Y: 6},  // duplicate
		{X: 9, Y: 9},  // off the walk, harmless
	}
	r, err := obstruction.Evaluate(g, start, cands, obstruction.WithOnTrial(hook))
	require.NoError(t, err)
	assert.Equal(t, 4, r.Excluded)
	assert.Equal(t, 2, r.Candidates)
	assert.Equal(t, 1, r.Loops)
	assert.Equal(t, []grid.Position{{X: 3, Y: 6}}, r.LoopPositions)
	assert.Equal(t, []grid.Position{{X: 3, Y: 6}, {X: 9, Y: 9}}, tried)
	assert.True(t, g.HasObstacle(rock))
}

// TestSearch_OrderIndependent: reversing the candidate list changes nothing.
func TestSearch_OrderIndependent(t *testing.T) {
	g, start := mustLayout(t, sample)
	base, err := obstruction.Search(g, start)
	require.NoError(t, err)

	cands := base.Baseline.Positions()
	for i, j := 0, len(cands)-1; i < j; i, j = i+1, j-1 {
		cands[i], cands[j] = cands[j], cands[i]
	}
	rev, err := obstruction.Evaluate(g, start, cands)
	require.NoError(t, err)
	assert.Equal(t, base.Loops, rev.Loops)
	assert.Equal(t, base.LoopPositions, rev.LoopPositions)
}

//----------------------------------------------------------------------------//
// Outcomes and anomalies
//----------------------------------------------------------------------------//

// TestSearch_CapExceededIsSeparate: a tiny cap tags trials apart from loops.
func TestSearch_CapExceededIsSeparate(t *testing.T) {
	g, start := mustLayout(t, sample)

	r, err := obstruction.Search(g, start, obstruction.WithPatrolOptions(patrol.WithMoveCap(5)))
	require.NoError(t, err)
	assert.True(t, r.Anomalous())
	assert.Equal(t, patrol.CapExceeded, r.Baseline.Outcome)
	assert.Equal(t, 6, r.Candidates) // seven cells walked before the cap, minus the start
	assert.Zero(t, r.Loops)
	assert.Contains(t, r.CapPositions, grid.Position{X: 4, Y: 4})
	assert.Equal(t, r.CapExceeded, len(r.CapPositions))
}

// TestSearch_LoopingBaseline: the search proceeds and flags the anomaly.
func TestSearch_LoopingBaseline(t *testing.T) {
	g, start := mustLayout(t, ".#..\n...#\n#^..\n..#.\n")

	r, err := obstruction.Search(g, start)
	require.NoError(t, err)
	assert.True(t, r.Anomalous())
	assert.Equal(t, patrol.Looped, r.Baseline.Outcome)
	assert.Equal(t, 3, r.Candidates)
}

// TestSearch_OneByOne: nothing to place on a single-cell board.
func TestSearch_OneByOne(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)

	r, err := obstruction.Search(g, patrol.State{Pos: grid.Position{}, Dir: grid.Up})
	require.NoError(t, err)
	assert.Equal(t, 1, r.Visited())
	assert.Zero(t, r.Candidates)
	assert.Zero(t, r.Loops)
}

// TestSearch_Errors covers input validation.
func TestSearch_Errors(t *testing.T) {
	g, err := grid.New(3, 3, grid.Position{X: 1, Y: 1})
	require.NoError(t, err)

	_, err = obstruction.Search(nil, patrol.State{})
	assert.ErrorIs(t, err, obstruction.ErrNilGrid)

	_, err = obstruction.Search(g, patrol.State{Pos: grid.Position{X: 3, Y: 0}})
	assert.ErrorIs(t, err, obstruction.ErrStartOutOfBounds)

	_, err = obstruction.Search(g, patrol.State{Pos: grid.Position{}, Dir: grid.Direction(9)})
	assert.ErrorIs(t, err, obstruction.ErrStartOutOfBounds)

	_, err = obstruction.Evaluate(g, patrol.State{Pos: grid.Position{X: 1, Y: 1}}, nil)
	assert.ErrorIs(t, err, obstruction.ErrStartOnObstacle)
}

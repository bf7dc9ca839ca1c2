// Package obstruction counts the single-obstacle insertions that turn a
// finite patrol into an infinite one.
//
// What:
//
//   - Search runs the baseline walk, takes every distinct cell it visits
//     (minus the guard's own start cell) as a candidate, and for each one
//     places an obstacle, re-runs patrol.Run from the original start, and
//     removes the obstacle again.
//   - Evaluate does the same over a caller-supplied candidate list.
//   - Count returns only the number of looping placements.
//
// Why:
//
//   - A new obstacle off the baseline path cannot change the walk, so only
//     visited cells need testing.
//   - Every trial is bracketed by PlaceObstacle and a deferred
//     RemoveObstacle, so the caller's grid is restored even if a trial panics.
//
// Concurrency:
//
//   - Trials are independent. WithWorkers(n) spreads them over n goroutines,
//     each walking its own grid.Grid clone. Results do not depend on
//     candidate order or worker count.
//
// Complexity:
//
//   - Time:   O(C × S) for C candidates and S steps per walk (S ≤ 4×W×H).
//   - Memory: O(W×H) per worker.
//
// Errors:
//
//   - ErrNilGrid, ErrStartOutOfBounds, ErrStartOnObstacle: invalid inputs.
//   - Walk outcomes are values in Report, never errors.
package obstruction

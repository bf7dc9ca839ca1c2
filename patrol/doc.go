// Package patrol simulates a guard walking a grid.Grid and classifies the
// walk as finite (the guard leaves the board) or cyclic (the guard comes back
// to a state it already occupied).
//
// What:
//
//   - Step: the pure transition function. Blocked → turn right in place;
//     free → move one cell; off the board → exit.
//   - Run: repeatedly applies Step from a start State, recording every
//     (position, direction) pair in a visited set, until the walk halts.
//   - Outcome: Exited, Looped, or CapExceeded.
//
// Why:
//
//   - The state space is finite (4 × Width × Height), so revisiting any state
//     proves an infinite cycle. The exact rule therefore always classifies
//     a true cycle before the move cap can fire.
//   - The move cap stays as a defensive bound. Hitting it is reported as
//     CapExceeded, never folded into Looped.
//
// Cycle rules:
//
//   - CycleExact (default): halt when the next state is already visited.
//   - CycleLookahead: halt when the next state and its own successor are
//     both already visited. Same classification, kept for callers that want
//     the two-state check.
//
// Complexity:
//
//   - Step: O(1).
//   - Run:  O(S) time for S steps (S ≤ 4×W×H before a repeat), O(W×H) memory.
//
// Options:
//
//   - WithMoveCap(n): cap on forward moves; n ≤ 0 selects DefaultMoveCap.
//   - WithCycleRule(r): CycleExact or CycleLookahead.
//   - WithOnStep(fn): hook invoked with every newly recorded state.
package patrol

// Package gridpatrol simulates a guard patrolling a bounded grid and finds
// the obstacle placements that trap it in an endless loop.
//
// The guard walks forward until the cell ahead is blocked, then turns right
// in place. It either walks off the board or repeats a (position, direction)
// state forever.
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/        — Position, Direction, Grid (bounds + obstacle set) and the text parser
//	patrol/      — the pure Step transition and Run with exact cycle detection
//	obstruction/ — trial-and-restore search over candidate obstacle cells
//
// plus config/ (YAML run settings) and cmd/gridpatrol (the command line).
//
// Quick ASCII example:
//
//	.#..
//	...#
//	#^..
//	..#.
//
// the guard circles the 2×2 ring forever.
//
//	go install github.com/katalvlaran/gridpatrol/cmd/gridpatrol@latest
package gridpatrol

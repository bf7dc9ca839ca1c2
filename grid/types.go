// Package grid defines positions, directions, the Grid itself and
// the sentinel errors shared by its constructors and parser.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrAlreadyOccupied indicates an obstacle already sits on the position.
	ErrAlreadyOccupied = errors.New("grid: position already holds an obstacle")
	// ErrMissingGuard indicates the text contains no guard marker.
	ErrMissingGuard = errors.New("grid: no guard marker found")
	// ErrMultipleGuards indicates the text contains more than one guard marker.
	ErrMultipleGuards = errors.New("grid: more than one guard marker found")
	// ErrInvalidCell indicates a character that is not part of the board alphabet.
	ErrInvalidCell = errors.New("grid: invalid cell character")
)

// Board alphabet.
const (
	CellFree     = '.'
	CellObstacle = '#'
)

// Direction is a facing on the board. Declaration order is clockwise,
// so turning right is a step forward modulo 4.
type Direction uint8

const (
	// Up faces towards row 0.
	Up Direction = iota
	// Right faces towards the last column.
	Right
	// Down faces towards the last row.
	Down
	// Left faces towards column 0.
	Left
)

// directionCount is the number of distinct facings.
const directionCount = 4

// offsets holds the (dx, dy) unit step for each Direction, indexed by value.
var offsets = [directionCount][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// markers maps each Direction to its guard glyph.
var markers = [directionCount]rune{'^', '>', 'v', '<'}

// TurnRight returns the direction ninety degrees clockwise of d:
// Up→Right→Down→Left→Up.
func (d Direction) TurnRight() Direction {
	return (d + 1) % directionCount
}

// Offset returns the unit step (dx, dy) for d. Y grows downward.
func (d Direction) Offset() (dx, dy int) {
	o := offsets[d%directionCount]
	return o[0], o[1]
}

// Marker returns the guard glyph for d.
func (d Direction) Marker() rune {
	return markers[d%directionCount]
}

// Valid reports whether d is one of the four facings.
func (d Direction) Valid() bool {
	return d < directionCount
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection maps a guard glyph ('^', '>', 'v', '<') to its Direction.
func ParseDirection(r rune) (Direction, bool) {
	for d, m := range markers {
		if m == r {
			return Direction(d), true
		}
	}
	return 0, false
}

// Position is a cell coordinate. X is the column, Y is the row.
// It is comparable and may be used as a map key.
type Position struct {
	X, Y int
}

// Add returns p moved one cell in direction d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Offset()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Less orders positions row-major: by Y, then by X.
func (p Position) Less(q Position) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Grid is a Width×Height board with a set of obstacle positions.
// Width and Height never change after construction; the obstacle set is
// reachable only through Grid methods. A Grid is not safe for concurrent
// mutation; use Clone to hand each goroutine its own copy.
type Grid struct {
	Width, Height int
	obstacles     map[Position]struct{}
}

// Layout is a parsed board together with the guard's initial state.
type Layout struct {
	Grid   *Grid
	Start  Position
	Facing Direction
}

package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a textual board from r. Each line is a row (row index = Y,
// column index = X). '#' is an obstacle, '.' a free cell, and one of
// '^' '>' 'v' '<' marks the guard and its initial facing; the guard's cell
// is free. Blank trailing lines and "\r\n" endings are tolerated.
//
// Behavior:
//  1. Split into rows, dropping trailing blank lines.
//  2. Validate the board is non-empty and rectangular.
//  3. Classify every cell, collecting obstacles and the single guard.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrInvalidCell, ErrMissingGuard
// or ErrMultipleGuards, wrapped with the offending line where known.
// Complexity: O(W×H).
func Parse(r io.Reader) (*Layout, error) {
	// 1) Collect rows
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: Parse: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	// 2) Shape checks
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len([]rune(rows[0]))
	for y, row := range rows {
		if n := len([]rune(row)); n != width {
			return nil, fmt.Errorf("grid: Parse line %d: width %d, want %d: %w", y+1, n, width, ErrNonRectangular)
		}
	}

	// 3) Cells
	var (
		obstacles []Position
		start     Position
		facing    Direction
		guards    int
	)
	for y, row := range rows {
		for x, c := range []rune(row) {
			switch c {
			case CellFree:
			case CellObstacle:
				obstacles = append(obstacles, Position{X: x, Y: y})
			default:
				d, ok := ParseDirection(c)
				if !ok {
					return nil, fmt.Errorf("grid: Parse line %d column %d: %q: %w", y+1, x+1, c, ErrInvalidCell)
				}
				guards++
				if guards > 1 {
					return nil, fmt.Errorf("grid: Parse line %d column %d: %w", y+1, x+1, ErrMultipleGuards)
				}
				start, facing = Position{X: x, Y: y}, d
			}
		}
	}
	if guards == 0 {
		return nil, ErrMissingGuard
	}

	g, err := New(width, len(rows), obstacles...)
	if err != nil {
		return nil, err
	}

	return &Layout{Grid: g, Start: start, Facing: facing}, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Layout, error) {
	return Parse(strings.NewReader(s))
}

// String renders the grid in the board alphabet, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.HasObstacle(Position{X: x, Y: y}) {
				b.WriteRune(CellObstacle)
			} else {
				b.WriteRune(CellFree)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// String renders the layout with the guard marker at its start cell.
func (l *Layout) String() string {
	rows := strings.Split(strings.TrimSuffix(l.Grid.String(), "\n"), "\n")
	row := []rune(rows[l.Start.Y])
	row[l.Start.X] = l.Facing.Marker()
	rows[l.Start.Y] = string(row)

	return strings.Join(rows, "\n") + "\n"
}

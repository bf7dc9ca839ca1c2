package grid

import (
	"fmt"
	"sort"
)

// New constructs a width×height Grid holding the given obstacles.
// Duplicate obstacles collapse into one.
// Returns ErrEmptyGrid if either dimension is below 1 and
// ErrOutOfBounds if any obstacle lies outside the grid.
// Complexity: O(k) for k obstacles.
func New(width, height int, obstacles ...Position) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		Width:     width,
		Height:    height,
		obstacles: make(map[Position]struct{}, len(obstacles)),
	}
	for _, p := range obstacles {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("grid: New obstacle %v in %dx%d: %w", p, width, height, ErrOutOfBounds)
		}
		g.obstacles[p] = struct{}{}
	}

	return g, nil
}

// InBounds reports whether p lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// HasObstacle reports whether p holds an obstacle.
// Complexity: O(1).
func (g *Grid) HasObstacle(p Position) bool {
	_, ok := g.obstacles[p]
	return ok
}

// PlaceObstacle inserts an obstacle at p. On failure the grid is unchanged:
// ErrOutOfBounds if p is outside the grid, ErrAlreadyOccupied if p already
// holds an obstacle.
// Complexity: O(1).
func (g *Grid) PlaceObstacle(p Position) error {
	if !g.InBounds(p) {
		return fmt.Errorf("grid: PlaceObstacle %v: %w", p, ErrOutOfBounds)
	}
	if g.HasObstacle(p) {
		return fmt.Errorf("grid: PlaceObstacle %v: %w", p, ErrAlreadyOccupied)
	}
	g.obstacles[p] = struct{}{}

	return nil
}

// RemoveObstacle deletes the obstacle at p. It is a no-op if p holds none.
// Complexity: O(1).
func (g *Grid) RemoveObstacle(p Position) {
	delete(g.obstacles, p)
}

// ObstacleCount returns the number of obstacles currently on the grid.
func (g *Grid) ObstacleCount() int {
	return len(g.obstacles)
}

// Area returns Width×Height.
func (g *Grid) Area() int {
	return g.Width * g.Height
}

// Obstacles returns a row-major sorted snapshot of the obstacle set.
// The caller owns the returned slice.
// Complexity: O(k log k).
func (g *Grid) Obstacles() []Position {
	out := make([]Position, 0, len(g.obstacles))
	for p := range g.obstacles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Clone returns a deep copy of g. Mutating the copy never affects g.
// Complexity: O(k).
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		Width:     g.Width,
		Height:    g.Height,
		obstacles: make(map[Position]struct{}, len(g.obstacles)),
	}
	for p := range g.obstacles {
		cp.obstacles[p] = struct{}{}
	}

	return cp
}

// Index maps p to its row-major index y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{X: idx % g.Width, Y: idx / g.Width}
}

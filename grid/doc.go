// Package grid models the static board a guard patrols: a rectangular
// area of Width×Height cells plus a set of obstacle positions.
//
// What:
//
//   - Position is a comparable (X, Y) value; Y grows downward.
//   - Direction is one of Up, Right, Down, Left, declared in clockwise order.
//   - Grid answers the two questions a patrol needs: InBounds and HasObstacle.
//   - PlaceObstacle / RemoveObstacle let a search insert one hypothetical
//     obstacle and take it back out.
//   - Parse reads the textual board ('#' obstacle, '.' free, '^' '>' 'v' '<'
//     guard) into a Layout.
//
// Why:
//
//   - Keep the obstacle set private so every mutation goes through one API.
//   - Clone gives concurrent callers their own copy instead of a shared set.
//
// Complexity:
//
//   - InBounds, HasObstacle, PlaceObstacle, RemoveObstacle: O(1).
//   - Clone, Obstacles: O(k) for k obstacles.
//   - Parse: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfBounds: position outside [0,Width)×[0,Height).
//   - ErrAlreadyOccupied: PlaceObstacle on an existing obstacle.
//   - ErrMissingGuard, ErrMultipleGuards, ErrInvalidCell: parse failures.
package grid

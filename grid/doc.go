// Package grid models a rectangular maze of passable and blocked cells
// and adapts it to the search and core packages.
//
// What:
//
//   - Grid wraps a rectangular field with optional blocked cells.
//   - Parse builds a Grid from an ASCII picture ('#' marks a wall).
//   - Successors yields the passable orthogonal (or diagonal, with
//     WithDiagonals) neighbors of a cell, ready for search.BFS,
//     search.DFS, and search.AStar.
//   - Manhattan and Euclidean produce admissible heuristics for AStar.
//   - ToWeightedGraph converts the maze into a *core.WeightedGraph with
//     unit edge weights for Dijkstra or spanning-tree work.
//
// Why:
//
//   - Mazes and game maps are the canonical pathfinding playground; the
//     adapters here spare every caller the same bounds-and-walls
//     boilerplate.
//
// Complexity:
//
//   - Successors: O(1) per call (at most 8 candidate neighbors).
//   - ToWeightedGraph: O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: picture rows of differing lengths.
//   - ErrCellOutOfRange: a blocked cell lies outside the field.
package grid

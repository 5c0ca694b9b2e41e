// Package grid treats an N-dimensional array of labels as a regular grid
// graph with axis-aligned (von Neumann) adjacency.
//
// What:
//
//   - Shape describes the spatial extents (S1, …, SN) of a grid; positions
//     are addressed by row-major index (last axis varies fastest).
//   - Labels is the mutable label grid shared by the move-making
//     minimizers in package fastmin. It may wrap caller-owned storage so
//     that repeated runs resume from a previous state.
//   - ForEachPair enumerates every axis-aligned neighbor pair exactly once;
//     ForEachNeighbor enumerates the up to 2·N neighbors of one position.
//   - Regions labels the connected regions of equal label.
//
// Complexity:
//
//   - Index / Coordinate:  O(N).
//   - ForEachPair:         O(|S|·N).
//   - Regions:             O(|S|·N), Memory: O(|S|).
//
// Errors:
//
//   - ErrEmptyShape: shape has no axes or a non-positive extent.
//   - ErrDataLength: backing slice length disagrees with the shape.
//   - ErrOutOfRange: coordinate or index outside the grid.
package grid

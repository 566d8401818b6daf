// SPDX-License-Identifier: MIT
// Package matrix provides the read-mostly distance tables consumed by the
// dualtour solvers.
//
// The package is intentionally small:
//
//   - Matrix    — minimal interface (Rows/Cols/At/Set/Clone) so tests and
//     callers may substitute their own implementations.
//   - Dense     — concrete row-major float64 matrix, the default backend.
//   - NewEuclidean — N×N rounded-Euclidean distance table from 2D points.
//   - ValidateDistances — structural contract for distance tables.
//
// Design:
//   - Deterministic, side-effect free constructors.
//   - No logging, no panics on user input — only sentinel errors from errors.go.
//   - O(1) accessors; O(n²) builders/validators; no hidden allocations.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

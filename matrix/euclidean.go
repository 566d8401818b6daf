// SPDX-License-Identifier: MIT
// Package matrix: rounded-Euclidean distance table builder and the structural
// validator for distance tables.
//
// NewEuclidean implements the classic TSPLIB EUC_2D convention: per-pair
// Euclidean distance rounded to the nearest integer, zero diagonal, symmetric
// by construction. ValidateDistances re-checks the contract for tables built
// elsewhere (tests, custom Matrix implementations).
package matrix

import "math"

// distTol is the structural tolerance for symmetry/diagonal checks.
const distTol = 1e-9

// Point is a 2D city coordinate.
type Point struct {
	X float64
	Y float64
}

// NewEuclidean builds the N×N rounded-Euclidean distance table over pts.
//
// Contracts:
//   - len(pts) >= 1; otherwise ErrBadShape.
//   - Result is symmetric with a zero diagonal (by construction).
//   - Entries are math.Round(sqrt(dx²+dy²)) per the EUC_2D convention.
//
// Complexity: O(n²) time, O(n²) space.
func NewEuclidean(pts []Point) (*Dense, error) {
	n := len(pts)
	if n < 1 {
		return nil, ErrBadShape
	}

	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j   int     // point indices
		dx, dy float64 // coordinate differences
		w      float64 // rounded distance for the pair
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dx = pts[i].X - pts[j].X
			dy = pts[i].Y - pts[j].Y
			w = math.Round(math.Sqrt(dx*dx + dy*dy))
			// Write both triangles; the diagonal stays at its zero fill.
			d.data[i*n+j] = w
			d.data[j*n+i] = w
		}
	}
	return d, nil
}

// ValidateDistances enforces the distance-table contract on any Matrix:
//   - non-nil, square, n >= 1,
//   - finite entries (no NaN/±Inf),
//   - diagonal ~0 within tolerance,
//   - no negative entries,
//   - symmetric within tolerance.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²) time, O(1) space.
func ValidateDistances(m Matrix) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	var (
		nr = m.Rows()
		nc = m.Cols()
	)
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	n := nr

	var (
		i, j     int     // loop indices
		aij, aji float64 // matrix entries a[i][j] and a[j][i]
		abs      float64 // scratch for |value|
		err      error
	)

	// Diagonal: a_ii ~ 0 within tolerance, finite.
	for i = 0; i < n; i++ {
		aij, err = m.At(i, i)
		if err != nil {
			return 0, ErrIndexOutOfBounds
		}
		if math.IsNaN(aij) || math.IsInf(aij, 0) {
			return 0, ErrNaNInf
		}
		abs = aij
		if abs < 0 {
			abs = -abs
		}
		if abs > distTol {
			return 0, ErrNonZeroDiagonal
		}
	}

	// Off-diagonal scan: finiteness, non-negativity, symmetry.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, err = m.At(i, j)
			if err != nil {
				return 0, ErrIndexOutOfBounds
			}
			aji, err = m.At(j, i)
			if err != nil {
				return 0, ErrIndexOutOfBounds
			}
			if math.IsNaN(aij) || math.IsInf(aij, 0) || math.IsNaN(aji) || math.IsInf(aji, 0) {
				return 0, ErrNaNInf
			}
			if aij < 0 || aji < 0 {
				return 0, ErrNegativeWeight
			}
			abs = aij - aji
			if abs < 0 {
				abs = -abs
			}
			if abs > distTol {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}

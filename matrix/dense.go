// SPDX-License-Identifier: MIT
// Package matrix: concrete row-major implementation.
//
// Dense is a flat-buffer float64 matrix (offset = i*c + j). It is the default
// backend for distance tables: cache-friendly reads, bounds-checked public
// accessors, deep Clone. No numeric policy is applied here; distance-table
// semantics (symmetry, zero diagonal, non-negativity) live in
// ValidateDistances so that Dense stays a plain container.
package matrix

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for interface conformance.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Contracts:
//   - rows > 0 and cols > 0; otherwise ErrBadShape.
//
// Complexity: O(r*c) time and space.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns. Complexity: O(1).
func (d *Dense) Cols() int { return d.c }

// At retrieves the element at (i, j) with bounds checking.
//
// Complexity: O(1).
func (d *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return 0, ErrIndexOutOfBounds
	}
	return d.data[i*d.c+j], nil
}

// Set assigns v at (i, j) with bounds checking.
//
// Complexity: O(1).
func (d *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= d.r || j < 0 || j >= d.c {
		return ErrIndexOutOfBounds
	}
	d.data[i*d.c+j] = v
	return nil
}

// Clone returns an independent deep copy.
//
// Complexity: O(r*c).
func (d *Dense) Clone() Matrix {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)
	return &Dense{r: d.r, c: d.c, data: cp}
}

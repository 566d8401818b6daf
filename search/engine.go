// Package search - shared engine state for the three strategies.
//
// An engine bundles the prefetched distance table, the mutable solution, and
// the acceptance tolerance. Distances are linearized into a dense 1D buffer
// w[u*n + v] once per run to remove interface indirection from the hot
// enumeration loops (every strategy reads distances orders of magnitude more
// often than it mutates the solution).
package search

import "dualtour/matrix"

// engine carries the per-run state shared by enumeration, application, and
// the iteration policies.
type engine struct {
	n   int       // number of cities
	w   []float64 // linearized distances: w[u*n+v] == D[u][v]
	sol *Solution // the solution under mutation (exclusively owned)
	eps float64   // acceptance tolerance: improving iff Δ < −eps
}

// at is the hot-path distance accessor with zero allocations.
func (e *engine) at(u, v int) float64 { return e.w[u*e.n+v] }

// newEngine prefetches dist into the linear buffer and wires the solution.
// The matrix has already passed matrix.ValidateDistances; any read failure
// here still maps to ErrInvalidInstance rather than panicking.
//
// Complexity: O(n²) time and space.
func newEngine(dist matrix.Matrix, sol *Solution, eps float64) (*engine, error) {
	n := sol.Len()
	e := &engine{n: n, w: make([]float64, n*n), sol: sol, eps: eps}

	var (
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x, err = dist.At(i, j)
			if err != nil {
				return nil, ErrInvalidInstance
			}
			e.w[i*n+j] = x
		}
	}
	return e, nil
}

// Package search - cost utilities shared by the strategies and callers.
//
// Design:
//   - Strict sentinels on invalid input; no panics.
//   - Stable summation: results rounded to 1e-9 to avoid cross-platform FP
//     noise leaking into comparisons.
//   - Degenerate tours are legal: 0- and 1-city tours have no edges and cost
//     zero; a 2-city tour costs D[a,b] + D[b,a] (both directions of the only
//     edge pair, per the closed-cycle definition).
//
// Complexity: O(n) for a tour of n cities, O(1) extra space.
package search

import (
	"math"

	"dualtour/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// CycleCost sums the closed-cycle edge costs of a single tour.
// Tours with fewer than two cities cost zero and perform no matrix reads.
//
// Contract: every city index must be valid for dist; otherwise
// ErrInvalidInstance.
//
// Complexity: O(len(tour)).
func CycleCost(dist matrix.Matrix, tour []int) (float64, error) {
	n := len(tour)
	if n < 2 {
		return 0, nil
	}
	if dist == nil {
		return 0, ErrInvalidInstance
	}

	var (
		sum  float64
		i    int
		u, v int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		u = tour[i]
		v = tour[(i+1)%n]
		w, err = dist.At(u, v)
		if err != nil {
			return 0, ErrInvalidInstance
		}
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return 0, ErrInvalidInstance
		}
		sum += w
	}
	return round1e9(sum), nil
}

// TotalCost sums both tours' closed-cycle costs — the objective value of a
// two-tour solution. Used by callers and tests to validate runs and by
// reporting layers to display results.
//
// Complexity: O(n).
func TotalCost(dist matrix.Matrix, sol *Solution) (float64, error) {
	if sol == nil {
		return 0, ErrInvalidSolution
	}

	var (
		total float64
		k     int
		c     float64
		err   error
	)
	for k = 0; k < 2; k++ {
		c, err = CycleCost(dist, sol.tours[k])
		if err != nil {
			return 0, err
		}
		total += c
	}
	return round1e9(total), nil
}

// Package search - move enumeration: full and candidate-restricted.
//
// Full enumeration is O(n²) over edge pairs per tour plus O(n·m) over
// cross-tour city pairs; it feeds Steepest and seeds the Memory strategy.
// Candidate enumeration precomputes each city's k nearest neighbors once per
// run and, per iteration, considers only the move type applicable to each
// (city, neighbor) pair: an edge swap when they share a tour, a node swap
// otherwise — O(n·k) per pass.
package search

import "sort"

// improvingMoves performs full enumeration and returns every move with
// Δ < −eps. Order is deterministic: tour 0 edge swaps, tour 1 edge swaps,
// then node swaps in row-major (i,j) order.
//
// Complexity: O(n²) time, output-sized space.
func (e *engine) improvingMoves() []Move {
	var out []Move

	// Edge swaps within each tour (needs ≥ 4 cities for two disjoint edges).
	var (
		k, i, j int
		mv      Move
		ok      bool
	)
	for k = 0; k < 2; k++ {
		n := len(e.sol.tours[k])
		if n < 4 {
			continue
		}
		for i = 0; i < n-1; i++ {
			for j = i + 2; j < n; j++ {
				if i == 0 && j == n-1 {
					continue // wrap-adjacent edges share an endpoint
				}
				if mv, ok = e.edgeSwapAt(k, i, j); ok && mv.Delta < -e.eps {
					out = append(out, mv)
				}
			}
		}
	}

	// Node swaps across the tours.
	var (
		n0 = len(e.sol.tours[0])
		n1 = len(e.sol.tours[1])
	)
	for i = 0; i < n0; i++ {
		for j = 0; j < n1; j++ {
			if mv, ok = e.makeNodeSwap(0, i, 1, j); ok && mv.Delta < -e.eps {
				out = append(out, mv)
			}
		}
	}
	return out
}

// nearestTable returns, for each city, the indices of its k nearest cities
// by distance (self excluded), computed once per run. Ties break on the
// smaller index for determinism.
//
// Complexity: O(n² log n) time, O(n·k) space.
func (e *engine) nearestTable(k int) [][]int {
	n := e.n
	if k > n-1 {
		k = n - 1
	}
	if k < 0 {
		k = 0
	}

	table := make([][]int, n)
	idx := make([]int, 0, n-1)

	var (
		a, b int
	)
	for a = 0; a < n; a++ {
		idx = idx[:0]
		for b = 0; b < n; b++ {
			if b != a {
				idx = append(idx, b)
			}
		}
		u := a // capture for the comparator
		sort.SliceStable(idx, func(p, q int) bool {
			return e.at(u, idx[p]) < e.at(u, idx[q])
		})
		table[a] = append([]int(nil), idx[:k]...)
	}
	return table
}

// bestCandidateMove scans all cities and their k nearest neighbors once,
// returning the best improving move seen (ok=false at a candidate-local
// optimum). For a same-tour pair (a,b) two 2-opt constructions are probed:
// removing the edges leaving both positions, and removing (a,aNext) together
// with (bPrev,b). Cross-tour pairs probe the node exchange.
//
// Complexity: O(n·k) time, O(1) space.
func (e *engine) bestCandidateMove(closest [][]int) (Move, bool) {
	var (
		best      Move
		bestDelta = -e.eps // any winner must beat the tolerance
		found     bool
	)

	var (
		a, b     int
		t1, t2   int // tours holding a and b
		i, j     int // positions of a and b
		mv       Move
		ok       bool
		aNext    int
		bPrev    int
		delta    float64
	)
	for a = 0; a < e.n; a++ {
		t1, i, _ = e.sol.Find(a)
		for _, b = range closest[a] {
			t2, j, _ = e.sol.Find(b)

			if t1 == t2 {
				t := e.sol.tours[t1]
				n := len(t)
				if n < 4 {
					continue
				}

				// Edges leaving positions i and j.
				if mv, ok = e.edgeSwapAt(t1, i, j); ok && mv.Delta < bestDelta {
					best, bestDelta, found = mv, mv.Delta, true
				}

				// Second pairing: remove (a,aNext) and (bPrev,b).
				aNext = t[(i+1)%n]
				bPrev = t[(j-1+n)%n]
				delta = e.deltaEdgeSwap(a, aNext, bPrev, b)
				if delta < bestDelta {
					best = Move{Kind: EdgeSwap, Delta: delta, A: a, B: aNext, C: bPrev, D: b}
					bestDelta = delta
					found = true
				}
				continue
			}

			if mv, ok = e.makeNodeSwap(t1, i, t2, j); ok && mv.Delta < bestDelta {
				best, bestDelta, found = mv, mv.Delta, true
			}
		}
	}
	return best, found
}

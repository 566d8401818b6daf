// Package search - CandidateRestricted strategy.
//
// Design:
//   - A k-nearest-neighbor table is computed once per run. Each iteration
//     walks every (city, close-neighbor) pair, probes only the move type the
//     pair admits, and applies the best improving move seen.
//   - Short edges dominate good tours, so restricting attention to close
//     pairs keeps most of the improvement at a fraction of Steepest's cost.
//     The local optimum reached may be weaker: pairs outside the table are
//     never considered. That trade-off is the point of the strategy.
//
// Contracts:
//   - Deterministic for a fixed k: the neighbor table breaks distance ties
//     on the smaller city index.
//
// Complexity: O(n² log n) once for the table, then O(n·k) per iteration.
package search

// runCandidate descends over the k-nearest-restricted neighborhood until a
// full candidate pass finds no improving move.
func (e *engine) runCandidate(k int) (int, error) {
	closest := e.nearestTable(k)

	var (
		iterations int // applied moves
		mv         Move
		ok         bool
	)
	for {
		if mv, ok = e.bestCandidateMove(closest); !ok {
			return iterations, nil
		}
		if err := e.apply(mv); err != nil {
			return iterations, err
		}
		iterations++
	}
}

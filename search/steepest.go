// Package search - Steepest strategy.
//
// Design:
//   - Every iteration enumerates the complete move catalog (edge swaps in
//     both tours, node swaps across them) and applies the single move with
//     the most negative delta.
//   - Termination: no move with Δ < −eps exists. Exhaustiveness makes the
//     final state a true local optimum of the full neighborhood: one more
//     full scan finds nothing.
//
// Contracts:
//   - Deterministic: identical instance + identical initial solution give an
//     identical trajectory. Ties on delta resolve to the first move in
//     enumeration order.
//
// Complexity: O(n²) per iteration.
package search

// runSteepest descends until no improving move remains, returning the number
// of applied moves.
func (e *engine) runSteepest() (int, error) {
	var (
		iterations int     // applied moves
		best       Move    // best move of the current pass
		bestDelta  float64 // its delta
		found      bool
	)
	for {
		found = false
		for _, mv := range e.improvingMoves() {
			if !found || mv.Delta < bestDelta {
				best, bestDelta, found = mv, mv.Delta, true
			}
		}
		if !found {
			return iterations, nil
		}
		// Moves come straight from the current state; application cannot go
		// stale within the same pass.
		if err := e.apply(best); err != nil {
			return iterations, err
		}
		iterations++
	}
}

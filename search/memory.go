// Package search - MemoryAssisted strategy.
//
// Design:
//   - A MoveList of improving moves is built once by full enumeration and
//     then carried across iterations, sorted ascending by delta with
//     set-based deduplication.
//   - Staleness is tolerated, never eagerly purged: each iteration scans the
//     list in order and re-checks every entry against the current solution,
//     applying the first one that still holds. An EdgeSwap holds when both
//     named edges exist as consecutive pairs (either orientation) in the
//     same tour; a NodeSwap holds when both cities still live in their
//     recorded tours.
//   - After applying, only moves touching the affected cities (the move's
//     own cities plus their current tour neighbors) are regenerated and
//     merged back in, bounding per-iteration discovery to O(A·n) for A
//     affected cities instead of a full O(n²) rescan.
//
// Contracts:
//   - A list entry is never applied without the validity check of the same
//     iteration; entries that fail the check stay in the list and may become
//     valid again later.
package search

import "sort"

// moveList keeps moves ascending by delta and rejects duplicates.
type moveList struct {
	moves []Move
	seen  map[Move]struct{}
}

func newMoveList(initial []Move) *moveList {
	ml := &moveList{seen: make(map[Move]struct{}, len(initial))}
	for _, mv := range initial {
		ml.insert(mv)
	}
	return ml
}

// insert places mv at its sorted position unless an identical move is
// already present.
func (ml *moveList) insert(mv Move) {
	if _, dup := ml.seen[mv]; dup {
		return
	}
	ml.seen[mv] = struct{}{}
	i := sort.Search(len(ml.moves), func(k int) bool {
		return ml.moves[k].Delta >= mv.Delta
	})
	ml.moves = append(ml.moves, Move{})
	copy(ml.moves[i+1:], ml.moves[i:])
	ml.moves[i] = mv
}

// removeAt drops the entry at index i so an equal move may be rediscovered
// later.
func (ml *moveList) removeAt(i int) {
	delete(ml.seen, ml.moves[i])
	ml.moves = append(ml.moves[:i], ml.moves[i+1:]...)
}

// isValid reports whether mv still corresponds to the current solution.
func (e *engine) isValid(mv Move) bool {
	switch mv.Kind {
	case EdgeSwap:
		for k := 0; k < 2; k++ {
			if e.sol.hasEdge(k, mv.A, mv.B) != 0 && e.sol.hasEdge(k, mv.C, mv.D) != 0 {
				return true
			}
		}
		return false
	case NodeSwap:
		k1, _, ok1 := e.sol.Find(mv.Y1)
		k2, _, ok2 := e.sol.Find(mv.Y2)
		return ok1 && ok2 && k1 == mv.Tour1 && k2 == mv.Tour2
	}
	return false
}

// affectedCities collects the cities whose incident edges changed when mv
// was applied: the move's own cities plus their current tour neighbors.
// Called after application, so neighbor lookups see the new configuration.
func (e *engine) affectedCities(mv Move) map[int]struct{} {
	affected := make(map[int]struct{}, 16)
	add := func(v int) {
		k, pos, ok := e.sol.Find(v)
		if !ok {
			return
		}
		affected[v] = struct{}{}
		prev, next := e.sol.neighbors(k, pos)
		affected[prev] = struct{}{}
		affected[next] = struct{}{}
	}
	switch mv.Kind {
	case EdgeSwap:
		add(mv.A)
		add(mv.B)
		add(mv.C)
		add(mv.D)
	case NodeSwap:
		add(mv.X1)
		add(mv.Y1)
		add(mv.Z1)
		add(mv.X2)
		add(mv.Y2)
		add(mv.Z2)
	}
	return affected
}

// movesAround regenerates improving moves that involve the given cities:
// 2-opt exchanges pairing each city's two incident edges against every other
// edge of its tour, plus node exchanges against every city of the other tour.
func (e *engine) movesAround(affected map[int]struct{}) []Move {
	var out []Move

	var (
		tourIdx, pos int     // location of the affected city
		prev, next   int     // its current tour neighbors
		k            int     // scan index over the tour's edges
		p, q         int     // edge (p,q) = (t[k], t[k+1])
		delta        float64 // candidate exchange delta
		mv           Move
		ok           bool
	)
	for v := range affected {
		tourIdx, pos, ok = e.sol.Find(v)
		if !ok {
			continue
		}
		t := e.sol.tours[tourIdx]
		n := len(t)

		if n >= 4 {
			prev, next = e.sol.neighbors(tourIdx, pos)
			for k = 0; k < n; k++ {
				p, q = t[k], t[(k+1)%n]
				// (prev,v) against (p,q); skip the edges incident to v.
				if k != pos && k != (pos-1+n)%n {
					if delta = e.deltaEdgeSwap(prev, v, p, q); delta < -e.eps {
						out = append(out, Move{Kind: EdgeSwap, Delta: delta, A: prev, B: v, C: p, D: q})
					}
				}
				// (v,next) against (p,q).
				if k != pos && k != (pos+1)%n {
					if delta = e.deltaEdgeSwap(v, next, p, q); delta < -e.eps {
						out = append(out, Move{Kind: EdgeSwap, Delta: delta, A: v, B: next, C: p, D: q})
					}
				}
			}
		}

		other := 1 - tourIdx
		for k = 0; k < len(e.sol.tours[other]); k++ {
			if mv, ok = e.makeNodeSwap(tourIdx, pos, other, k); ok && mv.Delta < -e.eps {
				out = append(out, mv)
			}
		}
	}
	return out
}

// runMemory descends using the persistent MoveList until it holds no move
// valid for the current solution.
func (e *engine) runMemory() (int, error) {
	ml := newMoveList(e.improvingMoves())

	var iterations int // applied moves
	for {
		picked := -1
		for i := range ml.moves {
			if e.isValid(ml.moves[i]) {
				picked = i
				break
			}
		}
		if picked < 0 {
			return iterations, nil
		}

		mv := ml.moves[picked]
		ml.removeAt(picked)
		if err := e.apply(mv); err != nil {
			// The validity check above rules this out for well-formed lists;
			// drop the entry and keep going, matching the local-recovery rule.
			continue
		}
		iterations++
		for _, fresh := range e.movesAround(e.affectedCities(mv)) {
			ml.insert(fresh)
		}
	}
}

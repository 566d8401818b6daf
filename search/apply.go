package search

// apply executes mv against the engine's solution, mutating it in place.
//
// Cities are re-located by value before anything changes, so a move recorded
// against an older state either lands correctly or is rejected whole:
//   - EdgeSwap whose anchor cities drifted into different tours returns
//     ErrCrossCycleEdge;
//   - NodeSwap whose cities left their recorded tours returns ErrStaleMove.
//
// On error the solution is untouched. Strategies treat both errors as "skip
// this candidate", never as run failure.
func (e *engine) apply(mv Move) error {
	switch mv.Kind {
	case EdgeSwap:
		k1, i, ok1 := e.sol.Find(mv.A)
		k2, j, ok2 := e.sol.Find(mv.C)
		if !ok1 || !ok2 || k1 != k2 {
			return ErrCrossCycleEdge
		}
		n := len(e.sol.tours[k1])
		e.sol.reverseSegment(k1, (i+1)%n, j)
		return nil

	case NodeSwap:
		k1, i, ok1 := e.sol.Find(mv.Y1)
		k2, j, ok2 := e.sol.Find(mv.Y2)
		if !ok1 || !ok2 || k1 != mv.Tour1 || k2 != mv.Tour2 {
			return ErrStaleMove
		}
		e.sol.swapNodes(k1, i, k2, j)
		return nil

	default:
		return ErrStaleMove
	}
}

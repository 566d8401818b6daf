// Package search - the move model and its exact delta algebra.
//
// A Move is a plain immutable value referencing city indices, never
// structural links into a tour: validity is always re-derived by index
// lookup at application/check time, which removes dangling-reference hazards
// when tours mutate underneath a stored move (the Memory strategy relies on
// this).
//
// Delta formulas (D symmetric):
//
//	EdgeSwap(a,b,c,d): Δ = D[a,c] + D[b,d] − D[a,b] − D[c,d]
//	NodeSwap(x1,y1,z1, x2,y2,z2):
//	  Δ = D[x1,y2]+D[z1,y2]−D[x1,y1]−D[z1,y1]
//	    + D[x2,y1]+D[z2,y1]−D[x2,y2]−D[z2,y2]
//
// Degenerate node swaps: when one tour is a singleton only the non-trivial
// tour's edges change (linear one-sided formula); swapping two singletons
// changes nothing (Δ = 0).
//
// Infeasible moves (coincident endpoints, empty tours) report Δ = +Inf: a
// value that never wins a minimum, so enumeration filters them for free.
package search

import "math"

// MoveKind tags the Move variant.
type MoveKind uint8

const (
	// EdgeSwap removes two edges of one tour and reconnects with a segment
	// reversal (2-opt).
	EdgeSwap MoveKind = iota

	// NodeSwap exchanges one city between the two tours.
	NodeSwap
)

// Move is a tagged value carrying its precomputed delta and a variant
// payload. The struct is comparable; the Memory strategy's deduplication
// uses Move values directly as map keys.
type Move struct {
	Kind  MoveKind
	Delta float64

	// EdgeSwap payload: the two removed edges (A,B) and (C,D), recorded in
	// the tour orientation seen at generation time.
	A, B, C, D int

	// NodeSwap payload: exchange Y1 (in Tour1, neighbors X1,Z1) with Y2
	// (in Tour2, neighbors X2,Z2).
	Tour1, Tour2           int
	X1, Y1, Z1, X2, Y2, Z2 int
}

// infeasible is the sentinel delta for moves that must never be applied.
var infeasible = math.Inf(1)

// deltaEdgeSwap computes the 2-opt delta for removing edges (a,b),(c,d) and
// installing (a,c),(b,d). Returns +Inf unless a,b,c,d are four distinct
// cities (shared endpoints make the exchange degenerate).
//
// Complexity: O(1).
func (e *engine) deltaEdgeSwap(a, b, c, d int) float64 {
	if a == c || a == d || b == c || b == d {
		return infeasible
	}
	return e.at(a, c) + e.at(b, d) - e.at(a, b) - e.at(c, d)
}

// deltaNodeSwap computes the cross-tour exchange delta for the general case
// (both tours hold at least two cities).
//
// Complexity: O(1).
func (e *engine) deltaNodeSwap(x1, y1, z1, x2, y2, z2 int) float64 {
	return e.at(x1, y2) + e.at(z1, y2) - e.at(x1, y1) - e.at(z1, y1) +
		e.at(x2, y1) + e.at(z2, y1) - e.at(x2, y2) - e.at(z2, y2)
}

// makeNodeSwap builds the NodeSwap exchanging tours[k1][i] with tours[k2][j],
// selecting the delta formula by tour degeneracy:
//
//   - both singletons        → Δ = 0 (no edges change),
//   - tour1 singleton        → only tour2's two edges change,
//   - tour2 singleton        → only tour1's two edges change,
//   - both ≥ 2 cities        → full deltaNodeSwap.
//
// ok is false when either tour is empty (no city to exchange).
//
// Complexity: O(1).
func (e *engine) makeNodeSwap(k1, i, k2, j int) (Move, bool) {
	var (
		c1 = e.sol.tours[k1]
		c2 = e.sol.tours[k2]
		n  = len(c1)
		m  = len(c2)
	)
	if n < 1 || m < 1 {
		return Move{}, false
	}

	y1 := c1[i]
	x1 := c1[(i-1+n)%n]
	z1 := c1[(i+1)%n]
	y2 := c2[j]
	x2 := c2[(j-1+m)%m]
	z2 := c2[(j+1)%m]

	// A singleton's only city neighbors itself: zero-cost self-edges.
	if n == 1 {
		x1, z1 = y1, y1
	}
	if m == 1 {
		x2, z2 = y2, y2
	}

	var delta float64
	switch {
	case n == 1 && m == 1:
		delta = 0
	case n == 1:
		delta = e.at(x2, y1) + e.at(y1, z2) - e.at(x2, y2) - e.at(y2, z2)
	case m == 1:
		delta = e.at(x1, y2) + e.at(y2, z1) - e.at(x1, y1) - e.at(y1, z1)
	default:
		delta = e.deltaNodeSwap(x1, y1, z1, x2, y2, z2)
	}

	return Move{
		Kind: NodeSwap, Delta: delta,
		Tour1: k1, Tour2: k2,
		X1: x1, Y1: y1, Z1: z1,
		X2: x2, Y2: y2, Z2: z2,
	}, true
}

// edgeSwapAt builds the EdgeSwap removing the edges that start at positions
// i and j of tour k. Positions are normalized to i < j; the pair must name
// two vertex-disjoint edges (cyclic index distance ≥ 2, no wrap adjacency)
// in a tour of at least four cities, otherwise ok is false.
//
// Complexity: O(1).
func (e *engine) edgeSwapAt(k, i, j int) (Move, bool) {
	t := e.sol.tours[k]
	n := len(t)
	if n < 4 {
		return Move{}, false
	}
	if i > j {
		i, j = j, i
	}
	if i == j || j == i+1 || (i == 0 && j == n-1) {
		return Move{}, false
	}

	var (
		a = t[i]
		b = t[(i+1)%n]
		c = t[j]
		d = t[(j+1)%n]
	)
	delta := e.deltaEdgeSwap(a, b, c, d)
	if math.IsInf(delta, 1) {
		return Move{}, false
	}
	return Move{Kind: EdgeSwap, Delta: delta, A: a, B: b, C: c, D: d}, true
}

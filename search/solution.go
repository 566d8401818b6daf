// Package search - two-tour solution representation.
//
// A Solution owns two ordered city sequences interpreted as closed cycles
// (last element connects back to first) that together partition {0..n-1}.
// Alongside the raw sequences it maintains a locator index city → (tour,
// position), updated incrementally on every mutation, so that move
// application and validity checks avoid repeated O(n) scans.
//
// Contracts:
//   - The partition invariant (disjoint tours, union {0..n-1}) holds before
//     and after every exported operation and every internal mutation.
//   - Mutating helpers are package-private; external callers only construct,
//     inspect, clone, and validate.
//
// Complexity: construction/validation O(n); all locator queries O(1);
// mutations O(1) (node swap) or O(segment) (reversal).
package search

// nodeLoc records where a city currently lives: which tour and at which index.
type nodeLoc struct {
	tour int // 0 or 1
	pos  int // index within Solution.tours[tour]
}

// Solution is a partition of cities {0..n-1} into two closed tours.
type Solution struct {
	tours [2][]int  // the two cyclic sequences
	loc   []nodeLoc // city → current (tour, position); len == n
}

// NewSolution builds a Solution from two tours, copying both slices.
// The tours must jointly contain every city in {0..len(t0)+len(t1)-1}
// exactly once; otherwise ErrInvalidSolution.
//
// Complexity: O(n) time and space.
func NewSolution(t0, t1 []int) (*Solution, error) {
	n := len(t0) + len(t1)
	s := &Solution{loc: make([]nodeLoc, n)}
	s.tours[0] = append([]int(nil), t0...)
	s.tours[1] = append([]int(nil), t1...)

	// Build the locator while verifying the partition invariant.
	seen := make([]bool, n)
	var (
		k, i int // tour id, position
		v    int // city under inspection
	)
	for k = 0; k < 2; k++ {
		for i = 0; i < len(s.tours[k]); i++ {
			v = s.tours[k][i]
			if v < 0 || v >= n || seen[v] {
				return nil, ErrInvalidSolution
			}
			seen[v] = true
			s.loc[v] = nodeLoc{tour: k, pos: i}
		}
	}
	return s, nil
}

// Len returns the total number of cities.
func (s *Solution) Len() int { return len(s.loc) }

// Tour returns an independent copy of tour k (k ∈ {0,1}).
// Out-of-range k yields nil.
func (s *Solution) Tour(k int) []int {
	if k < 0 || k > 1 {
		return nil
	}
	return append([]int(nil), s.tours[k]...)
}

// Find reports the tour and position currently holding city v.
// ok is false for out-of-range cities.
//
// Complexity: O(1).
func (s *Solution) Find(v int) (tour, pos int, ok bool) {
	if v < 0 || v >= len(s.loc) {
		return 0, 0, false
	}
	l := s.loc[v]
	return l.tour, l.pos, true
}

// Clone returns a deep, independent copy.
//
// Complexity: O(n).
func (s *Solution) Clone() *Solution {
	cp := &Solution{loc: append([]nodeLoc(nil), s.loc...)}
	cp.tours[0] = append([]int(nil), s.tours[0]...)
	cp.tours[1] = append([]int(nil), s.tours[1]...)
	return cp
}

// Validate re-checks the partition invariant from scratch. It is cheap
// enough to call in tests after every mutation and is used by Run as the
// fail-fast contract check.
//
// Complexity: O(n) time, O(n) space.
func (s *Solution) Validate() error {
	if s == nil {
		return ErrInvalidSolution
	}
	n := len(s.loc)
	if len(s.tours[0])+len(s.tours[1]) != n {
		return ErrInvalidSolution
	}
	seen := make([]bool, n)
	var (
		k, i int
		v    int
	)
	for k = 0; k < 2; k++ {
		for i = 0; i < len(s.tours[k]); i++ {
			v = s.tours[k][i]
			if v < 0 || v >= n || seen[v] {
				return ErrInvalidSolution
			}
			seen[v] = true
			// The locator must agree with the sequences.
			if s.loc[v].tour != k || s.loc[v].pos != i {
				return ErrInvalidSolution
			}
		}
	}
	return nil
}

// neighbors returns the cyclic predecessor and successor of position pos in
// tour k. A singleton tour's only city neighbors itself (its "edges" are
// zero-cost self-loops), matching the degenerate delta rules.
func (s *Solution) neighbors(k, pos int) (prev, next int) {
	t := s.tours[k]
	n := len(t)
	if n == 1 {
		return t[0], t[0]
	}
	return t[(pos-1+n)%n], t[(pos+1)%n]
}

// hasEdge reports whether cities a and b are currently consecutive in tour k:
// +1 for orientation a→b, −1 for b→a, 0 when absent. Tours shorter than two
// cities carry no edges.
//
// Complexity: O(1) via the locator.
func (s *Solution) hasEdge(k, a, b int) int {
	if a < 0 || a >= len(s.loc) || b < 0 || b >= len(s.loc) {
		return 0
	}
	la := s.loc[a]
	if la.tour != k {
		return 0
	}
	t := s.tours[k]
	n := len(t)
	if n < 2 {
		return 0
	}
	if t[(la.pos+1)%n] == b {
		return +1
	}
	if t[(la.pos-1+n)%n] == b {
		return -1
	}
	return 0
}

// swapNodes exchanges the cities at tours[k1][i] and tours[k2][j], keeping
// the locator in sync. Positions themselves do not move; only occupants do.
//
// Complexity: O(1).
func (s *Solution) swapNodes(k1, i, k2, j int) {
	v1 := s.tours[k1][i]
	v2 := s.tours[k2][j]
	s.tours[k1][i] = v2
	s.tours[k2][j] = v1
	s.loc[v1] = nodeLoc{tour: k2, pos: j}
	s.loc[v2] = nodeLoc{tour: k1, pos: i}
}

// reverseSegment reverses the cyclic segment of tour k from index i to index
// j inclusive, wraparound-aware: the segment spans (j−i) mod n positions
// forward from i. This is the 2-opt primitive; the locator is refreshed for
// every touched position.
//
// Complexity: O(segment length) time, O(1) extra space.
func (s *Solution) reverseSegment(k, i, j int) {
	t := s.tours[k]
	n := len(t)
	if n < 2 {
		return
	}
	d := ((j - i) % n + n) % n

	var (
		step int // offset from segment ends toward the middle
		a, b int // positions being exchanged this step
	)
	for step = 0; step <= d/2; step++ {
		a = (i + step) % n
		b = (i + d - step) % n
		if a == b {
			continue
		}
		t[a], t[b] = t[b], t[a]
		s.loc[t[a]] = nodeLoc{tour: k, pos: a}
		s.loc[t[b]] = nodeLoc{tour: k, pos: b}
	}
}

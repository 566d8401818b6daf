package search

// Shared helpers for the search package tests. All builders fail the test on
// error so property checks stay single-line at call sites.

import (
	"math"
	"testing"

	"dualtour/matrix"
)

// unitSquare is the canonical 4-city instance: every rounded pairwise
// distance is 1, so every two-tour partition costs exactly 4.
var unitSquare = []matrix.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}

// stretchedPairs places two far-apart vertical pairs: the optimal partition
// keeps each pair in its own tour (cost 4), any cross pairing costs 40.
var stretchedPairs = []matrix.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 10, Y: 0}, {X: 10, Y: 1}}

// ring12 is a 12-city layout without symmetric degeneracy: ten cities on a
// ring plus two interior cities, so local search has real work to do.
var ring12 = func() []matrix.Point {
	pts := make([]matrix.Point, 0, 12)
	for i := 0; i < 10; i++ {
		angle := 2 * math.Pi * float64(i) / 10
		pts = append(pts, matrix.Point{X: 100 * math.Cos(angle), Y: 100 * math.Sin(angle)})
	}
	pts = append(pts, matrix.Point{X: 13, Y: 37}, matrix.Point{X: -29, Y: -17})
	return pts
}()

func mustEuclidean(t *testing.T, pts []matrix.Point) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewEuclidean(pts)
	if err != nil {
		t.Fatalf("NewEuclidean: %v", err)
	}
	return m
}

func mustSolution(t *testing.T, t0, t1 []int) *Solution {
	t.Helper()
	s, err := NewSolution(t0, t1)
	if err != nil {
		t.Fatalf("NewSolution(%v, %v): %v", t0, t1, err)
	}
	return s
}

func mustCost(t *testing.T, dist matrix.Matrix, s *Solution) float64 {
	t.Helper()
	c, err := TotalCost(dist, s)
	if err != nil {
		t.Fatalf("TotalCost: %v", err)
	}
	return c
}

func mustEngine(t *testing.T, dist matrix.Matrix, s *Solution) *engine {
	t.Helper()
	e, err := newEngine(dist, s, DefaultEps)
	if err != nil {
		t.Fatalf("newEngine: %v", err)
	}
	return e
}

// splitAlternating deals cities 0..n-1 into two tours round-robin, a
// deliberately poor start that leaves improving moves on the table.
func splitAlternating(n int) (t0, t1 []int) {
	for v := 0; v < n; v++ {
		if v%2 == 0 {
			t0 = append(t0, v)
		} else {
			t1 = append(t1, v)
		}
	}
	return t0, t1
}

// assertPartition fails unless s is a valid two-tour partition of {0..n-1}.
func assertPartition(t *testing.T, s *Solution, n int) {
	t.Helper()
	if err := s.Validate(); err != nil {
		t.Fatalf("partition invariant broken: %v", err)
	}
	if s.Len() != n {
		t.Fatalf("partition covers %d cities, want %d", s.Len(), n)
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

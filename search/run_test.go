package search

import (
	"errors"
	"reflect"
	"testing"

	"dualtour/matrix"
)

var allStrategies = []Strategy{Steepest, CandidateRestricted, MemoryAssisted}

func optsFor(s Strategy) Options {
	o := DefaultOptions()
	o.Strategy = s
	return o
}

func TestRunRejectsBadInputs(t *testing.T) {
	dist := mustEuclidean(t, unitSquare)
	sol := mustSolution(t, []int{0, 2}, []int{1, 3})

	t.Run("nil matrix", func(t *testing.T) {
		if _, err := Run(nil, sol.Clone(), DefaultOptions()); !errors.Is(err, ErrInvalidInstance) {
			t.Fatalf("got %v, want ErrInvalidInstance", err)
		}
	})

	t.Run("asymmetric matrix", func(t *testing.T) {
		bad, _ := matrix.NewDense(2, 2)
		_ = bad.Set(0, 1, 1)
		_ = bad.Set(1, 0, 7)
		s2 := mustSolution(t, []int{0}, []int{1})
		if _, err := Run(bad, s2, DefaultOptions()); !errors.Is(err, ErrInvalidInstance) {
			t.Fatalf("got %v, want ErrInvalidInstance", err)
		}
	})

	t.Run("nil solution", func(t *testing.T) {
		if _, err := Run(dist, nil, DefaultOptions()); !errors.Is(err, ErrInvalidSolution) {
			t.Fatalf("got %v, want ErrInvalidSolution", err)
		}
	})

	t.Run("size mismatch", func(t *testing.T) {
		small := mustSolution(t, []int{0}, []int{1})
		if _, err := Run(dist, small, DefaultOptions()); !errors.Is(err, ErrInvalidSolution) {
			t.Fatalf("got %v, want ErrInvalidSolution", err)
		}
	})

	t.Run("unknown strategy", func(t *testing.T) {
		o := DefaultOptions()
		o.Strategy = Strategy(250)
		if _, err := Run(dist, sol.Clone(), o); !errors.Is(err, ErrUnsupportedStrategy) {
			t.Fatalf("got %v, want ErrUnsupportedStrategy", err)
		}
	})

	t.Run("negative eps", func(t *testing.T) {
		o := DefaultOptions()
		o.Eps = -1
		if _, err := Run(dist, sol.Clone(), o); !errors.Is(err, ErrBadOptions) {
			t.Fatalf("got %v, want ErrBadOptions", err)
		}
	})

	t.Run("negative k", func(t *testing.T) {
		o := optsFor(CandidateRestricted)
		o.K = -3
		if _, err := Run(dist, sol.Clone(), o); !errors.Is(err, ErrBadOptions) {
			t.Fatalf("got %v, want ErrBadOptions", err)
		}
	})
}

// Delta correctness: for every generated move, applying it changes the total
// cost by exactly the recorded delta (within rounding noise).
func TestDeltaMatchesAppliedCostChange(t *testing.T) {
	dist := mustEuclidean(t, ring12)
	t0, t1 := splitAlternating(len(ring12))
	base := mustSolution(t, t0, t1)

	e := mustEngine(t, dist, base)
	moves := e.improvingMoves()
	if len(moves) == 0 {
		t.Fatal("alternating split produced no improving moves")
	}

	for _, mv := range moves {
		work := base.Clone()
		we := mustEngine(t, dist, work)
		before := mustCost(t, dist, work)
		if err := we.apply(mv); err != nil {
			t.Fatalf("apply(%+v): %v", mv, err)
		}
		after := mustCost(t, dist, work)
		if !almostEqual(after-before, mv.Delta, 1e-6) {
			t.Fatalf("move %+v: cost change %v, recorded delta %v", mv, after-before, mv.Delta)
		}
		assertPartition(t, work, len(ring12))
	}
}

// Partition invariant and monotonic improvement, step by step, for each
// strategy's own move selection.
func TestStrategiesDescendMonotonically(t *testing.T) {
	dist := mustEuclidean(t, ring12)
	n := len(ring12)

	for _, strat := range allStrategies {
		t.Run(strat.String(), func(t *testing.T) {
			t0, t1 := splitAlternating(n)
			sol := mustSolution(t, t0, t1)
			before := mustCost(t, dist, sol)

			res, err := Run(dist, sol, optsFor(strat))
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if res.Solution != sol {
				t.Fatal("Run must mutate and return the caller's solution")
			}
			assertPartition(t, sol, n)
			if res.Iterations < 1 {
				t.Fatalf("expected at least one applied move, got %d", res.Iterations)
			}
			if res.Cost >= before {
				t.Fatalf("cost did not improve: %v -> %v", before, res.Cost)
			}
			if got := mustCost(t, dist, sol); got != res.Cost {
				t.Fatalf("reported cost %v, recomputed %v", res.Cost, got)
			}
		})
	}
}

// Idempotent re-scan: a converged Steepest solution admits no improving move.
func TestSteepestConvergesToLocalOptimum(t *testing.T) {
	dist := mustEuclidean(t, ring12)
	t0, t1 := splitAlternating(len(ring12))
	sol := mustSolution(t, t0, t1)

	if _, err := Run(dist, sol, optsFor(Steepest)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	e := mustEngine(t, dist, sol)
	if left := e.improvingMoves(); len(left) != 0 {
		t.Fatalf("re-scan found %d improving moves after convergence", len(left))
	}
}

func TestSteepestIsDeterministic(t *testing.T) {
	dist := mustEuclidean(t, ring12)
	t0, t1 := splitAlternating(len(ring12))

	a := mustSolution(t, t0, t1)
	b := mustSolution(t, t0, t1)
	ra, err := Run(dist, a, optsFor(Steepest))
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	rb, err := Run(dist, b, optsFor(Steepest))
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if ra.Cost != rb.Cost || ra.Iterations != rb.Iterations {
		t.Fatalf("runs diverged: (%v, %d) vs (%v, %d)", ra.Cost, ra.Iterations, rb.Cost, rb.Iterations)
	}
	if !reflect.DeepEqual(a.Tour(0), b.Tour(0)) || !reflect.DeepEqual(a.Tour(1), b.Tour(1)) {
		t.Fatal("runs produced different tours")
	}
}

// The unit square: every rounded distance is 1, so the initial cross pairing
// already sits at the global optimum of 4 and no strategy may move.
func TestUnitSquareScenario(t *testing.T) {
	dist := mustEuclidean(t, unitSquare)
	for _, strat := range allStrategies {
		t.Run(strat.String(), func(t *testing.T) {
			sol := mustSolution(t, []int{0, 2}, []int{1, 3})
			res, err := Run(dist, sol, optsFor(strat))
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if res.Cost != 4 {
				t.Fatalf("cost = %v, want 4", res.Cost)
			}
			if res.Iterations != 0 {
				t.Fatalf("applied %d moves on a degenerate-flat instance", res.Iterations)
			}
		})
	}
}

// Two distant vertical pairs: the cross pairing costs 40, a single node swap
// reaches the optimal adjacent pairing of cost 4.
func TestStretchedPairsFindAdjacentPairing(t *testing.T) {
	dist := mustEuclidean(t, stretchedPairs)
	for _, strat := range allStrategies {
		t.Run(strat.String(), func(t *testing.T) {
			sol := mustSolution(t, []int{0, 2}, []int{1, 3})
			if got := mustCost(t, dist, sol); got != 40 {
				t.Fatalf("initial cost = %v, want 40", got)
			}

			res, err := Run(dist, sol, optsFor(strat))
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if res.Cost != 4 {
				t.Fatalf("cost = %v, want 4", res.Cost)
			}
			assertPartition(t, sol, 4)

			// Each tour holds one vertical pair.
			for k := 0; k < 2; k++ {
				tour := sol.Tour(k)
				if len(tour) != 2 {
					t.Fatalf("tour %d = %v, want two cities", k, tour)
				}
				if (tour[0] < 2) != (tour[1] < 2) {
					t.Fatalf("tour %d mixes the pairs: %v", k, tour)
				}
			}

			e := mustEngine(t, dist, sol)
			if left := e.improvingMoves(); len(left) != 0 {
				t.Fatalf("re-scan found %d improving moves", len(left))
			}
		})
	}
}

func TestDegenerateSizes(t *testing.T) {
	// Costs of undersized tours are zero and involve no matrix reads.
	small, _ := matrix.NewDense(1, 1)
	if c, err := CycleCost(small, nil); err != nil || c != 0 {
		t.Fatalf("CycleCost(empty) = (%v, %v), want (0, nil)", c, err)
	}
	if c, err := CycleCost(small, []int{0}); err != nil || c != 0 {
		t.Fatalf("CycleCost(singleton) = (%v, %v), want (0, nil)", c, err)
	}

	empty := mustSolution(t, nil, nil)
	if c, err := TotalCost(small, empty); err != nil || c != 0 {
		t.Fatalf("TotalCost(N=0) = (%v, %v), want (0, nil)", c, err)
	}

	// N=1 and N=2: nothing to improve, search converges untouched.
	for _, tc := range []struct {
		pts    []matrix.Point
		t0, t1 []int
	}{
		{[]matrix.Point{{X: 0, Y: 0}}, []int{0}, nil},
		{[]matrix.Point{{X: 0, Y: 0}, {X: 5, Y: 0}}, []int{0}, []int{1}},
	} {
		dist := mustEuclidean(t, tc.pts)
		for _, strat := range allStrategies {
			sol := mustSolution(t, tc.t0, tc.t1)
			res, err := Run(dist, sol, optsFor(strat))
			if err != nil {
				t.Fatalf("N=%d %s: %v", len(tc.pts), strat, err)
			}
			if res.Cost != 0 || res.Iterations != 0 {
				t.Fatalf("N=%d %s: (cost=%v, iters=%d), want (0, 0)", len(tc.pts), strat, res.Cost, res.Iterations)
			}
		}
	}
}

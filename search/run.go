package search

import (
	"fmt"
	"time"

	"dualtour/matrix"
)

// Run executes one local-search descent over initial using the requested
// strategy, mutating initial in place until no improving move remains.
//
// The distance matrix must be square, symmetric, finite, non-negative and
// zero on the diagonal (ErrInvalidInstance otherwise); initial must
// partition exactly the matrix's cities into its two tours
// (ErrInvalidSolution otherwise). The returned Result references the same
// Solution value.
func Run(dist matrix.Matrix, initial *Solution, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if opts.K == 0 {
		opts.K = DefaultK
	}
	if opts.Eps == 0 {
		opts.Eps = DefaultEps
	}

	n, err := matrix.ValidateDistances(dist)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidInstance, err)
	}
	if n < 1 {
		return Result{}, fmt.Errorf("%w: need at least one city", ErrInvalidInstance)
	}
	if initial == nil {
		return Result{}, fmt.Errorf("%w: nil solution", ErrInvalidSolution)
	}
	if err = initial.Validate(); err != nil {
		return Result{}, err
	}
	if initial.Len() != n {
		return Result{}, fmt.Errorf("%w: solution covers %d cities, matrix has %d",
			ErrInvalidSolution, initial.Len(), n)
	}

	e, err := newEngine(dist, initial, opts.Eps)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	var iterations int
	switch opts.Strategy {
	case Steepest:
		iterations, err = e.runSteepest()
	case CandidateRestricted:
		iterations, err = e.runCandidate(opts.K)
	case MemoryAssisted:
		iterations, err = e.runMemory()
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnsupportedStrategy, opts.Strategy)
	}
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, err
	}

	cost, err := TotalCost(dist, initial)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Solution:   initial,
		Cost:       cost,
		Elapsed:    elapsed,
		Iterations: iterations,
	}, nil
}

// Validate reports ErrBadOptions or ErrUnsupportedStrategy for settings Run
// cannot honor.
func (o Options) Validate() error {
	switch o.Strategy {
	case Steepest, CandidateRestricted, MemoryAssisted:
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedStrategy, o.Strategy)
	}
	if o.Eps < 0 {
		return fmt.Errorf("%w: eps must be non-negative", ErrBadOptions)
	}
	if o.Strategy == CandidateRestricted && o.K < 0 {
		return fmt.Errorf("%w: k must be non-negative", ErrBadOptions)
	}
	return nil
}

// Package search - public types, options, and the sentinel error set.
//
// Design principles (mirrored across the module):
//   - Strict sentinels: algorithms return only errors declared here; callers
//     and tests classify them via errors.Is.
//   - Options are plain structs with DefaultOptions(); zero-configuration
//     callers get deterministic, sensible behavior.
package search

import (
	"errors"
	"time"
)

var (
	// ErrInvalidInstance is returned when the distance matrix violates the
	// model contract (nil, non-square, asymmetric, negative, non-finite, or
	// fewer than one city). Fatal: no search is started.
	ErrInvalidInstance = errors.New("search: invalid distance instance")

	// ErrInvalidSolution is returned when an initial solution does not
	// partition {0..n-1} across its two tours. Fatal: the partition invariant
	// underpins every other guarantee.
	ErrInvalidSolution = errors.New("search: solution is not a two-tour partition")

	// ErrCrossCycleEdge signals that an EdgeSwap's two endpoints no longer
	// share a tour at application time. The move is dropped without mutating
	// the solution; strategies recover locally.
	ErrCrossCycleEdge = errors.New("search: edge swap endpoints in different tours")

	// ErrStaleMove signals that a move's named cities are no longer positioned
	// as recorded at generation time. Dropped and recovered like
	// ErrCrossCycleEdge.
	ErrStaleMove = errors.New("search: move references stale positions")

	// ErrUnsupportedStrategy is returned for a Strategy value outside the
	// declared enumeration.
	ErrUnsupportedStrategy = errors.New("search: unsupported strategy")

	// ErrBadOptions is returned when Options carry contradictory or
	// out-of-range knobs (negative eps, non-positive k for candidate search).
	ErrBadOptions = errors.New("search: invalid options")
)

// Strategy selects the iteration policy used by Run.
type Strategy uint8

const (
	// Steepest runs full enumeration each iteration and applies the
	// global minimum-delta move.
	Steepest Strategy = iota

	// CandidateRestricted restricts enumeration to each city's k nearest
	// neighbors (precomputed once per run).
	CandidateRestricted

	// MemoryAssisted maintains a delta-sorted move list across iterations,
	// revalidating entries lazily instead of re-enumerating.
	MemoryAssisted
)

// String implements fmt.Stringer for diagnostics and CLI reporting.
func (s Strategy) String() string {
	switch s {
	case Steepest:
		return "steepest"
	case CandidateRestricted:
		return "candidate"
	case MemoryAssisted:
		return "memory"
	default:
		return "unknown"
	}
}

const (
	// DefaultEps guards the improvement rule Δ < −eps against floating-point
	// and rounding noise.
	DefaultEps = 1e-9

	// DefaultK is the candidate-list size used when Options.K is zero.
	// Values in 10..15 work well on TSPLIB-style instances.
	DefaultK = 10
)

// Options tunes a single Run. The zero value plus DefaultOptions() is the
// recommended starting point.
type Options struct {
	// Strategy picks the iteration policy.
	Strategy Strategy

	// K is the candidate-list size for CandidateRestricted; ignored by the
	// other strategies. 0 means DefaultK.
	K int

	// Eps is the acceptance tolerance: a move improves iff Δ < −Eps.
	// 0 means DefaultEps; negative values are rejected.
	Eps float64
}

// DefaultOptions returns Options for a deterministic Steepest run.
func DefaultOptions() Options {
	return Options{Strategy: Steepest, K: DefaultK, Eps: DefaultEps}
}

// Result is the outcome of one Run.
type Result struct {
	// Solution is the final (locally optimal) two-tour solution. Run mutates
	// the caller's initial solution in place; this is the same pointer.
	Solution *Solution

	// Cost is the summed closed-cycle length of both tours, stabilized to 1e-9.
	Cost float64

	// Elapsed is the wall-clock duration of the search loop.
	Elapsed time.Duration

	// Iterations counts applied moves (one per iteration that found an
	// improving move).
	Iterations int
}

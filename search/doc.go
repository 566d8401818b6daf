// Package search provides local-search engines for the two-cycle TSP variant:
// every city of an instance belongs to exactly one of two disjoint closed
// tours, and the objective is the summed length of both cycles.
//
// The move model has two variants:
//
//   - EdgeSwap — classic 2-opt inside one tour: remove edges (a,b) and (c,d),
//     reconnect as (a,c) and (b,d) by reversing the segment between them.
//   - NodeSwap — exchange one city between the two tours, rewiring the four
//     adjacent edges.
//
// Three iteration policies consume the same move model:
//
//   - Steepest            — full enumeration, apply the global best move.
//     Cost per iteration O(n² + n·m); fully deterministic.
//   - CandidateRestricted — k-nearest candidate lists, one pass per
//     iteration over all cities and their k neighbors, apply the best move
//     seen. O(n·k) per iteration; may settle at a weaker optimum by design.
//   - MemoryAssisted      — keeps a delta-sorted move list across iterations,
//     lazily re-validating entries against the mutated solution and
//     regenerating only moves around the cities a mutation touched.
//
// All policies share the acceptance rule Δ < −eps (default eps 1e-9) and
// terminate at a local optimum: a state admitting no improving move.
//
// Contracts:
//   - Distances are symmetric, non-negative, zero on the diagonal
//     (matrix.ValidateDistances); validated up front by Run.
//   - A Solution must partition {0..n-1} across its two tours; violations are
//     fatal (ErrInvalidSolution) before any search begins.
//   - A single Run exclusively owns and mutates its Solution; the distance
//     matrix is read-only and may be shared across concurrent runs.
//
// No logging, no panics on user input — only sentinel errors from types.go.
package search

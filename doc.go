// Package dualtour partitions the cities of a travelling-salesman instance
// into TWO disjoint closed tours of minimum summed length, combining
// construction heuristics with 2-opt / node-exchange local search.
//
// 🚀 What is dualtour?
//
//	A small, deterministic toolkit for the two-cycle TSP variant:
//		• Distance model: rounded Euclidean matrices with strict validation
//		• Construction: weighted-regret insertion, random splits, parallel multi-start
//		• Local search: exact delta algebra over edge swaps and node exchanges
//		• Three iteration policies: Steepest, CandidateRestricted, MemoryAssisted
//		• TSPLIB loading (EUC_2D) and a cobra-driven CLI
//
// Everything is organized under five subpackages:
//
//	matrix/    — dense distance matrices, Euclidean construction, validation
//	search/    — the local-search engine: moves, deltas, strategies, Run
//	construct/ — initial-solution heuristics and the multi-start driver
//	tsplib/    — TSPLIB instance parsing
//	cmd/       — the dualtour command-line entry point
//
// Minimal usage:
//
//	ins, _ := tsplib.Load("kroA100.tsp")
//	dist, _ := ins.Matrix()
//	initial, _, _ := construct.BestOf(ctx, dist, 4, construct.DefaultOptions())
//	res, _ := search.Run(dist, initial, search.DefaultOptions())
//	fmt.Println(res.Cost, res.Solution.Tour(0), res.Solution.Tour(1))
//
// All algorithms are deterministic for a fixed seed, return sentinel errors
// instead of panicking, and never mutate a distance matrix.
package dualtour

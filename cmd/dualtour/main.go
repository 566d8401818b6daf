package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	flagConfig       string
	flagStrategy     string
	flagK            int
	flagSeed         int64
	flagStarts       int
	flagRegretWeight float64
	flagEps          float64
	flagInitial      string

	rootCmd = &cobra.Command{
		Use:   "dualtour",
		Short: "Two-tour TSP local search over TSPLIB instances",
		Long: `dualtour partitions the cities of a TSPLIB instance into two
closed tours of minimum summed length: a weighted-regret construction
(optionally multi-start) followed by 2-opt/node-exchange local search.`,
	}

	solveCmd = &cobra.Command{
		Use:   "solve <instance.tsp>",
		Short: "Construct and locally optimize a two-tour solution",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	solveCmd.Flags().StringVar(&flagConfig, "config", "", "YAML run configuration (flags override)")
	solveCmd.Flags().StringVar(&flagStrategy, "strategy", "steepest", "search strategy: steepest, candidate, memory")
	solveCmd.Flags().IntVar(&flagK, "k", 0, "candidate-list size (0 = default)")
	solveCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = fixed default stream)")
	solveCmd.Flags().IntVar(&flagStarts, "starts", 4, "parallel regret construction attempts")
	solveCmd.Flags().Float64Var(&flagRegretWeight, "regret-weight", 0, "regret/cost trade-off (0 = default)")
	solveCmd.Flags().Float64Var(&flagEps, "eps", 0, "improvement acceptance tolerance (0 = default)")
	solveCmd.Flags().StringVar(&flagInitial, "initial", "regret", "initial solution: regret or random")
	rootCmd.AddCommand(solveCmd)
}

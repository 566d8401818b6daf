package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dualtour/construct"
	"dualtour/search"
	"dualtour/tsplib"
)

// RunConfig mirrors the solve command's flags for YAML-driven runs.
type RunConfig struct {
	Strategy     string  `yaml:"strategy"`
	K            int     `yaml:"k"`
	Seed         int64   `yaml:"seed"`
	Starts       int     `yaml:"starts"`
	RegretWeight float64 `yaml:"regret_weight"`
	Eps          float64 `yaml:"eps"`
	Initial      string  `yaml:"initial"`
}

// loadRunConfig merges the optional YAML file with CLI flags; a flag the user
// set explicitly always wins over the file.
func loadRunConfig(cmd *cobra.Command) (RunConfig, error) {
	cfg := RunConfig{
		Strategy:     flagStrategy,
		K:            flagK,
		Seed:         flagSeed,
		Starts:       flagStarts,
		RegretWeight: flagRegretWeight,
		Eps:          flagEps,
		Initial:      flagInitial,
	}
	if flagConfig == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var file RunConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if !cmd.Flags().Changed("strategy") && file.Strategy != "" {
		cfg.Strategy = file.Strategy
	}
	if !cmd.Flags().Changed("k") && file.K != 0 {
		cfg.K = file.K
	}
	if !cmd.Flags().Changed("seed") && file.Seed != 0 {
		cfg.Seed = file.Seed
	}
	if !cmd.Flags().Changed("starts") && file.Starts != 0 {
		cfg.Starts = file.Starts
	}
	if !cmd.Flags().Changed("regret-weight") && file.RegretWeight != 0 {
		cfg.RegretWeight = file.RegretWeight
	}
	if !cmd.Flags().Changed("eps") && file.Eps != 0 {
		cfg.Eps = file.Eps
	}
	if !cmd.Flags().Changed("initial") && file.Initial != "" {
		cfg.Initial = file.Initial
	}
	return cfg, nil
}

func parseStrategy(name string) (search.Strategy, error) {
	switch name {
	case "steepest":
		return search.Steepest, nil
	case "candidate":
		return search.CandidateRestricted, nil
	case "memory":
		return search.MemoryAssisted, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (want steepest, candidate, or memory)", name)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}
	strategy, err := parseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	ins, err := tsplib.Load(args[0])
	if err != nil {
		return err
	}
	dist, err := ins.Matrix()
	if err != nil {
		return err
	}
	slog.Info("instance loaded", "name", ins.Name, "cities", ins.Dimension)

	// Initial solution: multi-start regret by default, random on request.
	var (
		initial     *search.Solution
		initialCost float64
	)
	switch cfg.Initial {
	case "random":
		initial, err = construct.Random(ins.Dimension, cfg.Seed)
		if err != nil {
			return err
		}
		initialCost, err = search.TotalCost(dist, initial)
		if err != nil {
			return err
		}
	case "regret", "":
		copts := construct.DefaultOptions()
		copts.Seed = cfg.Seed
		copts.RegretWeight = cfg.RegretWeight
		starts := cfg.Starts
		if starts < 1 {
			starts = 1
		}
		initial, initialCost, err = construct.BestOf(context.Background(), dist, starts, copts)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown initial solution kind %q (want regret or random)", cfg.Initial)
	}
	slog.Info("initial solution built", "kind", cfg.Initial, "cost", initialCost)

	res, err := search.Run(dist, initial, search.Options{
		Strategy: strategy,
		K:        cfg.K,
		Eps:      cfg.Eps,
	})
	if err != nil {
		return err
	}
	slog.Info("search converged",
		"strategy", strategy.String(),
		"cost", res.Cost,
		"improvement", initialCost-res.Cost,
		"iterations", res.Iterations,
		"elapsed", res.Elapsed,
	)

	fmt.Printf("tour 0: %v\n", res.Solution.Tour(0))
	fmt.Printf("tour 1: %v\n", res.Solution.Tour(1))
	fmt.Printf("total cost: %.0f\n", res.Cost)
	return nil
}

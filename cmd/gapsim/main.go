// Package main provides the gapsim CLI for running evaluator-duel batches.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/anonimus/gapsim/engine"
	"github.com/anonimus/gapsim/report"
	"github.com/anonimus/gapsim/simulation"
	"github.com/anonimus/gapsim/store"
)

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// config holds the run settings. Environment variables supply defaults;
// command-line flags override them.
type config struct {
	Games      int    `env:"GAPSIM_GAMES"`
	Difficulty string `env:"GAPSIM_DIFFICULTY"`
	Seed       int64  `env:"GAPSIM_SEED"`
	Out        string `env:"GAPSIM_OUT"`
	DB         string `env:"GAPSIM_DB"`
	Workers    int    `env:"GAPSIM_WORKERS"`
}

func defaultConfig() config {
	return config{
		Games:      100,
		Difficulty: string(engine.DifficultyHard),
		Seed:       42,
	}
}

func main() {
	cfg := defaultConfig()
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse environment: %v", err)
	}

	var (
		sample      bool
		showVersion bool
	)
	flag.IntVar(&cfg.Games, "games", cfg.Games, "Number of games to simulate")
	flag.StringVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "Difficulty tier (NORMAL, HARD, VERY_HARD)")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = use current time)")
	flag.StringVar(&cfg.Out, "out", cfg.Out, "JSON results file (empty = no export)")
	flag.StringVar(&cfg.DB, "db", cfg.DB, "SQLite run database (empty = no persistence)")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Worker goroutines (0 = sequential)")
	flag.BoolVar(&sample, "sample", false, "Print one game's detected gaps")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("gapsim %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	if err := run(cfg, sample); err != nil {
		fmt.Fprintf(os.Stderr, "gapsim: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, sample bool) error {
	difficulty, err := engine.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		return err
	}
	if cfg.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", cfg.Games)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		fmt.Fprintf(os.Stderr, "Using seed: %d\n", seed)
	}

	start := time.Now()
	var results []simulation.GameResult
	if cfg.Workers > 0 {
		results = simulation.RunBatchParallel(cfg.Games, difficulty, seed, cfg.Workers)
	} else {
		results = simulation.RunBatch(cfg.Games, difficulty, seed)
	}
	stats := simulation.Aggregate(results)

	report.PrintSummary(os.Stdout, stats, difficulty, time.Now())
	fmt.Printf("Elapsed:          %s\n", time.Since(start).Round(time.Millisecond))

	if sample && len(results) > 0 {
		report.PrintSample(os.Stdout, results[0])
	}

	if cfg.Out != "" {
		export := report.NewExport(results, stats, difficulty, seed, time.Now())
		if err := report.WriteFile(cfg.Out, export); err != nil {
			return err
		}
		fmt.Printf("\nResults saved to %s\n", cfg.Out)
	}

	if cfg.DB != "" {
		st, err := store.Open(cfg.DB)
		if err != nil {
			return err
		}
		defer st.Close()

		runID, err := st.SaveRun(context.Background(), difficulty, seed, results, stats)
		if err != nil {
			return err
		}
		fmt.Printf("Run recorded as %s in %s\n", runID, cfg.DB)
	}

	return nil
}

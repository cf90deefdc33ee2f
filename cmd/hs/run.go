package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/thalesfsp/hs"
	"github.com/thalesfsp/hs/bench"
)

var (
	funcName  string
	dims      int
	iters     int
	hmsSize   int
	hmcr      float64
	par       float64
	bandwidth float64
	seed      int64
	workers   int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run harmony search on a benchmark function",
	Long: `Runs harmony search on the selected benchmark function and prints the
best harmony found together with the known optimum.`,
	RunE: runSearch,
}

func init() {
	runCmd.Flags().StringVar(&funcName, "func", "sphere", "Benchmark function: sphere, ackley, rastrigin, rosenbrock, styblinski, eggholder")
	runCmd.Flags().IntVar(&dims, "dim", 2, "Dimensions (ignored by fixed-dimension functions)")
	runCmd.Flags().IntVar(&iters, "iters", 5000, "Iteration budget")
	runCmd.Flags().IntVar(&hmsSize, "hms", 30, "Harmony memory size")
	runCmd.Flags().Float64Var(&hmcr, "hmcr", 0.8, "Harmony memory considering rate")
	runCmd.Flags().Float64Var(&par, "par", 0.4, "Pitch adjustment rate")
	runCmd.Flags().Float64Var(&bandwidth, "bw", 0, "Pitch adjustment bandwidth (0 = 5% of the function's range)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = wall clock)")
	runCmd.Flags().IntVar(&workers, "workers", 0, "Max concurrent objective evaluations (0 = sequential)")

	rootCmd.AddCommand(runCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	fn, ok := bench.ByName(funcName, dims)
	if !ok {
		return fmt.Errorf("unknown benchmark function %q", funcName)
	}

	low, up := fn.Bounds()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if bandwidth == 0 {
		bandwidth = (up - low) * 0.05
	}

	config := hs.DefaultConfig(fn.Dims())
	config.MemorySize = hmsSize
	config.HMCR = hmcr
	config.PAR = par
	config.Bandwidth = bandwidth
	config.Iterations = iters
	config.Sampling = hs.Range[float64]{Min: low, Max: up}
	config.Workers = workers
	config.Rand = rand.New(rand.NewSource(seed))

	slog.Info("Starting search",
		"func", fn.Name(), "dim", fn.Dims(), "iters", iters,
		"hms", hmsSize, "hmcr", hmcr, "par", par, "bw", bandwidth, "seed", seed)

	start := time.Now()

	best, fitness, err := hs.FindHarmony(config, bench.Objective(fn))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	slog.Info("Search finished",
		"elapsed", time.Since(start).Round(time.Millisecond),
		"best", fmt.Sprintf("%.6f", best),
		"fitness", fitness)

	for _, opt := range fn.Optima() {
		slog.Info("Known optimum", "pos", fmt.Sprintf("%.4f", opt.Pos), "val", opt.Val)
	}

	return nil
}

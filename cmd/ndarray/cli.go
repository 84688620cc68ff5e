package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/born-ml/ndarray/ndarray"
	"github.com/spf13/cobra"
)

// NewCLI builds the root command.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "ndarray",
		Short:         "Strided N-dimensional arrays for Go",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "Log copy-on-write and scheduling decisions")

	rootCmd.AddCommand(
		newVersionCmd(),
		newDemoCmd(),
		newBenchCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ndarray %s\n", version)
		},
	}
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through views, broadcasting and reductions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ndarray.Try(func() { runDemo(cmd.OutOrStdout()) })
		},
	}
}

func runDemo(w io.Writer) {
	a := ndarray.MustFromSlice([]int{3, 30, 2, 20, 1, 10}, ndarray.Shape{3, 2})
	fmt.Fprintf(w, "a = %v %v\n", a, a.ToSlice())

	x := a.Get(ndarray.Index(1), ndarray.Index(1))
	y := a.Get(ndarray.Index(2), ndarray.Index(0))
	fmt.Fprintf(w, "a[1,1] + a[2,0] = %d\n", ndarray.Add(x, y).Scalarized())

	fmt.Fprintf(w, "a[::-1, 0] = %v\n", a.Get(ndarray.Step(-1), ndarray.Index(0)).ToSlice())
	fmt.Fprintf(w, "a.T = %v\n", a.T().Copy().ToSlice())

	row := ndarray.MustFromSlice([]int{1, 2, 3, 4}, ndarray.Shape{1, 4})
	col := ndarray.MustFromSlice([]int{1, 2, 3, 4}, ndarray.Shape{4, 1})
	outer := ndarray.Add(row, col)
	fmt.Fprintf(w, "outer sum %v = %v\n", outer.Shape(), outer.ToSlice())

	fmt.Fprintf(w, "sum(a, 0) = %v, max(a, 1) = %v, sum(a) = %d\n",
		ndarray.Sum(a, 0).ToSlice(), ndarray.Max(a, 1).ToSlice(), ndarray.Sum(a).Item())

	b := a.Clone()
	a.SetScalar(0, ndarray.All, ndarray.Index(1))
	fmt.Fprintf(w, "after a[:, 1] = 0: a = %v, clone = %v\n", a.ToSlice(), b.ToSlice())
}

func newBenchCmd() *cobra.Command {
	var (
		size     int
		workers  int
		parallel bool
		rounds   int
	)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Time a broadcast elementwise add over a transposed view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := ndarray.DefaultConfig()
			cfg.Enabled = parallel
			if workers > 0 {
				cfg.NumWorkers = workers
			}
			return ndarray.Try(func() { runBench(cmd.OutOrStdout(), cfg, size, rounds) })
		},
	}

	benchCmd.Flags().IntVar(&size, "size", 1024, "Matrix side length")
	benchCmd.Flags().IntVar(&workers, "workers", 0, "Worker goroutines (0 = CPU count)")
	benchCmd.Flags().BoolVar(&parallel, "parallel", true, "Split the work across workers")
	benchCmd.Flags().IntVar(&rounds, "rounds", 10, "Repetitions to average over")
	return benchCmd
}

func runBench(w io.Writer, cfg ndarray.Config, size, rounds int) {
	if size <= 0 || rounds <= 0 {
		panic(fmt.Errorf("size and rounds must be positive, got %d and %d", size, rounds))
	}
	s := ndarray.NewScheduler(cfg)

	a := ndarray.Ones[float64](ndarray.Shape{size, size}).T()
	row := ndarray.Arange(0, float64(size), 1).Reshape(1, size)
	add := func(x, y float64) float64 { return x + y }

	slog.Debug("bench: start", "size", size, "rounds", rounds, "parallel", cfg.Enabled, "workers", cfg.NumWorkers)

	var out *ndarray.NDArray[float64]
	start := time.Now()
	for range rounds {
		out = ndarray.Map2Parallel(s, a, row, add)
	}
	elapsed := time.Since(start)

	fmt.Fprintf(w, "%dx%d add: %v per round (parallel=%t, workers=%d), checksum %g\n",
		size, size, elapsed/time.Duration(rounds), cfg.Enabled, cfg.NumWorkers, ndarray.Sum(out).Item())
}

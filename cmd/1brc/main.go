package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/RayanRal/1brc/brc"
)

var (
	filePath   string
	sol        string
	numWorkers int
	profile    bool
	stats      bool
	verbose    bool
)

func init() {
	flag.StringVar(&filePath, "filePath", "measurements.txt", "measurements file")
	flag.StringVar(&sol, "sol", "mapped", "solver: "+strings.Join(brc.SolverNames(), ", "))
	flag.IntVar(&numWorkers, "numWorkers", 0, "number of workers (0 = one per CPU, small files scan serially)")
	flag.BoolVar(&profile, "profile", false, "profile cpu")
	flag.BoolVar(&stats, "stats", false, "print a run report to stderr")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()
}

func main() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if profile {
		f, err := os.Create("cpu_profile.pprof")
		if err != nil {
			fmt.Println("unable to create CPU profile: ", err)
			return
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Println("unable to start CPU profile: ", err)
			return
		}
		defer pprof.StopCPUProfile()
	}

	solve, ok := brc.Solver(sol)
	if !ok {
		log.Fatalf("unknown solver %q (have: %s)", sol, strings.Join(brc.SolverNames(), ", "))
	}

	start := time.Now()
	if err := solve(filePath, os.Stdout, brc.WithWorkers(numWorkers)); err != nil {
		log.Fatalf("unable to solve %s: %v", filePath, err)
	}
	elapsed := time.Since(start)

	slog.Info("solved",
		slog.String("sol", sol),
		slog.String("file", filePath),
		slog.Duration("elapsed", elapsed),
	)
	if stats {
		printRunReport(elapsed)
	}
}

func printRunReport(elapsed time.Duration) {
	var size int64
	if fi, err := os.Stat(filePath); err == nil {
		size = fi.Size()
	}
	mib := float64(size) / (1 << 20)

	table := tablewriter.NewWriter(os.Stderr)
	table.SetHeader([]string{"Solver", "File", "MiB", "Elapsed", "MiB/s"})
	table.Append([]string{
		sol,
		filePath,
		fmt.Sprintf("%.1f", mib),
		elapsed.Round(time.Millisecond).String(),
		fmt.Sprintf("%.1f", mib/elapsed.Seconds()),
	})
	table.Render()
}

package main

import (
	"flag"
	"log"
	"log/slog"
	"time"

	"github.com/RayanRal/1brc/gen"
)

var (
	out      string
	rows     int
	stations int
	dist     string
	seed     int64
)

func init() {
	flag.StringVar(&out, "out", "measurements.txt", "output file")
	flag.IntVar(&rows, "rows", 1_000_000, "records to write")
	flag.IntVar(&stations, "stations", 413, "distinct stations")
	flag.StringVar(&dist, "dist", gen.DIST_UNIFORM, "station distribution: uniform or zipfian")
	flag.Int64Var(&seed, "seed", 1, "rng seed")
	flag.Parse()
}

func main() {
	start := time.Now()
	cfg := gen.Config{Rows: rows, Stations: stations, Dist: dist, Seed: seed}
	if err := gen.WriteFile(out, cfg); err != nil {
		log.Fatalf("unable to generate measurements: %v", err)
	}
	slog.Info("generated measurements",
		slog.String("file", out),
		slog.Int("rows", rows),
		slog.Int("stations", stations),
		slog.String("dist", dist),
		slog.Duration("elapsed", time.Since(start)),
	)
}

package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jamiealquiza/tachymeter"
	"github.com/rodaine/table"

	"github.com/RayanRal/1brc/brc"
)

var (
	filePath string
	rounds   int
	solvers  string
)

func init() {
	flag.StringVar(&filePath, "filePath", "measurements.txt", "measurements file")
	flag.IntVar(&rounds, "rounds", 5, "runs per solver")
	flag.StringVar(&solvers, "solvers", strings.Join(brc.SolverNames(), ","), "comma-separated solvers to race")
	flag.Parse()
}

func main() {
	fi, err := os.Stat(filePath)
	if err != nil {
		log.Fatalf("unable to stat %s: %v", filePath, err)
	}
	mib := float64(fi.Size()) / (1 << 20)

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()
	tbl := table.
		New("Solver", "Rounds", "P50", "P99", "Max", "MiB/s").
		WithHeaderFormatter(headerFmt).
		WithFirstColumnFormatter(columnFmt)

	var reference []byte
	names := strings.Split(solvers, ",")
	for _, name := range names {
		name = strings.TrimSpace(name)
		solve, ok := brc.Solver(name)
		if !ok {
			log.Fatalf("unknown solver %q (have: %s)", name, strings.Join(brc.SolverNames(), ", "))
		}

		meter := tachymeter.New(&tachymeter.Config{Size: rounds})
		var out bytes.Buffer
		for n := 0; n < rounds; n++ {
			out.Reset()
			start := time.Now()
			if err := solve(filePath, &out); err != nil {
				log.Fatalf("unable to run %s: %v", name, err)
			}
			meter.AddTime(time.Since(start))
		}

		// Every solver has to produce the same bytes before its numbers count.
		if reference == nil {
			reference = append([]byte(nil), out.Bytes()...)
		} else if !bytes.Equal(reference, out.Bytes()) {
			log.Fatalf("solver %q output differs from %q", name, strings.TrimSpace(names[0]))
		}

		m := meter.Calc()
		tbl.AddRow(
			name,
			rounds,
			m.Time.P50,
			m.Time.P99,
			m.Time.Max,
			fmt.Sprintf("%.1f", mib/m.Time.Avg.Seconds()),
		)
	}
	tbl.Print()
}

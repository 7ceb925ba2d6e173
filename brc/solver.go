package brc

import (
	"io"
	"sort"

	"golang.org/x/exp/maps"
)

// SolveFunc runs one complete pass over the measurement file at path and
// writes the summary line to w.
type SolveFunc func(path string, w io.Writer, opts ...Option) error

var solvers = map[string]SolveFunc{
	"baseline": SolveBaseline,
	"chunked":  SolveChunked,
	"mapped":   SolveMapped,
}

// Solver returns the named solver.
func Solver(name string) (SolveFunc, bool) {
	s, ok := solvers[name]
	return s, ok
}

// SolverNames lists the registered solvers in name order.
func SolverNames() []string {
	names := maps.Keys(solvers)
	sort.Strings(names)
	return names
}

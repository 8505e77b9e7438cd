package solver

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"tour-planner-service/internal/domain"
)

// Plain-text request/response codec for the external solver.
//
// Request: a TSPLIB-style header followed by one line per point,
// `<index> <lat> <lon>`, where index is the point's zero-based position
// in the location set. The solver answers purely in these positional
// indices, so the set must not be reordered between write and read.
//
// Response: a leading integer point count, then that many indices
// forming a permutation of 0..n-1 (whitespace separated, any line
// layout).

// WriteProblem renders a location set as a solver request file.
func WriteProblem(w io.Writer, name, comment string, set *domain.LocationSet) error {
	if set == nil || set.Len() == 0 {
		return fmt.Errorf("write problem: %w", domain.ErrEmptyInput)
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "NAME: %s\n", name)
	fmt.Fprintf(bw, "COMMENT: %s\n", comment)
	fmt.Fprintf(bw, "TYPE: TSP\n")
	fmt.Fprintf(bw, "DIMENSION: %d\n", set.Len())
	fmt.Fprintf(bw, "EDGE_WEIGHT_TYPE: GEO\n")
	fmt.Fprintf(bw, "NODE_COORD_SECTION\n")

	for i := 0; i < set.Len(); i++ {
		loc := set.At(i)
		fmt.Fprintf(bw, "%d %f %f\n", i, loc.Lat, loc.Lon)
	}

	fmt.Fprintf(bw, "EOF\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write problem: flush: %w", err)
	}
	return nil
}

// ParseSolution reads a solver response for an n-point instance and
// returns the raw visiting order. The declared point count must equal n;
// permutation completeness is enforced afterwards by domain.NewTour.
func ParseSolution(r io.Reader, n int) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("parse solution: read count: %w", err)
		}
		return nil, fmt.Errorf("parse solution: %w: empty response", domain.ErrSolverOutputMismatch)
	}

	count, err := strconv.Atoi(sc.Text())
	if err != nil {
		return nil, fmt.Errorf("parse solution: invalid count %q: %w", sc.Text(), err)
	}
	if count != n {
		return nil, fmt.Errorf(
			"parse solution: %w: response declares %d points, instance has %d",
			domain.ErrSolverOutputMismatch, count, n,
		)
	}

	order := make([]int, 0, count)
	for sc.Scan() {
		idx, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("parse solution: invalid index %q: %w", sc.Text(), err)
		}
		order = append(order, idx)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parse solution: scan: %w", err)
	}

	if len(order) != count {
		return nil, fmt.Errorf(
			"parse solution: %w: got %d indices, response declared %d",
			domain.ErrSolverOutputMismatch, len(order), count,
		)
	}

	return order, nil
}

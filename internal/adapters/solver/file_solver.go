package solver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/platform/metrics"
	"tour-planner-service/internal/platform/obs"
)

// Placeholders substituted into the configured argument list.
const (
	ProblemPlaceholder  = "{problem}"
	SolutionPlaceholder = "{solution}"
)

// Config describes how to invoke the external solver executable.
// Nothing about the solver location is hard-coded: command, arguments,
// and working directory all come from configuration.
type Config struct {
	// Command is the solver executable.
	Command string `yaml:"command"`
	// Args are passed to the command; {problem} and {solution} expand to
	// the request and response file paths.
	Args []string `yaml:"args"`
	// WorkDir is where request/response files are created and the command
	// runs. Empty means a fresh temporary directory per run.
	WorkDir string `yaml:"workdir"`
	// Name goes into the request header's NAME field.
	Name string `yaml:"name"`
	// Comment goes into the request header's COMMENT field.
	Comment string `yaml:"comment"`
	// TimeoutSeconds bounds a single solver run. Zero means no bound
	// beyond the caller's context.
	TimeoutSeconds int `yaml:"timeout_seconds"`
	// KeepFiles leaves request/response files on disk for inspection.
	KeepFiles bool `yaml:"keep_files"`
}

// FileSolver implements the TourSolver port by invoking an external exact
// TSP solver through a file-based request/response exchange.
type FileSolver struct {
	cfg Config
}

func NewFileSolver(cfg Config) (*FileSolver, error) {
	if strings.TrimSpace(cfg.Command) == "" {
		return nil, errors.New("file solver: command must be non-empty")
	}
	if cfg.Name == "" {
		cfg.Name = "tour"
	}
	if cfg.Comment == "" {
		cfg.Comment = "generated by tour-planner-service"
	}
	if len(cfg.Args) == 0 {
		cfg.Args = []string{"-o", SolutionPlaceholder, ProblemPlaceholder}
	}
	return &FileSolver{cfg: cfg}, nil
}

// Solve writes the instance, runs the configured command, and parses and
// validates the returned visiting order.
func (s *FileSolver) Solve(
	ctx context.Context,
	set *domain.LocationSet,
	m *domain.DistanceMatrix,
) (_ *domain.Tour, err error) {
	defer obs.Time(ctx, "solver.Solve")(&err)
	defer func(start time.Time) {
		status := "ok"
		if err != nil {
			status = "error"
		}
		metrics.SolverRuns.WithLabelValues(status).Inc()
		metrics.SolverDuration.Observe(time.Since(start).Seconds())
	}(time.Now())

	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("solve: %w", domain.ErrEmptyInput)
	}
	if m != nil && m.Dim() != set.Len() {
		return nil, fmt.Errorf(
			"solve: matrix dimension %d does not match set size %d",
			m.Dim(), set.Len(),
		)
	}

	dir := s.cfg.WorkDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "toursolver-*")
		if err != nil {
			return nil, fmt.Errorf("solve: create workdir: %w", err)
		}
		dir = tmp
		if !s.cfg.KeepFiles {
			defer os.RemoveAll(tmp)
		}
	}

	problemPath := filepath.Join(dir, s.cfg.Name+".tsp")
	solutionPath := filepath.Join(dir, s.cfg.Name+".sol")

	f, err := os.Create(problemPath)
	if err != nil {
		return nil, fmt.Errorf("solve: create problem file: %w", err)
	}
	if err := WriteProblem(f, s.cfg.Name, s.cfg.Comment, set); err != nil {
		f.Close()
		return nil, fmt.Errorf("solve: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("solve: close problem file: %w", err)
	}
	if !s.cfg.KeepFiles && s.cfg.WorkDir != "" {
		defer os.Remove(problemPath)
		defer os.Remove(solutionPath)
	}

	if s.cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	args := make([]string, 0, len(s.cfg.Args))
	for _, a := range s.cfg.Args {
		a = strings.ReplaceAll(a, ProblemPlaceholder, problemPath)
		a = strings.ReplaceAll(a, SolutionPlaceholder, solutionPath)
		args = append(args, a)
	}

	cmd := exec.CommandContext(ctx, s.cfg.Command, args...)
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf(
			"solve: run %q: %w (output: %s)",
			s.cfg.Command, err, strings.TrimSpace(string(out)),
		)
	}
	if len(out) > 0 {
		log.Printf("solver output: cmd=%s bytes=%d", s.cfg.Command, len(out))
	}

	sf, err := os.Open(solutionPath)
	if err != nil {
		return nil, fmt.Errorf("solve: open solution file: %w", err)
	}
	defer sf.Close()

	order, err := ParseSolution(sf, set.Len())
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}

	tour, err := domain.NewTour(set, order)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	return tour, nil
}

package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"tour-planner-service/internal/domain"
)

// stubSolver returns a fixed permutation, validating it like a real
// adapter would.
type stubSolver struct {
	order []int
	err   error
}

func (s *stubSolver) Solve(ctx context.Context, set *domain.LocationSet, m *domain.DistanceMatrix) (*domain.Tour, error) {
	if s.err != nil {
		return nil, s.err
	}
	return domain.NewTour(set, s.order)
}

type stubSource struct {
	set *domain.LocationSet
	err error
}

func (s *stubSource) FetchLocations(ctx context.Context) (*domain.LocationSet, error) {
	return s.set, s.err
}

func TestPlanTour(t *testing.T) {
	set := testSet(t, []domain.Location{
		{ID: "A", Coordinates: domain.Coordinates{Lat: 32.6, Lon: -85.4}},
		{ID: "B", Coordinates: domain.Coordinates{Lat: 31.9, Lon: -86.6}},
		{ID: "C", Coordinates: domain.Coordinates{Lat: 33.5, Lon: -86.8}},
	})

	solver := &stubSolver{order: []int{0, 2, 1}}
	source := &stubSource{set: set}

	report, err := PlanTour(context.Background(), source, solver, nil, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := report.Tour.LocationIDs(); len(got) != 3 || got[0] != "A" || got[1] != "C" || got[2] != "B" {
		t.Fatalf("tour order = %v, want [A C B]", got)
	}

	// Closed tour: three legs, ending back at A.
	if len(report.Legs) != 3 {
		t.Fatalf("legs = %d, want 3", len(report.Legs))
	}
	if report.Legs[2].To != "A" {
		t.Errorf("return leg ends at %q, want A", report.Legs[2].To)
	}

	sum := 0.0
	for _, leg := range report.Legs {
		sum += leg.Miles
	}
	if math.Abs(sum-report.TotalMiles) > 1e-9 {
		t.Errorf("leg sum %v != total %v", sum, report.TotalMiles)
	}

	if report.Stats.Pairs != 3 {
		t.Errorf("stats pairs = %d, want 3", report.Stats.Pairs)
	}
}

func TestPlanTourOpen(t *testing.T) {
	set := testSet(t, []domain.Location{
		{ID: "A", Coordinates: domain.Coordinates{Lat: 32.6, Lon: -85.4}},
		{ID: "B", Coordinates: domain.Coordinates{Lat: 31.9, Lon: -86.6}},
	})

	report, err := PlanTourForSet(context.Background(), set, &stubSolver{order: []int{1, 0}}, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Legs) != 1 {
		t.Fatalf("legs = %d, want 1", len(report.Legs))
	}
	if report.Legs[0].From != "B" || report.Legs[0].To != "A" {
		t.Errorf("leg = %+v, want B -> A", report.Legs[0])
	}
}

func TestPlanTourEmptySource(t *testing.T) {
	source := &stubSource{set: domain.NewLocationSet()}
	_, err := PlanTour(context.Background(), source, &stubSolver{}, nil, false)
	if !errors.Is(err, domain.ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
}

func TestPlanTourSolverFailure(t *testing.T) {
	set := testSet(t, []domain.Location{
		{ID: "A", Coordinates: domain.Coordinates{Lat: 1, Lon: 1}},
		{ID: "B", Coordinates: domain.Coordinates{Lat: 2, Lon: 2}},
	})

	// Solver hands back a permutation for the wrong instance size.
	_, err := PlanTourForSet(context.Background(), set, &stubSolver{order: []int{0, 1, 2}}, nil, false)
	if !errors.Is(err, domain.ErrSolverOutputMismatch) {
		t.Fatalf("error = %v, want ErrSolverOutputMismatch", err)
	}
}

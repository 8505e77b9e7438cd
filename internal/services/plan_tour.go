package services

import (
	"context"
	"fmt"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

// TourLeg is one hop of a planned tour.
type TourLeg struct {
	From  string
	To    string
	Miles float64
}

// TourReport is the full output of one planning run: the validated tour
// plus the summary numbers the reporting surfaces print.
type TourReport struct {
	Tour       *domain.Tour
	Matrix     *domain.DistanceMatrix
	Legs       []TourLeg
	TotalMiles float64
	Closed     bool
	Stats      MatrixStats
}

// PlanTour runs the full pipeline: fetch locations, build the distance
// matrix, submit the instance to the solver, and assemble the report.
//
// Every stage hands its output to the next as an explicit value; there is
// no shared state between stages, and any failure aborts the run.
func PlanTour(
	ctx context.Context,
	source ports.LocationSource,
	solver ports.TourSolver,
	dist DistanceFunc,
	closed bool,
) (*TourReport, error) {
	set, err := source.FetchLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan tour: fetch locations: %w", err)
	}

	return PlanTourForSet(ctx, set, solver, dist, closed)
}

// PlanTourForSet plans a tour over an already-loaded location set.
func PlanTourForSet(
	ctx context.Context,
	set *domain.LocationSet,
	solver ports.TourSolver,
	dist DistanceFunc,
	closed bool,
) (*TourReport, error) {
	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("plan tour: %w", domain.ErrEmptyInput)
	}

	matrix, err := BuildDistanceMatrix(set, dist)
	if err != nil {
		return nil, fmt.Errorf("plan tour: %w", err)
	}

	tour, err := solver.Solve(ctx, set, matrix)
	if err != nil {
		return nil, fmt.Errorf("plan tour: solve: %w", err)
	}

	stats, err := SummarizeMatrix(matrix)
	if err != nil {
		return nil, fmt.Errorf("plan tour: %w", err)
	}

	order := tour.Order
	if closed {
		order = tour.ClosedOrder()
	}

	legs := make([]TourLeg, 0, len(order)-1)
	for i := 0; i+1 < len(order); i++ {
		from, to := order[i], order[i+1]
		legs = append(legs, TourLeg{
			From:  set.At(from).ID,
			To:    set.At(to).ID,
			Miles: matrix.At(from, to),
		})
	}

	return &TourReport{
		Tour:       tour,
		Matrix:     matrix,
		Legs:       legs,
		TotalMiles: tour.TotalDistance(matrix, closed),
		Closed:     closed,
		Stats:      stats,
	}, nil
}

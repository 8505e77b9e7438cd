package ports

import (
	"context"

	"tour-planner-service/internal/domain"
)

// Port: a boundary for the external TSP solver.
//
// The solver is an opaque service: one operation in, one validated tour
// out. Keeping the boundary this narrow lets the exact backend be swapped
// for a different exact or heuristic solver without touching the distance
// matrix logic.
type TourSolver interface {
	// Solve returns a visiting order over the set. Implementations must
	// return a tour that has been validated as a complete permutation.
	Solve(ctx context.Context, set *domain.LocationSet, m *domain.DistanceMatrix) (*domain.Tour, error)
}

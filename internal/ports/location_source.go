package ports

import (
	"context"

	"tour-planner-service/internal/domain"
)

// Port: a boundary for discovering the ordered set of locations to visit.
type LocationSource interface {
	// Fetch locations in a stable order (solver indices follow this order).
	FetchLocations(ctx context.Context) (*domain.LocationSet, error)
}

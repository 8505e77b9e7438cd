package ports

import (
	"context"

	"tour-planner-service/internal/domain"
)

// Port: a boundary for persisting and retrieving discovered locations.
type LocationRepository interface {
	// Retrieve all stored locations in their persisted positional order.
	ListLocations(ctx context.Context) ([]domain.Location, error)

	// Replace the stored set with the given ordered locations.
	SaveLocations(ctx context.Context, locs []domain.Location) error
}

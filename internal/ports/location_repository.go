package ports

import (
	"context"
	"delivery-route-optimizer/internal/domain"
)

// Port: a boundary for retrieving the fixed set of routable locations.
type LocationRepository interface {
	// Retrieve all locations, depot first, then the remaining ones by ID.
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

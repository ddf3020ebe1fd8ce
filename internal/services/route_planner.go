package services

import (
	"context"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/ports"
	"errors"
	"fmt"
)

// Depot index of every location list handed to the planner.
const DepotIndex = 0

// RoutePlanner runs the full pipeline: coordinates to matrix, matrix to tour,
// tour to summary. The zero value plans without a distance cache using default
// solver options.
type RoutePlanner struct {
	Cache   ports.DistanceCache
	Options Options
}

// Plan a closed route over locations that starts and ends at locations[0].
func (p *RoutePlanner) Plan(ctx context.Context, locations []domain.Location) (*domain.RoutePlan, error) {
	if len(locations) == 0 {
		return nil, fmt.Errorf("plan route: no locations: %w", domain.ErrInvalidInput)
	}

	// Copy so the plan never aliases caller memory.
	locs := make([]domain.Location, len(locations))
	copy(locs, locations)

	m, err := BuildDistanceMatrixCached(ctx, locs, p.Cache)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	algo, err := ResolveAlgorithm(m.Size(), p.Options)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	tour, total, err := Solve(ctx, m, DepotIndex, p.Options)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	summary, err := Summarize(tour, m, domain.Names(locs))
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	return &domain.RoutePlan{
		Locations:           locs,
		Matrix:              m,
		Tour:                tour,
		TotalDistanceMeters: total,
		Algorithm:           algo,
		Summary:             summary,
	}, nil
}

// PlanStored plans over every location in repo, with the depot first.
func (p *RoutePlanner) PlanStored(ctx context.Context, repo ports.LocationRepository) (*domain.RoutePlan, error) {
	if repo == nil {
		return nil, errors.New("plan stored route: repository must be non-nil")
	}

	locations, err := repo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan stored route: list locations: %w", err)
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("plan stored route: location store is empty: %w", domain.ErrInvalidInput)
	}

	plan, err := p.Plan(ctx, locations)
	if err != nil {
		return nil, fmt.Errorf("plan stored route: %w", err)
	}
	return plan, nil
}

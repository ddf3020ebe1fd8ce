package repositories

import (
	"context"
	"delivery-route-optimizer/internal/domain"
	"slices"
)

// StaticLocationRepository serves a fixed list, e.g. one loaded from a seed file.
type StaticLocationRepository struct {
	Locations []domain.Location
}

// NewStaticLocationRepositoryFromFile loads and orders a seed file.
func NewStaticLocationRepositoryFromFile(jsonPath string) (*StaticLocationRepository, error) {
	seeds, err := LoadSeedFile(jsonPath)
	if err != nil {
		return nil, err
	}
	return &StaticLocationRepository{Locations: SeedLocations(seeds)}, nil
}

func (s *StaticLocationRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	return slices.Clone(s.Locations), nil
}

package repositories

import (
	"context"
	"database/sql"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/platform/obs"
	"errors"
	"fmt"
)

// SQL-backed implementation of the LocationRepository port.
// The query is portable across SQLite and Postgres.
type SQLLocationRepository struct{ DB *sql.DB }

func NewSQLLocationRepository(db *sql.DB) *SQLLocationRepository {
	return &SQLLocationRepository{DB: db}
}

// Return all stored locations, depot first, then by location_id.
func (s *SQLLocationRepository) ListLocations(ctx context.Context) (_ []domain.Location, err error) {
	defer obs.Time(ctx, "locations.List")(&err)

	if s.DB == nil {
		return nil, errors.New("location repository: DB is nil")
	}

	query := `
	SELECT
		location_id,
		name,
		lat,
		lon
	FROM locations
	ORDER BY is_depot DESC, location_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: query locations table: %w", err)
	}
	defer rows.Close()

	locations := make([]domain.Location, 0, 16)
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Lat, &l.Lon); err != nil {
			return nil, fmt.Errorf("list locations: scan row: %w", err)
		}
		locations = append(locations, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: row iteration: %w", err)
	}

	return locations, nil
}

package repositories

import (
	"cmp"
	"context"
	"database/sql"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/platform/db"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

type LocationSeed struct {
	LocationID int     `json:"location_id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	IsDepot    bool    `json:"is_depot"`
}

// LoadSeedFile reads and validates a location seed file.
func LoadSeedFile(jsonPath string) ([]LocationSeed, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", jsonPath, err)
	}

	var data []LocationSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load seed: parse json: %w", err)
	}

	if err := validateSeeds(data); err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}

	return data, nil
}

func validateSeeds(data []LocationSeed) error {
	ids := make(map[int]struct{}, len(data))
	depots := 0

	for i := range data {
		item := &data[i]

		if item.LocationID <= 0 {
			return fmt.Errorf("invalid location_id at index %d: %d: %w", i+1, item.LocationID, domain.ErrInvalidInput)
		}
		if _, dup := ids[item.LocationID]; dup {
			return fmt.Errorf("duplicate location_id %d: %w", item.LocationID, domain.ErrInvalidInput)
		}
		ids[item.LocationID] = struct{}{}

		item.Name = strings.TrimSpace(item.Name)
		if item.Name == "" {
			return fmt.Errorf("location_id=%d: name cannot be empty: %w", item.LocationID, domain.ErrInvalidInput)
		}

		c := domain.Coordinates{Lat: item.Lat, Lon: item.Lon}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("location_id=%d: %w", item.LocationID, err)
		}

		if item.IsDepot {
			depots++
		}
	}

	if depots > 1 {
		return fmt.Errorf("%d locations marked is_depot, want at most 1: %w", depots, domain.ErrInvalidInput)
	}

	return nil
}

// SeedLocations orders seeds depot first, then by location_id, and converts
// them to domain locations. Without a marked depot the lowest id leads.
func SeedLocations(seeds []LocationSeed) []domain.Location {
	sorted := slices.Clone(seeds)
	slices.SortFunc(sorted, func(a, b LocationSeed) int {
		if a.IsDepot != b.IsDepot {
			if a.IsDepot {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.LocationID, b.LocationID)
	})

	out := make([]domain.Location, len(sorted))
	for i, s := range sorted {
		out[i] = domain.Location{
			ID:          s.LocationID,
			Name:        s.Name,
			Coordinates: domain.Coordinates{Lat: s.Lat, Lon: s.Lon},
		}
	}
	return out
}

// SeedFromJSON populates the locations table from a JSON file.
// driver selects the placeholder dialect (db.DriverSQLite or db.DriverPostgres).
func SeedFromJSON(ctx context.Context, conn *sql.DB, driver, jsonPath string) error {
	if conn == nil {
		return errors.New("seed locations: DB is nil")
	}

	rows, err := LoadSeedFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed locations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf(`
	INSERT INTO locations (
		location_id,
		name,
		lat,
		lon,
		is_depot
	)
	VALUES (%s)
	ON CONFLICT (location_id) DO UPDATE
	SET name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		is_depot = EXCLUDED.is_depot;
	`, placeholders(driver, 5))

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed locations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range rows {
		if _, err := stmt.ExecContext(ctx, l.LocationID, l.Name, l.Lat, l.Lon, l.IsDepot); err != nil {
			return fmt.Errorf("seed locations: insert location_id=%d: %w", l.LocationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed locations: commit tx: %w", err)
	}

	return nil
}

// placeholders renders n bind parameters in the driver's dialect.
func placeholders(driver string, n int) string {
	ph := make([]string, n)
	for i := range ph {
		if driver == db.DriverPostgres {
			ph[i] = fmt.Sprintf("$%d", i+1)
		} else {
			ph[i] = "?"
		}
	}
	return strings.Join(ph, ", ")
}

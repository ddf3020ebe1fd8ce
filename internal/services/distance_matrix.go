package services

import (
	"context"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/platform/metrics"
	"delivery-route-optimizer/internal/platform/obs"
	"fmt"
	"runtime"
	"time"

	"github.com/tidwall/geodesic"
	"golang.org/x/sync/errgroup"
)

// Below this size rows are filled sequentially; fan-out costs more than it saves.
const parallelMatrixThreshold = 64

// GeodesicMeters returns the WGS-84 ellipsoidal distance between a and b,
// truncated to whole meters.
//
// The distance is expressed in kilometers and multiplied back by 1000 before
// truncation, so values match a km-based pipeline bit for bit. Points are
// ordered before the inverse solution, which makes the result independent of
// argument order.
func GeodesicMeters(a, b domain.Coordinates) int64 {
	if b.Lat < a.Lat || (b.Lat == a.Lat && b.Lon < a.Lon) {
		a, b = b, a
	}

	var s12 float64
	geodesic.WGS84.Inverse(a.Lat, a.Lon, b.Lat, b.Lon, &s12, nil, nil)

	km := s12 / 1000
	return int64(km * 1000)
}

// BuildDistanceMatrix converts locations into a symmetric integer meter matrix.
//
// It fails with domain.ErrInvalidInput when fewer than two locations are given
// or any coordinate is out of range. Only the upper triangle is computed and
// mirrored, so the result is exactly symmetric with a zero diagonal.
func BuildDistanceMatrix(ctx context.Context, locations []domain.Location) (_ domain.DistanceMatrix, err error) {
	defer obs.Time(ctx, "matrix.Build", "n", len(locations))(&err)

	if err := validateLocations(locations); err != nil {
		return nil, err
	}

	start := time.Now()
	n := len(locations)
	m := newMatrix(n)

	fillRow := func(i int) {
		for j := i + 1; j < n; j++ {
			d := GeodesicMeters(locations[i].Coordinates, locations[j].Coordinates)
			m[i][j] = d
			m[j][i] = d
		}
	}

	if n < parallelMatrixThreshold {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("build distance matrix: %w", err)
			}
			fillRow(i)
		}
	} else {
		// Each row writes only cells (i, j>i) and their mirrors, so rows never overlap.
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := 0; i < n; i++ {
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				fillRow(i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("build distance matrix: %w", err)
		}
	}

	metrics.MatrixBuildDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	return m, nil
}

func validateLocations(locations []domain.Location) error {
	if len(locations) < 2 {
		return fmt.Errorf(
			"build distance matrix: need at least 2 locations, got %d: %w",
			len(locations), domain.ErrInvalidInput,
		)
	}

	for i, l := range locations {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("build distance matrix: location %d (%q): %w", i, l.Name, err)
		}
	}

	return nil
}

func newMatrix(n int) domain.DistanceMatrix {
	cells := make([]int64, n*n)
	m := make(domain.DistanceMatrix, n)
	for i := range m {
		m[i] = cells[i*n : (i+1)*n : (i+1)*n]
	}
	return m
}

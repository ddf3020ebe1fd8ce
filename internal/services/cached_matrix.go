package services

import (
	"context"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/platform/metrics"
	"delivery-route-optimizer/internal/platform/obs"
	"delivery-route-optimizer/internal/ports"
	"fmt"
	"log"
	"slices"
)

type pairIndex struct{ i, j int }

// BuildDistanceMatrixCached behaves like BuildDistanceMatrix but reads and
// fills a pairwise distance cache.
//
// Pairs are keyed by coordinates with the lexically smaller key as origin, so a
// pair is cached once regardless of location order. Cache reads that fail abort
// the build; cache writes that fail are logged and ignored.
func BuildDistanceMatrixCached(
	ctx context.Context,
	locations []domain.Location,
	cache ports.DistanceCache,
) (_ domain.DistanceMatrix, err error) {
	if cache == nil {
		return BuildDistanceMatrix(ctx, locations)
	}

	defer obs.Time(ctx, "matrix.BuildCached", "n", len(locations))(&err)

	if err := validateLocations(locations); err != nil {
		return nil, err
	}

	n := len(locations)
	m := newMatrix(n)

	coords := make(map[string]domain.Coordinates, n)
	byOrigin := make(map[string]map[string][]pairIndex)

	for i := 0; i < n; i++ {
		coords[locations[i].Key()] = locations[i].Coordinates
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := locations[i].Key(), locations[j].Key()
			if a == b {
				continue // coincident points stay at zero
			}
			if b < a {
				a, b = b, a
			}

			if byOrigin[a] == nil {
				byOrigin[a] = make(map[string][]pairIndex)
			}
			byOrigin[a][b] = append(byOrigin[a][b], pairIndex{i, j})
		}
	}

	origins := make([]string, 0, len(byOrigin))
	for o := range byOrigin {
		origins = append(origins, o)
	}
	slices.Sort(origins)

	for _, origin := range origins {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("build cached distance matrix: %w", err)
		}

		destinations := make([]string, 0, len(byOrigin[origin]))
		for d := range byOrigin[origin] {
			destinations = append(destinations, d)
		}
		slices.Sort(destinations)

		hits, err := cache.GetMany(ctx, origin, destinations)
		if err != nil {
			return nil, fmt.Errorf("build cached distance matrix: get cache for %q: %w", origin, err)
		}

		fresh := make(map[string]int64)
		for _, dest := range destinations {
			d, ok := hits[dest]
			if ok {
				metrics.DistanceCacheHitsTotal.Inc()
			} else {
				metrics.DistanceCacheMissesTotal.Inc()
				d = GeodesicMeters(coords[origin], coords[dest])
				fresh[dest] = d
			}

			for _, p := range byOrigin[origin][dest] {
				m[p.i][p.j] = d
				m[p.j][p.i] = d
			}
		}

		if len(fresh) > 0 {
			if err := cache.PutMany(ctx, origin, fresh); err != nil {
				log.Printf("distance cache write failed: origin=%s err=%v", origin, err)
			}
		}
	}

	return m, nil
}

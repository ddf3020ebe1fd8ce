package ports

import "context"

// Contract for a persistent store of pairwise distances in meters.
// Keys are coordinate keys (domain.Coordinates.Key); implementations
// must be safe for concurrent use.
type DistanceCache interface {
	// Return cached distances from one origin to the destinations that are present.
	// Misses are simply absent from the result.
	GetMany(ctx context.Context, origin string, destinations []string) (map[string]int64, error)
	// Store distances from one origin to many destinations.
	PutMany(ctx context.Context, origin string, results map[string]int64) error
}

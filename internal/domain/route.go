package domain

import "fmt"

// Routing regime used to produce a tour.
type Algorithm string

const (
	AlgorithmAuto      Algorithm = "auto"
	AlgorithmExact     Algorithm = "exact"
	AlgorithmHeuristic Algorithm = "heuristic"
)

// Closed visiting order over matrix indices.
// For n locations a tour holds n+1 entries, begins and ends at the same start
// index, and contains every other index exactly once in between.
type Tour []int

// Validate checks the tour invariants against a matrix of dimension n.
func (t Tour) Validate(n int) error {
	if n < 1 {
		return fmt.Errorf("tour: dimension %d must be positive: %w", n, ErrInvalidTour)
	}
	if len(t) != n+1 {
		return fmt.Errorf("tour: length %d, want %d: %w", len(t), n+1, ErrInvalidTour)
	}

	start := t[0]
	if start < 0 || start >= n {
		return fmt.Errorf("tour: start index %d out of range: %w", start, ErrInvalidTour)
	}
	if t[n] != start {
		return fmt.Errorf("tour: ends at %d, want start %d: %w", t[n], start, ErrInvalidTour)
	}

	seen := make([]bool, n)
	for pos, v := range t[:n] {
		if v < 0 || v >= n {
			return fmt.Errorf("tour: index %d at position %d out of range: %w", v, pos, ErrInvalidTour)
		}
		if seen[v] {
			return fmt.Errorf("tour: index %d visited twice: %w", v, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// Cost sums the matrix entries along consecutive tour legs.
func (t Tour) Cost(m DistanceMatrix) int64 {
	var total int64
	for i := 0; i+1 < len(t); i++ {
		total += m[t[i]][t[i+1]]
	}
	return total
}

// One leg of a route summary. Distances are kilometers derived from the
// integer meter matrix without further rounding.
type RouteLeg struct {
	FromIndex    int
	ToIndex      int
	From         string
	To           string
	DistanceKm   float64
	CumulativeKm float64
}

// Ordered legs of a tour plus its total distance.
// The last leg's CumulativeKm equals TotalDistanceKm.
type RouteSummary struct {
	Legs                []RouteLeg
	TotalDistanceMeters int64
	TotalDistanceKm     float64
}

// Represents the optimized route for a set of locations.
// A RoutePlan is immutable planning data handed to presentation layers;
// indices in Tour refer to Locations and Matrix.
type RoutePlan struct {
	Locations           []Location
	Matrix              DistanceMatrix
	Tour                Tour
	TotalDistanceMeters int64
	Algorithm           Algorithm
	Summary             RouteSummary
}

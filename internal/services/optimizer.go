package services

import (
	"context"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/platform/metrics"
	"delivery-route-optimizer/internal/platform/obs"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultExactMaxNodes  = 13
	DefaultExactHardLimit = 16
	DefaultTwoOptMaxMoves = 100000

	// MaxExactHardLimit bounds ExactHardLimit. The Held–Karp table holds
	// (n-1)·2ⁿ⁻¹ entries, about 90 MB at 20 nodes.
	MaxExactHardLimit = 20
)

// ErrSearchSpaceTooLarge is returned when the exact solver is forced on more
// nodes than ExactHardLimit allows.
var ErrSearchSpaceTooLarge = errors.New("search space too large for exact solver")

// Options tunes Solve. The zero value selects the documented defaults.
type Options struct {
	// Algorithm selects the regime. Auto picks exact for small inputs.
	Algorithm domain.Algorithm
	// Largest node count solved exactly in auto mode.
	ExactMaxNodes int
	// Largest node count the exact solver accepts at all, capped at
	// MaxExactHardLimit.
	ExactHardLimit int
	// Cap on accepted 2-opt moves per descent.
	TwoOptMaxMoves int
	// Number of heuristic starts evaluated; the best tour wins.
	MultiStart int
}

func (o Options) withDefaults() Options {
	if o.Algorithm == "" {
		o.Algorithm = domain.AlgorithmAuto
	}
	if o.ExactHardLimit <= 0 {
		o.ExactHardLimit = DefaultExactHardLimit
	}
	o.ExactHardLimit = min(o.ExactHardLimit, MaxExactHardLimit)
	if o.ExactMaxNodes <= 0 {
		o.ExactMaxNodes = DefaultExactMaxNodes
	}
	if o.ExactMaxNodes > o.ExactHardLimit {
		o.ExactMaxNodes = o.ExactHardLimit
	}
	if o.TwoOptMaxMoves <= 0 {
		o.TwoOptMaxMoves = DefaultTwoOptMaxMoves
	}
	if o.MultiStart <= 0 {
		o.MultiStart = 1
	}
	return o
}

// ResolveAlgorithm returns the regime Solve will use for n nodes.
func ResolveAlgorithm(n int, opts Options) (domain.Algorithm, error) {
	opts = opts.withDefaults()

	switch opts.Algorithm {
	case domain.AlgorithmAuto:
		if n <= opts.ExactMaxNodes {
			return domain.AlgorithmExact, nil
		}
		return domain.AlgorithmHeuristic, nil
	case domain.AlgorithmExact:
		if n > opts.ExactHardLimit {
			return "", fmt.Errorf("resolve algorithm: %d nodes exceeds limit %d: %w", n, opts.ExactHardLimit, ErrSearchSpaceTooLarge)
		}
		return domain.AlgorithmExact, nil
	case domain.AlgorithmHeuristic:
		return domain.AlgorithmHeuristic, nil
	default:
		return "", fmt.Errorf("resolve algorithm: unknown algorithm %q: %w", opts.Algorithm, domain.ErrInvalidInput)
	}
}

// Solve computes a minimum-cost closed tour over m that starts and ends at start.
//
// Inputs up to ExactMaxNodes are solved exactly with Held–Karp; larger inputs
// use nearest-neighbor construction followed by 2-opt. Output is deterministic
// for identical inputs. The returned total equals tour.Cost(m).
//
// A malformed matrix or out-of-range start yields domain.ErrNoSolution.
// Cancellation of ctx aborts the search.
func Solve(ctx context.Context, m domain.DistanceMatrix, start int, opts Options) (_ domain.Tour, _ int64, err error) {
	opts = opts.withDefaults()
	n := m.Size()

	algo, err := ResolveAlgorithm(n, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("solve: %w", err)
	}

	defer obs.Time(ctx, "solver.Solve", "n", n, "algorithm", algo)(&err)

	began := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}
		metrics.SolvesTotal.WithLabelValues(string(algo), result).Inc()
		metrics.SolveDurationMs.WithLabelValues(string(algo)).Observe(float64(time.Since(began).Milliseconds()))
	}()

	if err := m.Validate(); err != nil {
		return nil, 0, fmt.Errorf("solve: %w", err)
	}
	if start < 0 || start >= n {
		return nil, 0, fmt.Errorf("solve: start index %d out of range [0, %d): %w", start, n, domain.ErrNoSolution)
	}

	if n == 1 {
		return domain.Tour{start, start}, 0, nil
	}

	var (
		tour  domain.Tour
		total int64
	)
	switch algo {
	case domain.AlgorithmExact:
		tour, total, err = heldKarp(ctx, m, start)
	default:
		tour, total, err = solveHeuristic(ctx, m, start, opts)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("solve: %w", err)
	}

	tour = canonicalOrientation(m, tour, total)

	if verr := tour.Validate(n); verr != nil {
		return nil, 0, fmt.Errorf("solve: solver produced an invalid tour: %w", verr)
	}
	if c := tour.Cost(m); c != total {
		return nil, 0, fmt.Errorf("solve: tour cost %d disagrees with solver total %d: %w", c, total, domain.ErrNoSolution)
	}

	return tour, total, nil
}

// canonicalOrientation returns the reversed tour when it costs the same and
// visits a lower index first, so mirror-image optima resolve identically.
func canonicalOrientation(m domain.DistanceMatrix, tour domain.Tour, total int64) domain.Tour {
	n := len(tour) - 1
	if n < 3 || tour[1] < tour[n-1] {
		return tour
	}

	rev := make(domain.Tour, len(tour))
	copy(rev, tour)
	reverseSegment(rev, 1, n-1)

	if rev.Cost(m) != total {
		return tour
	}
	return rev
}

// reverseSegment reverses t[i..k] in place.
func reverseSegment(t domain.Tour, i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}

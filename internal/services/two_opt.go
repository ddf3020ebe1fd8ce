package services

import (
	"context"
	"delivery-route-optimizer/internal/domain"
	"fmt"
)

// Candidate evaluations between cancellation checks.
const twoOptCheckEvery = 2048

// twoOpt improves tour in place by first-improvement 2-opt descent.
//
// For every pair of non-adjacent edges (t[i-1],t[i]) and (t[k],t[k+1]) the
// segment t[i..k] is reversed when that strictly lowers the tour cost, and the
// scan restarts from the beginning. The search ends at a local optimum or once
// maxMoves moves have been applied. Endpoints never move.
//
// It returns the new cost and the number of applied moves.
func twoOpt(ctx context.Context, m domain.DistanceMatrix, tour domain.Tour, cost int64, maxMoves int) (int64, int, error) {
	n := len(tour) - 1
	if n < 4 {
		return cost, 0, nil
	}

	symmetric := m.IsSymmetric()
	moves := 0
	evals := 0

	for moves < maxMoves {
		improved := false

	scan:
		for i := 1; i <= n-2; i++ {
			for k := i + 1; k <= n-1; k++ {
				if i == 1 && k == n-1 {
					continue // both edges touch the depot
				}

				evals++
				if evals%twoOptCheckEvery == 0 {
					if err := ctx.Err(); err != nil {
						return 0, moves, fmt.Errorf("2-opt: %w", err)
					}
				}

				var delta int64
				if symmetric {
					delta = symmetricDelta(m, tour, i, k)
				} else {
					delta = directedDelta(m, tour, i, k)
				}

				if delta < 0 {
					reverseSegment(tour, i, k)
					cost += delta
					moves++
					improved = true
					break scan
				}
			}
		}

		if !improved {
			break
		}
	}

	return cost, moves, nil
}

func symmetricDelta(m domain.DistanceMatrix, t domain.Tour, i, k int) int64 {
	a, b := t[i-1], t[i]
	c, d := t[k], t[k+1]
	return m[a][c] + m[b][d] - m[a][b] - m[c][d]
}

// directedDelta also accounts for the reversed interior edges, which change
// cost when the matrix is not symmetric.
func directedDelta(m domain.DistanceMatrix, t domain.Tour, i, k int) int64 {
	delta := symmetricDelta(m, t, i, k)
	for p := i; p < k; p++ {
		delta += m[t[p+1]][t[p]] - m[t[p]][t[p+1]]
	}
	return delta
}

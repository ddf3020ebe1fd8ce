package services

import (
	"context"
	"delivery-route-optimizer/internal/domain"
	"fmt"
	"math"
)

const unreachable = math.MaxInt64

// heldKarp solves the tour exactly by dynamic programming over subsets.
//
// The nodes other than start are renumbered 0..k-1 in ascending index order.
// dp[mask*k+j] is the cheapest path that leaves start, visits exactly the
// nodes in mask and ends at j. Predecessors are scanned in ascending order and
// only replaced on a strictly lower cost, so ties resolve to the lowest index.
//
// Time O(n²·2ⁿ), memory O(n·2ⁿ).
func heldKarp(ctx context.Context, m domain.DistanceMatrix, start int) (domain.Tour, int64, error) {
	n := m.Size()

	others := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		if v != start {
			others = append(others, v)
		}
	}

	k := len(others)
	full := 1<<k - 1

	dp := make([]int64, (full+1)*k)
	parent := make([]int8, (full+1)*k)
	for i := range dp {
		dp[i] = unreachable
		parent[i] = -1
	}

	for j, v := range others {
		dp[(1<<j)*k+j] = m[start][v]
	}

	for mask := 1; mask <= full; mask++ {
		if mask&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, 0, fmt.Errorf("held-karp: %w", err)
			}
		}

		for j := 0; j < k; j++ {
			bit := 1 << j
			if mask&bit == 0 {
				continue
			}
			prev := mask ^ bit
			if prev == 0 {
				continue // base case seeded above
			}

			best := int64(unreachable)
			bestP := -1
			for p := 0; p < k; p++ {
				if prev&(1<<p) == 0 {
					continue
				}
				c := dp[prev*k+p]
				if c == unreachable {
					continue
				}
				if cand := c + m[others[p]][others[j]]; cand < best {
					best = cand
					bestP = p
				}
			}

			dp[mask*k+j] = best
			parent[mask*k+j] = int8(bestP)
		}
	}

	// Close the cycle back to start; the lowest-index last node wins ties.
	bestTotal := int64(unreachable)
	last := -1
	for j, v := range others {
		c := dp[full*k+j]
		if c == unreachable {
			continue
		}
		if total := c + m[v][start]; total < bestTotal {
			bestTotal = total
			last = j
		}
	}
	if last < 0 {
		return nil, 0, fmt.Errorf("held-karp: no closed tour through %d nodes: %w", n, domain.ErrNoSolution)
	}

	tour := make(domain.Tour, n+1)
	tour[0], tour[n] = start, start
	mask, j := full, last
	for pos := n - 1; pos >= 1; pos-- {
		tour[pos] = others[j]
		p := int(parent[mask*k+j])
		mask ^= 1 << j
		j = p
	}

	return tour, bestTotal, nil
}

package services

import (
	"delivery-route-optimizer/internal/domain"
	"math"
	"slices"
)

// nearestNeighborTour builds a closed tour from start using a greedy
// nearest-neighbor walk.
//
// Each step moves to the closest unvisited node. When firstHop is a valid node
// the first move goes there unconditionally, which lets callers seed different
// walks from the same start.
func nearestNeighborTour(m domain.DistanceMatrix, start, firstHop int) domain.Tour {
	n := m.Size()

	visited := make([]bool, n)
	tour := make(domain.Tour, 0, n+1)

	tour = append(tour, start)
	visited[start] = true
	current := start

	if firstHop >= 0 && firstHop < n && firstHop != start {
		tour = append(tour, firstHop)
		visited[firstHop] = true
		current = firstHop
	}

	for len(tour) < n {
		best := -1
		minDistance := int64(math.MaxInt64)

		// Ascending scan with a strict comparison keeps the lowest index on ties.
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			if d := m[current][j]; d < minDistance {
				minDistance = d
				best = j
			}
		}

		tour = append(tour, best)
		visited[best] = true
		current = best
	}

	return append(tour, start)
}

// neighborsByDistance lists every node except start, closest first, with ties
// broken by index.
func neighborsByDistance(m domain.DistanceMatrix, start int) []int {
	n := m.Size()

	out := make([]int, 0, n-1)
	for j := 0; j < n; j++ {
		if j != start {
			out = append(out, j)
		}
	}

	slices.SortStableFunc(out, func(a, b int) int {
		da, db := m[start][a], m[start][b]
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return a - b
		}
	})

	return out
}

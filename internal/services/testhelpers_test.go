package services

import (
	"delivery-route-optimizer/internal/domain"
	"math"
	"math/rand/v2"
)

var outlets = []domain.Location{
	{Name: "Hebbal", Coordinates: domain.Coordinates{Lat: 13.0378748, Lon: 77.6017724}},
	{Name: "Yeshwantpur", Coordinates: domain.Coordinates{Lat: 13.0215944, Lon: 77.5508614}},
	{Name: "Indiranagar", Coordinates: domain.Coordinates{Lat: 12.9781839, Lon: 77.6398741}},
	{Name: "Sarjapura", Coordinates: domain.Coordinates{Lat: 12.8583418, Lon: 77.7808364}},
	{Name: "KR Puram", Coordinates: domain.Coordinates{Lat: 13.0075813, Lon: 77.6919984}},
}

// triangle is a 3-4-5 right triangle in meters.
var triangle = domain.DistanceMatrix{
	{0, 3000, 5000},
	{3000, 0, 4000},
	{5000, 4000, 0},
}

// planarMatrix places n random points on a 10 km square and rounds their
// Euclidean distances to meters.
func planarMatrix(n int, seed uint64) domain.DistanceMatrix {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = r.Float64() * 10000
		ys[i] = r.Float64() * 10000
	}

	m := newMatrix(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := int64(math.Round(math.Hypot(xs[i]-xs[j], ys[i]-ys[j])))
			m[i][j], m[j][i] = d, d
		}
	}
	return m
}

// directedMatrix returns random non-negative costs with m[i][j] != m[j][i] in general.
func directedMatrix(n int, seed uint64) domain.DistanceMatrix {
	r := rand.New(rand.NewPCG(seed, seed+1))

	m := newMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				m[i][j] = 100 + r.Int64N(9900)
			}
		}
	}
	return m
}

// bruteForceCost enumerates every tour from start and returns the minimum cost.
func bruteForceCost(m domain.DistanceMatrix, start int) int64 {
	n := m.Size()
	rest := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		if v != start {
			rest = append(rest, v)
		}
	}

	best := int64(math.MaxInt64)
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			t := append(append(domain.Tour{start}, rest...), start)
			if c := t.Cost(m); c < best {
				best = c
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}

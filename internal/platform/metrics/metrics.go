package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SolvesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "routeopt_solves_total",
		Help: "Total number of tour optimizations by regime and result",
	}, []string{"algorithm", "result"})
	SolveDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "routeopt_solve_duration_ms",
		Help:    "Tour optimization duration in milliseconds",
		Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 30000},
	}, []string{"algorithm"})
	TwoOptMovesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "routeopt_two_opt_moves_total",
		Help: "Total accepted 2-opt improving moves",
	})
	MatrixBuildDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "routeopt_matrix_build_duration_ms",
		Help:    "Distance matrix build duration in milliseconds",
		Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
	})
	DistanceCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "routeopt_distance_cache_hits_total",
		Help: "Total pairwise distances served from the cache",
	})
	DistanceCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "routeopt_distance_cache_misses_total",
		Help: "Total pairwise distances computed after a cache miss",
	})
)

func init() {
	prometheus.MustRegister(SolvesTotal)
	prometheus.MustRegister(SolveDurationMs)
	prometheus.MustRegister(TwoOptMovesTotal)
	prometheus.MustRegister(MatrixBuildDurationMs)
	prometheus.MustRegister(DistanceCacheHitsTotal)
	prometheus.MustRegister(DistanceCacheMissesTotal)
}

// Handler exposes the registered collectors for scraping at /metrics.
func Handler() http.Handler { return promhttp.Handler() }

package services

import (
	"context"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/platform/metrics"
	"fmt"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"
)

type heuristicRun struct {
	tour  domain.Tour
	cost  int64
	moves int
}

// solveHeuristic runs nearest-neighbor construction plus 2-opt from up to
// opts.MultiStart seeds. Seed s forces the first hop to the s-th closest node
// to start. The cheapest result wins, with ties going to the lower seed.
func solveHeuristic(ctx context.Context, m domain.DistanceMatrix, start int, opts Options) (domain.Tour, int64, error) {
	hops := neighborsByDistance(m, start)

	seeds := min(opts.MultiStart, len(hops))
	runs := make([]heuristicRun, seeds)

	if seeds == 1 {
		r, err := runHeuristic(ctx, m, start, hops[0], opts.TwoOptMaxMoves)
		if err != nil {
			return nil, 0, err
		}
		runs[0] = r
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for s := 0; s < seeds; s++ {
			s := s
			g.Go(func() error {
				r, err := runHeuristic(gctx, m, start, hops[s], opts.TwoOptMaxMoves)
				if err != nil {
					return err
				}
				runs[s] = r
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, 0, err
		}
	}

	best := 0
	for s := 1; s < seeds; s++ {
		if runs[s].cost < runs[best].cost {
			best = s
		}
	}

	if runs[best].moves >= opts.TwoOptMaxMoves {
		log.Printf("2-opt move cap reached: n=%d moves=%d", m.Size(), runs[best].moves)
	}

	return runs[best].tour, runs[best].cost, nil
}

func runHeuristic(ctx context.Context, m domain.DistanceMatrix, start, firstHop, maxMoves int) (heuristicRun, error) {
	tour := nearestNeighborTour(m, start, firstHop)

	cost, moves, err := twoOpt(ctx, m, tour, tour.Cost(m), maxMoves)
	metrics.TwoOptMovesTotal.Add(float64(moves))
	if err != nil {
		return heuristicRun{}, fmt.Errorf("heuristic from hop %d: %w", firstHop, err)
	}

	return heuristicRun{tour: tour, cost: cost, moves: moves}, nil
}

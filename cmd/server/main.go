package main

import (
	"context"
	"delivery-route-optimizer/internal/adapters/repositories"
	"delivery-route-optimizer/internal/api"
	"delivery-route-optimizer/internal/app"
	"delivery-route-optimizer/internal/config"
	"delivery-route-optimizer/internal/services"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires the location store and distance cache behind ports and starts the HTTP server.
func main() {
	config.LoadDotEnv()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize schema and seed the outlet list on startup.
	conn, err := app.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	distanceCache, closeCache, err := app.NewDistanceCache(cfg, conn)
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	repo := repositories.NewSQLLocationRepository(conn)
	planner := &services.RoutePlanner{
		Cache:   distanceCache,
		Options: app.SolverOptions(cfg),
	}
	router := api.NewRouter(repo, planner, cfg.SolveTimeout, cfg.MaxLocations)

	log.Printf(
		"Server listening addr=:%s db=%s cache=%s exact_max_nodes=%d max_locations=%d",
		cfg.Port, cfg.DBDriver, cfg.DistanceCache, cfg.ExactMaxNodes, cfg.MaxLocations,
	)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.SolveTimeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown failed: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Println("Server stopped")
}

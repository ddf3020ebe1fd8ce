package app

import (
	"context"
	"database/sql"
	"delivery-route-optimizer/internal/adapters/cache"
	"delivery-route-optimizer/internal/adapters/repositories"
	"delivery-route-optimizer/internal/config"
	"delivery-route-optimizer/internal/platform/db"
	"delivery-route-optimizer/internal/ports"
	"delivery-route-optimizer/internal/services"
	"errors"
	"fmt"
	"log"
	"strings"
)

// OpenStore opens the configured database, creates the schema and seeds the
// location table from cfg.SeedPath when it is set.
func OpenStore(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	dsn := cfg.DBPath
	if cfg.DBDriver == db.DriverPostgres {
		dsn = cfg.DatabaseURL
		if strings.TrimSpace(dsn) == "" {
			return nil, fmt.Errorf("open store: DATABASE_URL is required for driver %q", cfg.DBDriver)
		}
	}

	conn, err := db.Open(cfg.DBDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if err := InitAndSeed(ctx, conn, cfg.DBDriver, cfg.SeedPath); err != nil {
		conn.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	return conn, nil
}

// InitAndSeed creates the schema and, when seedPath is non-empty, upserts the seed file.
func InitAndSeed(ctx context.Context, conn *sql.DB, driver, seedPath string) error {
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if strings.TrimSpace(seedPath) == "" {
		return nil
	}

	if err := repositories.SeedFromJSON(ctx, conn, driver, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// NewDistanceCache builds the cache selected by cfg.DistanceCache. conn may be
// nil unless the sql cache is selected. The returned close func is never nil.
func NewDistanceCache(cfg config.Config, conn *sql.DB) (ports.DistanceCache, func(), error) {
	noop := func() {}

	switch cfg.DistanceCache {
	case "none", "":
		return nil, noop, nil
	case "memory":
		return cache.NewMemoryDistanceCache(), noop, nil
	case "sql":
		if conn == nil {
			return nil, noop, errors.New("distance cache: sql cache needs a database")
		}
		if cfg.DBDriver == db.DriverPostgres {
			return cache.NewSQLDistanceCache(conn), noop, nil
		}
		return cache.NewSqliteDistanceCache(conn), noop, nil
	case "redis":
		client := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if client == nil {
			return nil, noop, errors.New("distance cache: REDIS_ADDR is required")
		}
		log.Printf("distance cache: redis addr=%s db=%d ttl=%s", cfg.RedisAddr, cfg.RedisDB, cfg.RedisTTL)
		return cache.NewRedisDistanceCache(client, cfg.RedisTTL), func() { _ = client.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("distance cache: unknown kind %q", cfg.DistanceCache)
	}
}

// SolverOptions maps configuration onto solver options.
func SolverOptions(cfg config.Config) services.Options {
	return services.Options{
		ExactMaxNodes:  cfg.ExactMaxNodes,
		TwoOptMaxMoves: cfg.TwoOptMaxMoves,
		MultiStart:     cfg.MultiStart,
	}
}

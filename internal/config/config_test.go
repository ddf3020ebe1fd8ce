package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "DISTANCE_CACHE", "EXACT_MAX_NODES", "SOLVE_TIMEOUT", "REDIS_TTL", "MAX_LOCATIONS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "sqlite", cfg.DBDriver)
	require.Equal(t, "memory", cfg.DistanceCache)
	require.Equal(t, 13, cfg.ExactMaxNodes)
	require.Equal(t, 30*time.Second, cfg.SolveTimeout)
	require.Equal(t, 24*time.Hour, cfg.RedisTTL)
	require.Equal(t, 2000, cfg.MaxLocations)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "PGX")
	t.Setenv("EXACT_MAX_NODES", "10")
	t.Setenv("MULTI_START", "4")
	t.Setenv("SOLVE_TIMEOUT", "5s")
	t.Setenv("MAX_LOCATIONS", "50")

	cfg := Load()
	require.Equal(t, "pgx", cfg.DBDriver)
	require.Equal(t, 10, cfg.ExactMaxNodes)
	require.Equal(t, 4, cfg.MultiStart)
	require.Equal(t, 5*time.Second, cfg.SolveTimeout)
	require.Equal(t, 50, cfg.MaxLocations)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("TWO_OPT_MAX_MOVES", "lots")
	t.Setenv("SOLVE_TIMEOUT", "soon")

	require.Equal(t, 7, GetInt("TWO_OPT_MAX_MOVES", 7))
	require.Equal(t, time.Minute, GetDuration("SOLVE_TIMEOUT", time.Minute))
}

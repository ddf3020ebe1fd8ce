package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Runtime settings shared by the server, the CLI and dbtool.
type Config struct {
	Port string

	DBDriver    string // "sqlite" or "pgx"
	DBPath      string
	DatabaseURL string
	SeedPath    string

	DistanceCache string // "memory", "sql", "redis" or "none"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisTTL      time.Duration

	ExactMaxNodes  int
	TwoOptMaxMoves int
	MultiStart     int
	SolveTimeout   time.Duration

	// Largest location list accepted by POST /routes.
	MaxLocations int
}

// LoadDotEnv loads a .env file when present. A missing file is not an error.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Load reads the configuration from the environment, applying defaults.
func Load() Config {
	return Config{
		Port:           Get("PORT", "8080"),
		DBDriver:       strings.ToLower(Get("DB_DRIVER", "sqlite")),
		DBPath:         Get("DB_PATH", "data/app.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		SeedPath:       Get("SEED_PATH", "data/seeds/outlets.json"),
		DistanceCache:  strings.ToLower(Get("DISTANCE_CACHE", "memory")),
		RedisAddr:      Get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        GetInt("REDIS_DB", 0),
		RedisTTL:       GetDuration("REDIS_TTL", 24*time.Hour),
		ExactMaxNodes:  GetInt("EXACT_MAX_NODES", 13),
		TwoOptMaxMoves: GetInt("TWO_OPT_MAX_MOVES", 100000),
		MultiStart:     GetInt("MULTI_START", 1),
		SolveTimeout:   GetDuration("SOLVE_TIMEOUT", 30*time.Second),
		MaxLocations:   GetInt("MAX_LOCATIONS", 2000),
	}
}

// Get returns the value of key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt parses key as an integer. Unparsable values fall back with a log line.
func GetInt(key string, fallback int) int {
	v := Get(key, "")
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid integer %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

// GetDuration parses key with time.ParseDuration.
func GetDuration(key string, fallback time.Duration) time.Duration {
	v := Get(key, "")
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: invalid duration %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

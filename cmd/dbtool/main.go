package main

import (
	"context"
	"delivery-route-optimizer/internal/app"
	"delivery-route-optimizer/internal/config"
	"delivery-route-optimizer/internal/platform/db"
	"log"
	"strings"
)

func main() {
	config.LoadDotEnv()
	cfg := config.Load()

	dsn := cfg.DBPath
	if cfg.DBDriver == db.DriverPostgres {
		dsn = cfg.DatabaseURL
		if strings.TrimSpace(dsn) == "" {
			log.Fatal("DATABASE_URL is required")
		}
	}

	conn, err := db.Open(cfg.DBDriver, dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Printf("Initializing schema and seeding driver=%s seed=%s", cfg.DBDriver, cfg.SeedPath)
	if err := app.InitAndSeed(context.Background(), conn, cfg.DBDriver, cfg.SeedPath); err != nil {
		log.Fatalf("init and seed failed: %v", err)
	}
	log.Println("Seeding complete.")
}

package main

import (
	"context"
	"flag"
	"log"

	"github.com/Houeta/staff-api/internal/config"
	"github.com/Houeta/staff-api/internal/repository"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
)

func main() {
	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "migrations", "directory with goose SQL migrations")
	flag.Parse()

	cfg := config.MustLoad()

	dbpool, dbErr := repository.NewDatabase(context.Background(), cfg.Postgres)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	dtb := stdlib.OpenDBFromPool(dbpool)
	defer dtb.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal(err) //nolint:gocritic // exitAfterDefer
	}

	if migrationErr := goose.Up(dtb, migrationsDir); migrationErr != nil {
		log.Fatal(migrationErr)
	}

	log.Println("✅ Migrations applied successfully")
}

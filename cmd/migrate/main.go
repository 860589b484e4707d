package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lylakivan/theatre-api-service/internal/app"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Error("failed to load .env file", "error", err)
		os.Exit(1)
	}

	dsn := flag.String("db-dsn", os.Getenv("DB_DSN"), "PostgreSQL DSN")
	source := flag.String("source", "file://migrations", "Migration source URL")
	down := flag.Int("down", 0, "Revert this many migrations instead of applying pending ones")

	flag.Parse()

	if *dsn == "" {
		logger.Error("db-dsn must be provided")
		os.Exit(1)
	}

	if *down > 0 {
		err = app.MigrateDown(*dsn, *source, *down)
	} else {
		err = app.MigrateUp(*dsn, *source)
	}

	if err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	logger.Info("migrations applied", "source", *source, "down", *down)
}

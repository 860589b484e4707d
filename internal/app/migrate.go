package app

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	pgxstd "github.com/jackc/pgx/v5/stdlib"
)

// MigrateUp applies every pending migration from sourceURL, e.g. "file://migrations".
func MigrateUp(dsn, sourceURL string) error {
	return withMigrator(dsn, sourceURL, func(m *migrate.Migrate) error {
		return m.Up()
	})
}

// MigrateDown reverts the given number of applied migrations.
func MigrateDown(dsn, sourceURL string, steps int) error {
	return withMigrator(dsn, sourceURL, func(m *migrate.Migrate) error {
		return m.Steps(-steps)
	})
}

func withMigrator(dsn, sourceURL string, fn func(*migrate.Migrate) error) error {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	db := pgxstd.OpenDB(*config)
	defer db.Close()

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		return fmt.Errorf("pgx migration driver error: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "pgx", driver)
	if err != nil {
		return fmt.Errorf("migrate.New error: %w", err)
	}

	err = fn(m)
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

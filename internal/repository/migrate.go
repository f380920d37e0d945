package repository

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/users/*.sql
var userMigrationsFS embed.FS

//go:embed migrations/products/*.sql
var productMigrationsFS embed.FS

// MigrateUsers applies the users schema and seed data.
// Safe to run on every process start; already-applied versions are skipped
// and seed inserts resolve conflicts via the email unique constraint.
func MigrateUsers(databaseURL string) error {
	return runMigrations(databaseURL, userMigrationsFS, "migrations/users")
}

// MigrateProducts applies the products schema and seed data.
func MigrateProducts(databaseURL string) error {
	return runMigrations(databaseURL, productMigrationsFS, "migrations/products")
}

func runMigrations(databaseURL string, fsys embed.FS, dir string) error {
	sqlDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer sqlDB.Close()

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to initialize migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

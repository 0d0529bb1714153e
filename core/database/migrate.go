package database

import (
	"context"
	"embed"
	"fmt"

	"timeweave/core/logger"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Migrate applies all pending embedded migrations.
func Migrate(ctx context.Context, db Database) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db.SQLx().DB, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db.SQLx().DB)
	if err != nil {
		return fmt.Errorf("get migration version: %w", err)
	}

	logger.Info("Migrations applied", "version", version)
	return nil
}

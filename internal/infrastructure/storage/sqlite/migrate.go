package sqlite

import (
	"context"
	_ "embed"
	"fmt"

	"grainpay/pkg/logger"
)

//go:embed schema.sql
var schema string

// Schema returns the DDL applied by Migrate.
func Schema() string {
	return schema
}

// Migrate creates the resource tables if they do not exist, in one transaction.
func Migrate(ctx context.Context, db *DB) error {
	sqlTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() { _ = sqlTx.Rollback() }()

	if _, err := sqlTx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply sqlite schema: %w", err)
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}

	logger.Info(ctx, "sqlite schema applied", "path", db.Path())
	return nil
}

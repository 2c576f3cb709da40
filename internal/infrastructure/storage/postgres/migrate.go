package postgres

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

// Migrate creates the resource tables if they do not exist.
func Migrate(ctx context.Context, pool *Pool) error {
	// No arguments: pgx uses the simple protocol, which accepts several statements.
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply postgres schema: %w", err)
	}
	logger.Info(ctx, "postgres schema applied")
	return nil
}

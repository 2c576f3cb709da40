// Package sqlite provides the embedded SQLite storage driver (modernc.org/sqlite, no cgo).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// DB wraps *sql.DB opened with the "sqlite" driver.
type DB struct {
	*sql.DB
	path string
}

// Open opens (creating if needed) the database file at path and verifies the connection.
//
// A single connection is used: SQLite serializes writers anyway and this
// keeps transactions from failing with SQLITE_BUSY.
func Open(ctx context.Context, path string) (*DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: empty database path")
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}

	return &DB{DB: db, path: path}, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_time_format=sqlite"
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.path
}

// Ping verifies the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.DB.PingContext(ctx)
}

// Close closes the database.
func (d *DB) Close() {
	if d.DB != nil {
		_ = d.DB.Close()
	}
}

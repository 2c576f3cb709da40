// Package storage selects the storage driver and assembles the resource gateways.
package storage

import (
	"context"
	"fmt"

	"grainpay/internal/config"
	"grainpay/internal/core/tx"
	"grainpay/internal/domain/expense"
	"grainpay/internal/domain/income"
	"grainpay/internal/infrastructure/storage/postgres"
	pgrepo "grainpay/internal/infrastructure/storage/postgres/resource_repo"
	"grainpay/internal/infrastructure/storage/sqlite"
	sqliterepo "grainpay/internal/infrastructure/storage/sqlite/resource_repo"
	"grainpay/pkg/logger"
)

// Store bundles the gateways of one database with its transaction manager.
type Store struct {
	Driver    string
	Expenses  expense.Repository
	Incomes   income.Repository
	TxManager tx.Manager

	ping    func(ctx context.Context) error
	migrate func(ctx context.Context) error
	close   func()
}

// Open connects to the configured driver.
func Open(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg)
	case config.DriverSQLite:
		return OpenSQLite(ctx, cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	poolCfg := postgres.DefaultPoolConfig(cfg.URL)
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MinConns = cfg.MinConns

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	postgres.LogPoolStats(ctx, pool.Unwrap())

	txm := postgres.NewTxManager(pool)
	return &Store{
		Driver:    config.DriverPostgres,
		Expenses:  pgrepo.NewExpenseRepo(txm),
		Incomes:   pgrepo.NewIncomeRepo(txm),
		TxManager: txm,
		ping:      pool.Ping,
		migrate: func(ctx context.Context) error {
			return postgres.Migrate(ctx, pool)
		},
		close: pool.Close,
	}, nil
}

// OpenSQLite opens the SQLite database file at path.
func OpenSQLite(ctx context.Context, path string) (*Store, error) {
	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, err
	}

	txm := sqlite.NewTxManager(db)
	return &Store{
		Driver:    config.DriverSQLite,
		Expenses:  sqliterepo.NewExpenseRepo(txm),
		Incomes:   sqliterepo.NewIncomeRepo(txm),
		TxManager: txm,
		ping:      db.Ping,
		migrate: func(ctx context.Context) error {
			return sqlite.Migrate(ctx, db)
		},
		close: db.Close,
	}, nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Migrate applies the embedded schema of the driver.
func (s *Store) Migrate(ctx context.Context) error {
	return s.migrate(ctx)
}

// Close releases the database connections.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
		logger.Info(context.Background(), "storage closed", "driver", s.Driver)
	}
}

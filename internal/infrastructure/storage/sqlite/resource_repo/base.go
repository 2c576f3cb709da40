// Package resource_repo provides SQLite implementations of the resource gateways.
package resource_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"grainpay/internal/core/apperror"
	"grainpay/internal/core/entity"
	"grainpay/internal/domain"
	"grainpay/internal/infrastructure/storage/sqlite"
	"grainpay/internal/infrastructure/storage/sqlquery"
)

// amountOrder sorts the TEXT amount column numerically.
const amountOrder = "CAST(amount AS NUMERIC)"

// BaseRepo implements domain.Gateway for one table.
type BaseRepo[T entity.Persistable] struct {
	txm   *sqlite.TxManager
	stmts sqlquery.Statements
	newFn func() T
}

// NewBaseRepo creates a new base repository.
func NewBaseRepo[T entity.Persistable](txm *sqlite.TxManager, table sqlquery.Table, newFn func() T) *BaseRepo[T] {
	return &BaseRepo[T]{
		txm:   txm,
		stmts: sqlquery.New(table, squirrel.Question),
		newFn: newFn,
	}
}

func (r *BaseRepo[T]) tableName() string {
	return r.stmts.Table().Name
}

// FindAll returns one page and the total row count.
func (r *BaseRepo[T]) FindAll(ctx context.Context, page domain.PageRequest) (domain.Page[T], error) {
	result := domain.Page[T]{
		Number: page.Page,
		Size:   page.Size,
	}

	sql, args, err := r.stmts.SelectPage(page)
	if err != nil {
		return result, err
	}
	countSQL, countArgs, err := r.stmts.Count()
	if err != nil {
		return result, fmt.Errorf("build count query: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRowContext(ctx, countSQL, countArgs...).Scan(&result.TotalElements); err != nil {
		return result, fmt.Errorf("count %s: %w", r.tableName(), err)
	}
	if err := sqlscan.Select(ctx, querier, &result.Content, sql, args...); err != nil {
		return result, fmt.Errorf("list %s: %w", r.tableName(), err)
	}
	if result.Content == nil {
		result.Content = []T{}
	}

	return result, nil
}

// FindByID retrieves a row by id.
func (r *BaseRepo[T]) FindByID(ctx context.Context, id int64) (T, error) {
	e := r.newFn()

	sql, args, err := r.stmts.SelectByID(id)
	if err != nil {
		return e, fmt.Errorf("build query: %w", err)
	}

	if err := sqlscan.Get(ctx, r.txm.GetQuerier(ctx), e, sql, args...); err != nil {
		if sqlscan.NotFound(err) {
			return e, apperror.NewRecordNotFound(r.tableName(), id)
		}
		return e, fmt.Errorf("get %s by id: %w", r.tableName(), err)
	}
	return e, nil
}

// Save inserts a new row or updates the row with e's id, returning the stored state.
func (r *BaseRepo[T]) Save(ctx context.Context, e T) (T, error) {
	base := e.Base()

	build := r.stmts.Update
	if base.IsNew() {
		build = r.stmts.Insert
	}
	sql, args, err := build(e)
	if err != nil {
		return e, fmt.Errorf("build save: %w", err)
	}

	saved := r.newFn()
	if err := sqlscan.Get(ctx, r.txm.GetQuerier(ctx), saved, sql, args...); err != nil {
		if sqlscan.NotFound(err) {
			return e, apperror.NewRecordNotFound(r.tableName(), base.ID)
		}
		return e, fmt.Errorf("save %s: %w", r.tableName(), err)
	}
	return saved, nil
}

// DeleteByID removes a row by id.
func (r *BaseRepo[T]) DeleteByID(ctx context.Context, id int64) error {
	sql, args, err := r.stmts.DeleteByID(id)
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).ExecContext(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.tableName(), err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.tableName(), err)
	}
	if n == 0 {
		return apperror.NewRecordNotFound(r.tableName(), id)
	}
	return nil
}

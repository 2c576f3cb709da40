// Package resource_repo provides PostgreSQL implementations of the resource gateways.
package resource_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"grainpay/internal/core/apperror"
	"grainpay/internal/core/entity"
	"grainpay/internal/domain"
	"grainpay/internal/infrastructure/storage/postgres"
	"grainpay/internal/infrastructure/storage/sqlquery"
)

// BaseRepo implements domain.Gateway for one table.
// Embed this in specific resource repositories.
type BaseRepo[T entity.Persistable] struct {
	txm   *postgres.TxManager
	stmts sqlquery.Statements
	newFn func() T
}

// NewBaseRepo creates a new base repository.
func NewBaseRepo[T entity.Persistable](txm *postgres.TxManager, table sqlquery.Table, newFn func() T) *BaseRepo[T] {
	return &BaseRepo[T]{
		txm:   txm,
		stmts: sqlquery.New(table, squirrel.Dollar),
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
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalElements); err != nil {
		return result, fmt.Errorf("count %s: %w", r.tableName(), err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Content, sql, args...); err != nil {
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

	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, e, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return e, apperror.NewRecordNotFound(r.tableName(), id)
		}
		return e, fmt.Errorf("get %s by id: %w", r.tableName(), err)
	}

	return e, nil
}

// Save inserts a new row or updates the row with e's id, returning the stored state.
func (r *BaseRepo[T]) Save(ctx context.Context, e T) (T, error) {
	base := e.Base()

	var (
		sql  string
		args []any
		err  error
	)
	if base.IsNew() {
		sql, args, err = r.stmts.Insert(e)
	} else {
		sql, args, err = r.stmts.Update(e)
	}
	if err != nil {
		return e, fmt.Errorf("build save: %w", err)
	}

	saved := r.newFn()
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, saved, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
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

	querier := r.txm.GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.tableName(), err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewRecordNotFound(r.tableName(), id)
	}

	return nil
}

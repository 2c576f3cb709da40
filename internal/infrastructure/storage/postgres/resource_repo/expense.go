package resource_repo

import (
	"grainpay/internal/domain/expense"
	"grainpay/internal/infrastructure/storage/postgres"
	"grainpay/internal/infrastructure/storage/sqlquery"
)

// ExpenseRepo is the PostgreSQL expenses gateway.
type ExpenseRepo struct {
	*BaseRepo[*expense.Expense]
}

var _ expense.Repository = (*ExpenseRepo)(nil)

// NewExpenseRepo creates a new expense repository.
func NewExpenseRepo(txm *postgres.TxManager) *ExpenseRepo {
	return &ExpenseRepo{
		BaseRepo: NewBaseRepo(txm, sqlquery.ExpenseTable, func() *expense.Expense {
			return &expense.Expense{}
		}),
	}
}

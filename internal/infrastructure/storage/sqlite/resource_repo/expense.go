package resource_repo

import (
	"grainpay/internal/domain/expense"
	"grainpay/internal/infrastructure/storage/sqlite"
	"grainpay/internal/infrastructure/storage/sqlquery"
)

// ExpenseRepo is the SQLite expenses gateway.
type ExpenseRepo struct {
	*BaseRepo[*expense.Expense]
}

var _ expense.Repository = (*ExpenseRepo)(nil)

func NewExpenseRepo(txm *sqlite.TxManager) *ExpenseRepo {
	return &ExpenseRepo{
		BaseRepo: NewBaseRepo(txm, sqlquery.ExpenseTable.WithSortExpr("amount", amountOrder), func() *expense.Expense {
			return &expense.Expense{}
		}),
	}
}

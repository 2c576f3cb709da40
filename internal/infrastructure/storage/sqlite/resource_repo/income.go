package resource_repo

import (
	"grainpay/internal/domain/income"
	"grainpay/internal/infrastructure/storage/sqlite"
	"grainpay/internal/infrastructure/storage/sqlquery"
)

// IncomeRepo is the SQLite incomes gateway.
type IncomeRepo struct {
	*BaseRepo[*income.Income]
}

var _ income.Repository = (*IncomeRepo)(nil)

func NewIncomeRepo(txm *sqlite.TxManager) *IncomeRepo {
	return &IncomeRepo{
		BaseRepo: NewBaseRepo(txm, sqlquery.IncomeTable.WithSortExpr("amount", amountOrder), func() *income.Income {
			return &income.Income{}
		}),
	}
}

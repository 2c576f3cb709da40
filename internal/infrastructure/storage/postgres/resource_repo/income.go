package resource_repo

import (
	"grainpay/internal/domain/income"
	"grainpay/internal/infrastructure/storage/postgres"
	"grainpay/internal/infrastructure/storage/sqlquery"
)

// IncomeRepo is the PostgreSQL incomes gateway.
type IncomeRepo struct {
	*BaseRepo[*income.Income]
}

var _ income.Repository = (*IncomeRepo)(nil)

// NewIncomeRepo creates a new income repository.
func NewIncomeRepo(txm *postgres.TxManager) *IncomeRepo {
	return &IncomeRepo{
		BaseRepo: NewBaseRepo(txm, sqlquery.IncomeTable, func() *income.Income {
			return &income.Income{}
		}),
	}
}

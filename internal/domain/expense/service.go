package expense

import (
	"time"

	"grainpay/internal/core/tx"
	"grainpay/internal/domain"
)

const (
	EntityName      = "Expense"
	NotFoundMessage = "Expense not found!"
)

// Repository is the persistence gateway of the expenses table.
type Repository = domain.Gateway[*Expense]

// Service is the expense CRUD contract.
type Service = domain.ResourceService[DTO]

// NewService creates the expense service. now may be nil.
func NewService(repo Repository, txManager tx.Manager, now func() time.Time) *domain.CrudService[*Expense, DTO] {
	return domain.NewCrudService(domain.CrudServiceConfig[*Expense, DTO]{
		Gateway:         repo,
		Mapper:          NewMapper(now),
		TxManager:       txManager,
		EntityName:      EntityName,
		NotFoundMessage: NotFoundMessage,
	})
}

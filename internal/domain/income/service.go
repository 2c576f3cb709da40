package income

import (
	"time"

	"grainpay/internal/core/tx"
	"grainpay/internal/domain"
)

const (
	EntityName      = "Income"
	NotFoundMessage = "Income not found!"
)

// Repository is the persistence gateway of the incomes table.
type Repository = domain.Gateway[*Income]

// Service is the income CRUD contract.
type Service = domain.ResourceService[DTO]

// NewService creates the income service. now may be nil.
func NewService(repo Repository, txManager tx.Manager, now func() time.Time) *domain.CrudService[*Income, DTO] {
	return domain.NewCrudService(domain.CrudServiceConfig[*Income, DTO]{
		Gateway:         repo,
		Mapper:          NewMapper(now),
		TxManager:       txManager,
		EntityName:      EntityName,
		NotFoundMessage: NotFoundMessage,
	})
}

package handlers

import (
	"grainpay/internal/domain/income"
)

// IncomeHTTPHandler - type alias to keep signatures short
type IncomeHTTPHandler = ResourceHandler[income.DTO]

// NewIncomeHandler creates the /api/incomes handler.
func NewIncomeHandler(base *BaseHandler, service income.Service) *IncomeHTTPHandler {
	return NewResourceHandler(base, service, ResourceNames{
		Singular: income.EntityName,
		Plural:   "incomes",
	})
}

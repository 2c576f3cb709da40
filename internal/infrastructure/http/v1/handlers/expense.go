package handlers

import (
	"grainpay/internal/domain/expense"
)

// ExpenseHTTPHandler - type alias to keep signatures short
type ExpenseHTTPHandler = ResourceHandler[expense.DTO]

// NewExpenseHandler creates the /api/expenses handler.
func NewExpenseHandler(base *BaseHandler, service expense.Service) *ExpenseHTTPHandler {
	return NewResourceHandler(base, service, ResourceNames{
		Singular: expense.EntityName,
		Plural:   "expenses",
	})
}

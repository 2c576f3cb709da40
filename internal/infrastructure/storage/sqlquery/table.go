// Package sqlquery builds the SQL statements shared by the postgres and sqlite
// resource repositories. Only the placeholder format differs between drivers.
package sqlquery

import (
	"grainpay/internal/domain/expense"
	"grainpay/internal/domain/income"
)

// Table describes one resource table.
type Table struct {
	Name string

	// Columns are selected and returned in this order.
	Columns []string

	// SortFields maps API field names to columns.
	SortFields map[string]string

	// Immutable columns are never part of an UPDATE.
	Immutable []string
}

// NewTable derives the column list of T from its "db" tags.
func NewTable[T any](name string, sortFields map[string]string) Table {
	cols := ExtractDBColumns[T]()

	fields := make(map[string]string, len(sortFields)+len(cols))
	for _, col := range cols {
		fields[col] = col
	}
	for api, col := range sortFields {
		fields[api] = col
	}

	return Table{
		Name:       name,
		Columns:    cols,
		SortFields: fields,
		Immutable:  []string{"id", "created_at"},
	}
}

// WithSortExpr returns a copy of t that orders column by expr.
func (t Table) WithSortExpr(column, expr string) Table {
	fields := make(map[string]string, len(t.SortFields))
	for api, col := range t.SortFields {
		if col == column {
			col = expr
		}
		fields[api] = col
	}
	t.SortFields = fields
	return t
}

var baseSortFields = map[string]string{
	"id":        "id",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func withBase(extra map[string]string) map[string]string {
	out := make(map[string]string, len(baseSortFields)+len(extra))
	for k, v := range baseSortFields {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// ExpenseTable is the "expenses" table.
var ExpenseTable = NewTable[expense.Expense]("expenses", withBase(map[string]string{
	"description": "description",
	"amount":      "amount",
	"date":        "date",
	"paymentType": "payment_type",
}))

// IncomeTable is the "incomes" table.
var IncomeTable = NewTable[income.Income]("incomes", withBase(map[string]string{
	"description": "description",
	"amount":      "amount",
	"date":        "date",
}))

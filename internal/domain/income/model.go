// Package income provides the Income resource: money received on a calendar date.
package income

import (
	"time"

	"github.com/shopspring/decimal"

	"grainpay/internal/core/entity"
)

// Income is the stored form of an income.
type Income struct {
	entity.BaseEntity

	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`

	// Date has no time component (midnight UTC).
	Date time.Time `db:"date"`
}

// NewIncome creates an unsaved Income stamped with now.
func NewIncome(description string, amount decimal.Decimal, date time.Time, now time.Time) *Income {
	y, m, d := date.Date()
	return &Income{
		BaseEntity:  entity.NewBaseEntity(now),
		Description: description,
		Amount:      amount,
		Date:        time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}
}

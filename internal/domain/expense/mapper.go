package expense

import (
	"time"

	"github.com/shopspring/decimal"

	"grainpay/internal/core/entity"
	"grainpay/internal/core/types"
)

// Mapper converts between DTO and Expense.
type Mapper struct {
	now func() time.Time
}

// NewMapper creates a Mapper; now stamps createdAt/updatedAt on new entities (nil means time.Now).
func NewMapper(now func() time.Time) Mapper {
	if now == nil {
		now = time.Now
	}
	return Mapper{now: now}
}

// ToDTO copies every field, timestamps included.
func (m Mapper) ToDTO(e *Expense) DTO {
	dto := DTO{
		Description: e.Description,
	}
	if e.ID != 0 {
		id := e.ID
		dto.ID = &id
	}

	amount := types.NewAmount(e.Amount)
	dto.Amount = &amount

	if !e.Date.IsZero() {
		date := types.NewDateTime(e.Date)
		dto.Date = &date
	}
	if e.PaymentType != "" {
		pt := e.PaymentType
		dto.PaymentType = &pt
	}
	if !e.CreatedAt.IsZero() {
		createdAt := types.NewDateTime(e.CreatedAt)
		dto.CreatedAt = &createdAt
	}
	if !e.UpdatedAt.IsZero() {
		updatedAt := types.NewDateTime(e.UpdatedAt)
		dto.UpdatedAt = &updatedAt
	}
	return dto
}

// ToEntity builds a new, unidentified Expense. The DTO id and timestamps are not copied.
func (m Mapper) ToEntity(d DTO) *Expense {
	e := &Expense{
		BaseEntity:  entity.NewBaseEntity(m.now()),
		Description: d.Description,
		Amount:      decimal.Zero,
	}
	if d.Amount != nil {
		e.Amount = d.Amount.Decimal()
	}
	if d.Date != nil {
		e.Date = d.Date.Time()
	}
	if d.PaymentType != nil {
		e.PaymentType = *d.PaymentType
	}
	return e
}

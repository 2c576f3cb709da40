package income

import (
	"time"

	"grainpay/internal/core/entity"
	"grainpay/internal/core/types"
)

// Mapper converts between DTO and Income.
type Mapper struct {
	now func() time.Time
}

// NewMapper creates a Mapper; nil now means time.Now.
func NewMapper(now func() time.Time) Mapper {
	if now == nil {
		now = time.Now
	}
	return Mapper{now: now}
}

func (m Mapper) ToDTO(e *Income) DTO {
	amount := types.NewAmount(e.Amount)
	dto := DTO{
		Description: e.Description,
		Amount:      &amount,
	}
	if e.ID != 0 {
		id := e.ID
		dto.ID = &id
	}
	if !e.Date.IsZero() {
		date := types.NewDate(e.Date)
		dto.Date = &date
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

// ToEntity never copies the DTO id or timestamps.
func (m Mapper) ToEntity(d DTO) *Income {
	e := &Income{
		BaseEntity:  entity.NewBaseEntity(m.now()),
		Description: d.Description,
	}
	if d.Amount != nil {
		e.Amount = d.Amount.Decimal()
	}
	if d.Date != nil {
		e.Date = d.Date.Time()
	}
	return e
}

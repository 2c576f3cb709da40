package income

import (
	"grainpay/internal/core/types"
)

// DTO is the wire form of an income. Nil fields are omitted from output.
type DTO struct {
	ID          *int64          `json:"id,omitempty"`
	Description string          `json:"description,omitempty" validate:"notblank" msg:"Description cannot be empty"`
	Amount      *types.Amount   `json:"amount,omitempty" validate:"required" msg:"Amount cannot be null"`
	Date        *types.Date     `json:"date,omitempty" validate:"required" msg:"Date cannot be null"`
	CreatedAt   *types.DateTime `json:"createdAt,omitempty"`
	UpdatedAt   *types.DateTime `json:"updatedAt,omitempty"`
}

// RecordID implements entity.Record.
func (d DTO) RecordID() *int64 {
	return d.ID
}

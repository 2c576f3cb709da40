// Package expense provides the Expense resource: money spent on a given date-time
// with a payment type.
package expense

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"grainpay/internal/core/entity"
	"grainpay/internal/core/types"
)

// PaymentType is how an expense was paid. The underlying value is the storage code.
type PaymentType string

const (
	PaymentMoney      PaymentType = "MONEY"
	PaymentVoucher    PaymentType = "VR"
	PaymentCreditCard PaymentType = "CREDIT_CARD"
)

// paymentTypeInfo maps the storage code to its wire tag and label.
var paymentTypeInfo = map[PaymentType]struct {
	tag   string
	label string
}{
	PaymentMoney:      {tag: "Money", label: "Money"},
	PaymentVoucher:    {tag: "VR", label: "Voucher"},
	PaymentCreditCard: {tag: "Credit Card", label: "Credit Card"},
}

// PaymentTypes lists every known payment type in declaration order.
func PaymentTypes() []PaymentType {
	return []PaymentType{PaymentMoney, PaymentVoucher, PaymentCreditCard}
}

// ParsePaymentType resolves a wire tag ("Money", "VR", "Credit Card").
// Storage codes are not accepted.
func ParsePaymentType(tag string) (PaymentType, error) {
	for _, pt := range PaymentTypes() {
		if tag == paymentTypeInfo[pt].tag {
			return pt, nil
		}
	}
	return "", fmt.Errorf("unknown payment type %q", tag)
}

func paymentTypeFromCode(code string) (PaymentType, error) {
	if pt := PaymentType(code); pt.Valid() {
		return pt, nil
	}
	return "", fmt.Errorf("unknown payment type code %q", code)
}

// Valid reports whether p is a known payment type.
func (p PaymentType) Valid() bool {
	_, ok := paymentTypeInfo[p]
	return ok
}

// Tag returns the wire representation.
func (p PaymentType) Tag() string {
	if info, ok := paymentTypeInfo[p]; ok {
		return info.tag
	}
	return string(p)
}

// Label returns the human-readable name.
func (p PaymentType) Label() string {
	if info, ok := paymentTypeInfo[p]; ok {
		return info.label
	}
	return string(p)
}

func (p PaymentType) String() string {
	return p.Tag()
}

// MarshalJSON encodes the wire tag.
func (p PaymentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Tag())
}

var paymentTypeType = reflect.TypeOf(PaymentType(""))

// DecodeHint implements types.DecodeHinter.
func (PaymentType) DecodeHint() string {
	tags := make([]string, 0, len(paymentTypeInfo))
	for _, pt := range PaymentTypes() {
		tags = append(tags, pt.Tag())
	}
	return "must be one of: " + strings.Join(tags, ", ")
}

// UnmarshalJSON decodes a wire tag; unknown tags are rejected.
func (p *PaymentType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return types.TypeError(string(data), paymentTypeType)
	}
	pt, err := ParsePaymentType(s)
	if err != nil {
		return types.TypeError(strconv.Quote(s), paymentTypeType)
	}
	*p = pt
	return nil
}

// Value implements driver.Valuer.
func (p PaymentType) Value() (driver.Value, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid payment type %q", string(p))
	}
	return string(p), nil
}

// Scan implements sql.Scanner.
func (p *PaymentType) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into PaymentType", src)
	}
	pt, err := paymentTypeFromCode(s)
	if err != nil {
		return err
	}
	*p = pt
	return nil
}

// Expense is the stored form of an expense.
type Expense struct {
	entity.BaseEntity

	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Date        time.Time       `db:"date"`
	PaymentType PaymentType     `db:"payment_type"`
}

// NewExpense creates an unsaved Expense stamped with now.
func NewExpense(description string, amount decimal.Decimal, date time.Time, pt PaymentType, now time.Time) *Expense {
	return &Expense{
		BaseEntity:  entity.NewBaseEntity(now),
		Description: description,
		Amount:      amount,
		Date:        date,
		PaymentType: pt,
	}
}

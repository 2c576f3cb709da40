// Package types provides common type aliases and utilities.
package types

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

const (
	// AmountScale is the number of fractional digits kept for currency amounts.
	AmountScale int32 = 2

	// AmountIntegerDigits bounds the integer part so amounts fit NUMERIC(19,2).
	AmountIntegerDigits = 17
)

// amountLimit is the smallest absolute value with too many integer digits.
var amountLimit = decimal.New(1, AmountIntegerDigits)

var amountType = reflect.TypeOf(Amount{})

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Amount is the wire form of a currency value, fixed to AmountScale digits.
//
// JSON output is a number ("1000.00"); input accepts a JSON number or string.
type Amount decimal.Decimal

// NewAmount rounds d to AmountScale digits.
func NewAmount(d decimal.Decimal) Amount {
	return Amount(d.Round(AmountScale))
}

// MustAmount parses s, panics on error. Use only for constants and tests.
func MustAmount(s string) Amount {
	return NewAmount(MustMoney(s))
}

// Decimal returns the amount as decimal.Decimal.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.Decimal(a)
}

// Equal compares amounts numerically.
func (a Amount) Equal(other Amount) bool {
	return a.Decimal().Equal(other.Decimal())
}

// String returns a decimal string with AmountScale fractional digits.
func (a Amount) String() string {
	return a.Decimal().StringFixed(AmountScale)
}

// MarshalJSON encodes Amount as JSON number (not string).
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// DecodeHint implements DecodeHinter.
func (Amount) DecodeHint() string {
	return "must be a number with at most " + strconv.Itoa(AmountIntegerDigits) + " integer digits"
}

// UnmarshalJSON accepts either a JSON number or string. Values with more than
// AmountIntegerDigits integer digits are rejected.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return TypeError("string", amountType)
		}
		raw = s
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return TypeError("empty string", amountType)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return TypeError(strconv.Quote(raw), amountType)
	}
	d = d.Round(AmountScale)
	if d.Abs().GreaterThanOrEqual(amountLimit) {
		return TypeError("number "+raw, amountType)
	}
	*a = Amount(d)
	return nil
}

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"time"
)

const (
	// DateLayout is the ISO-8601 calendar date used on the wire.
	DateLayout = "2006-01-02"

	// DateTimeLayout is the ISO-8601 local date-time used on the wire (no zone).
	DateTimeLayout = "2006-01-02T15:04:05"
)

// dateTimeInputLayouts are accepted when decoding a DateTime.
// Zoned inputs are converted to UTC wall time.
var dateTimeInputLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

// DateTime is a local date-time without zone, stored as UTC wall time.
type DateTime time.Time

// NewDateTime truncates t to whole seconds in UTC.
func NewDateTime(t time.Time) DateTime {
	return DateTime(t.UTC().Truncate(time.Second))
}

// Time returns the underlying time.Time.
func (d DateTime) Time() time.Time {
	return time.Time(d)
}

// IsZero reports whether d holds the zero time.
func (d DateTime) IsZero() bool {
	return d.Time().IsZero()
}

// Equal compares instants.
func (d DateTime) Equal(other DateTime) bool {
	return d.Time().Equal(other.Time())
}

func (d DateTime) String() string {
	return d.Time().UTC().Format(DateTimeLayout)
}

// ParseDateTime parses an ISO-8601 local or zoned date-time.
func ParseDateTime(s string) (DateTime, error) {
	for _, layout := range dateTimeInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateTime(t.UTC()), nil
		}
	}
	return DateTime{}, fmt.Errorf("invalid date-time %q, expected format %s", s, DateTimeLayout)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

var (
	dateTimeType = reflect.TypeOf(DateTime{})
	dateType     = reflect.TypeOf(Date{})
)

// DecodeHint implements DecodeHinter.
func (DateTime) DecodeHint() string {
	return "must be a date-time like 2023-04-01T00:00:00"
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return TypeError(string(data), dateTimeType)
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return TypeError(strconv.Quote(s), dateTimeType)
	}
	*d = parsed
	return nil
}

// Date is a calendar date without time component.
type Date time.Time

// NewDate keeps only the calendar date of t (UTC midnight).
func NewDate(t time.Time) Date {
	y, m, day := t.Date()
	return Date(time.Date(y, m, day, 0, 0, 0, 0, time.UTC))
}

// Time returns the date as UTC midnight.
func (d Date) Time() time.Time {
	return time.Time(d)
}

func (d Date) IsZero() bool {
	return d.Time().IsZero()
}

func (d Date) Equal(other Date) bool {
	return d.Time().Equal(other.Time())
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// ParseDate parses an ISO-8601 calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected format %s", s, DateLayout)
	}
	return Date(t), nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// DecodeHint implements DecodeHinter.
func (Date) DecodeHint() string {
	return "must be a date like 2023-04-01"
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return TypeError(string(data), dateType)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return TypeError(strconv.Quote(s), dateType)
	}
	*d = parsed
	return nil
}

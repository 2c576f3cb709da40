package types

import (
	"encoding/json"
	"reflect"
)

// DecodeHinter is implemented by wire types that can describe the input they accept.
// Request decoding uses the hint as the field message.
type DecodeHinter interface {
	DecodeHint() string
}

// TypeError reports value as not decodable into t. It is a *json.UnmarshalTypeError
// so encoding/json attaches the offending field path.
func TypeError(value string, t reflect.Type) error {
	return &json.UnmarshalTypeError{Value: value, Type: t}
}

// DecodeHint describes the input accepted for t: the DecodeHint of wire types,
// a generic text for plain kinds.
func DecodeHint(t reflect.Type) string {
	if t == nil {
		return "has an invalid value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if h, ok := reflect.Zero(t).Interface().(DecodeHinter); ok {
		return h.DecodeHint()
	}

	switch t.Kind() {
	case reflect.String:
		return "must be a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be an integer"
	case reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.Bool:
		return "must be a boolean"
	default:
		return "has an invalid value"
	}
}

// Package validate runs field-level validation on inbound DTOs.
//
// Rules are declared with `validate` struct tags; messages come from the
// `msg` tag of the offending field so every resource keeps its own wording.
// Failures are returned as apperror.NewValidationFailed with one
// "<jsonField>: <message>" entry per field.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"grainpay/internal/core/apperror"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// rules are the custom validations every DTO may use.
var rules = map[string]validator.Func{
	"notblank": notBlank,
}

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report JSON field names instead of Go field names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		if err := register(v, rules); err != nil {
			panic(err)
		}
		instance = v
	})
	return instance
}

func register(v *validator.Validate, rules map[string]validator.Func) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register validation %q: %w", tag, err)
		}
	}
	return nil
}

// notBlank rejects empty and whitespace-only strings.
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		return strings.TrimSpace(field.String()) != ""
	case reflect.Ptr:
		if field.IsNil() {
			return false
		}
		elem := field.Elem()
		return elem.Kind() != reflect.String || strings.TrimSpace(elem.String()) != ""
	default:
		return !field.IsZero()
	}
}

// Struct validates v and returns a *apperror.AppError listing every failed field.
func Struct(v any) error {
	err := engine().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewInternal(err)
	}

	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fe.Field()+": "+message(t, fe))
	}
	return apperror.NewValidationFailed(messages)
}

// message resolves the `msg` tag of the failed field, falling back to a generic text.
func message(t reflect.Type, fe validator.FieldError) string {
	if t.Kind() == reflect.Struct {
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			if msg := sf.Tag.Get("msg"); msg != "" {
				return msg
			}
		}
	}
	switch fe.Tag() {
	case "required", "notblank":
		return "must not be empty"
	default:
		return "failed on '" + fe.Tag() + "' rule"
	}
}

package validate

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grainpay/internal/core/apperror"
)

type sample struct {
	Name  string `json:"name" validate:"notblank" msg:"Name cannot be empty"`
	Count *int   `json:"count" validate:"required" msg:"Count cannot be null"`
	Note  string `json:"note,omitempty" validate:"omitempty,max=3"`
}

func TestStruct_Valid(t *testing.T) {
	n := 1
	assert.NoError(t, Struct(sample{Name: "x", Count: &n}))
}

func TestStruct_CollectsEveryField(t *testing.T) {
	err := Struct(&sample{Name: "   ", Note: "toolong"})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, apperror.ValidationFailedMessage, appErr.Message)
	assert.ElementsMatch(t, []string{
		"name: Name cannot be empty",
		"count: Count cannot be null",
		"note: failed on 'max' rule",
	}, appErr.Errors)
}

func TestRegister_ReportsFailure(t *testing.T) {
	v := validator.New()
	err := register(v, map[string]validator.Func{"": notBlank})
	assert.Error(t, err)

	require.NoError(t, register(v, rules))
	assert.Error(t, v.Var("  ", "notblank"))
	assert.NoError(t, v.Var("x", "notblank"))
}

func TestEngine_NotBlankRegistered(t *testing.T) {
	require.NotPanics(t, func() { engine() })
	assert.Error(t, engine().Var("", "notblank"))
}

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"grainpay/internal/core/apperror"
	"grainpay/internal/core/types"
	"grainpay/internal/core/validate"
	"grainpay/internal/infrastructure/http/v1/dto"
)

// MalformedBodyMessage is reported when the request body cannot be decoded.
const MalformedBodyMessage = "Malformed JSON request"

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON decodes the request body into obj and validates it.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, decodeError(err))
		return false
	}
	if err := validate.Struct(obj); err != nil {
		h.Error(c, err)
		return false
	}
	return true
}

// decodeError turns a JSON decoding failure into field messages. The raw
// decoder text names Go types, so it is kept only as the logged cause.
func decodeError(err error) *apperror.AppError {
	appErr := apperror.NewValidation(MalformedBodyMessage).WithCause(err)

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		appErr.WithFieldError(typeErr.Field, types.DecodeHint(typeErr.Type))
	case errors.Is(err, io.EOF):
		appErr.WithFieldError("body", "must not be empty")
	default:
		appErr.WithFieldError("body", "must be a valid JSON object")
	}
	return appErr
}

// BindQuery binds and validates query parameters.
func (h *BaseHandler) BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		appErr := apperror.NewValidation("invalid query parameters").WithCause(err)
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				appErr.WithFieldError(strings.ToLower(fe.Field()), "must be "+ruleText(fe))
			}
		} else {
			appErr.WithFieldError("query", err.Error())
		}
		h.Error(c, appErr)
		return false
	}
	return true
}

func ruleText(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return "at least " + fe.Param()
	case "max":
		return "at most " + fe.Param()
	default:
		return "valid (" + fe.Tag() + ")"
	}
}

// ParseIDParam parses an integer path parameter.
func (h *BaseHandler) ParseIDParam(c *gin.Context, key string) (int64, bool) {
	raw := c.Param(key)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.Error(c, apperror.NewInvalidArgument("invalid id format").WithFieldError(key, "must be an integer, got "+strconv.Quote(raw)))
		return 0, false
	}
	return id, true
}

// Error registers error on Gin context and aborts request.
// Actual JSON response is produced by middleware.ErrorHandler (single source of truth).
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// OK sends 200 with data in the envelope.
func (h *BaseHandler) OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.NewEnvelope(http.StatusOK, message, data))
}

// Created sends 201 with data in the envelope.
func (h *BaseHandler) Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, dto.NewEnvelope(http.StatusCreated, message, data))
}

// NoContent sends 204 with an empty body.
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

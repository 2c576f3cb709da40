// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"time"

	"grainpay/internal/domain"
)

// --- Pagination ---

// PageQuery holds the list query parameters. Absent values take the defaults
// of domain.DefaultPageRequest.
type PageQuery struct {
	Page *int   `form:"page" binding:"omitempty,min=0"`
	Size *int   `form:"size" binding:"omitempty,min=1"`
	Sort string `form:"sort"`
}

// ToPageRequest applies defaults.
func (q PageQuery) ToPageRequest() domain.PageRequest {
	page := domain.DefaultPageRequest()
	if q.Page != nil {
		page.Page = *q.Page
	}
	if q.Size != nil {
		page.Size = *q.Size
	}
	if q.Sort != "" {
		page.Sort = q.Sort
	}
	return page
}

// --- Envelope ---

// Envelope wraps every successful response body.
type Envelope struct {
	Data    any    `json:"data"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// NewEnvelope creates an Envelope.
func NewEnvelope(status int, message string, data any) Envelope {
	return Envelope{
		Data:    data,
		Status:  status,
		Message: message,
	}
}

// --- Error Response ---

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Message   string    `json:"message"`
	Status    int       `json:"status"`
	Errors    []string  `json:"errors"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorResponse creates an ErrorResponse stamped with the current UTC time.
// Errors is never null in JSON.
func NewErrorResponse(status int, message string, errs []string) ErrorResponse {
	if errs == nil {
		errs = []string{}
	}
	return ErrorResponse{
		Message:   message,
		Status:    status,
		Errors:    errs,
		Timestamp: time.Now().UTC(),
	}
}

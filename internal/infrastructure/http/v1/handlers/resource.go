// Package handlers provides HTTP request handlers.
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"grainpay/internal/core/entity"
	"grainpay/internal/domain"
	"grainpay/internal/infrastructure/http/v1/dto"
	"grainpay/pkg/logger"
)

// HeaderTotalCount carries the total number of records of a list response.
const HeaderTotalCount = "X-Total-Count"

// ResourceNames are the singular and plural names used in messages and logs.
type ResourceNames struct {
	Singular string // "Expense"
	Plural   string // "expenses"
}

// ResourceHandler provides generic CRUD handlers over a domain.ResourceService.
type ResourceHandler[D entity.Record] struct {
	*BaseHandler
	service domain.ResourceService[D]
	names   ResourceNames
}

// NewResourceHandler creates a new resource handler.
func NewResourceHandler[D entity.Record](base *BaseHandler, service domain.ResourceService[D], names ResourceNames) *ResourceHandler[D] {
	return &ResourceHandler[D]{
		BaseHandler: base,
		service:     service,
		names:       names,
	}
}

func (h *ResourceHandler[D]) log(c *gin.Context, msg string, keysAndValues ...any) {
	logger.FromContext(c.Request.Context()).
		WithComponent("api").
		Infow(msg, keysAndValues...)
}

// List handles GET / - one page of records.
func (h *ResourceHandler[D]) List(c *gin.Context) {
	var query dto.PageQuery
	if !h.BindQuery(c, &query) {
		return
	}
	page := query.ToPageRequest()

	h.log(c, "find "+h.names.Plural+" by page", "page", page.Page, "size", page.Size, "sort", page.Sort)

	result, err := h.service.FindAll(c.Request.Context(), page)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.Header(HeaderTotalCount, strconv.FormatInt(result.TotalElements, 10))
	h.OK(c, "List of "+h.names.Plural, result.Content)
}

// Create handles POST / - create a record.
func (h *ResourceHandler[D]) Create(c *gin.Context) {
	var req D
	if !h.BindJSON(c, &req) {
		return
	}

	h.log(c, "save "+strings.ToLower(h.names.Singular))

	saved, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, h.names.Singular+" created", saved)
}

// Get handles GET /:id - get a single record.
func (h *ResourceHandler[D]) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	h.log(c, "find "+strings.ToLower(h.names.Singular)+" by id", "id", id)

	found, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.names.Singular+" found", found)
}

// Update handles PUT /:id - replace a record.
func (h *ResourceHandler[D]) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req D
	if !h.BindJSON(c, &req) {
		return
	}

	h.log(c, "update "+strings.ToLower(h.names.Singular)+" by id", "id", id)

	updated, err := h.service.UpdateByID(c.Request.Context(), id, req)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.names.Singular+" updated", updated)
}

// Delete handles DELETE /:id - remove a record.
func (h *ResourceHandler[D]) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	h.log(c, "delete "+strings.ToLower(h.names.Singular)+" by id", "id", id)

	if err := h.service.DeleteByID(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

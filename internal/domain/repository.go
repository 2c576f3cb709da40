// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"
	"fmt"
	"math"

	"grainpay/internal/core/apperror"
	"grainpay/internal/core/entity"
)

// --- Pagination ---

const (
	DefaultPageSize = 10
	DefaultSort     = "id"
)

// PageRequest selects one page of an ordered listing.
type PageRequest struct {
	// Page is zero-based.
	Page int

	// Size is the maximum number of items on the page.
	Size int

	// Sort is an API field name, optionally "-field" or "field,desc" for descending order.
	Sort string
}

// DefaultPageRequest returns page 0 of size 10 ordered by id.
func DefaultPageRequest() PageRequest {
	return PageRequest{
		Page: 0,
		Size: DefaultPageSize,
		Sort: DefaultSort,
	}
}

// Offset returns the number of rows to skip. It saturates at math.MaxInt64
// instead of wrapping, so a huge page number still lands past the data.
func (p PageRequest) Offset() int64 {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if int64(p.Page) > math.MaxInt64/int64(p.Size) {
		return math.MaxInt64
	}
	return int64(p.Page) * int64(p.Size)
}

// Validate checks page bounds. Sort fields are checked by the gateway.
func (p PageRequest) Validate() error {
	if p.Page < 0 {
		return apperror.NewInvalidArgument(fmt.Sprintf("page must be >= 0, got %d", p.Page))
	}
	if p.Size < 1 {
		return apperror.NewInvalidArgument(fmt.Sprintf("size must be > 0, got %d", p.Size))
	}
	return nil
}

// Page is a bounded slice of an ordered result set.
type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
}

// TotalPages returns the number of pages needed to hold TotalElements.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// MapPage converts page content item by item, keeping the paging metadata.
// Content of the result is never nil.
func MapPage[E, D any](p Page[E], fn func(E) D) Page[D] {
	out := make([]D, 0, len(p.Content))
	for _, item := range p.Content {
		out = append(out, fn(item))
	}
	return Page[D]{
		Content:       out,
		Number:        p.Number,
		Size:          p.Size,
		TotalElements: p.TotalElements,
	}
}

// --- Persistence ---

// Gateway is the persistence contract of one resource table.
type Gateway[E entity.Persistable] interface {
	// FindAll returns the requested page; a page beyond the data is empty, not an error.
	FindAll(ctx context.Context, page PageRequest) (Page[E], error)

	// FindByID returns an apperror NotFound when no row has the id.
	FindByID(ctx context.Context, id int64) (E, error)

	// Save inserts a new entity (zero id) or updates the row with its id and
	// returns the stored state. Updating a missing row is NotFound.
	Save(ctx context.Context, e E) (E, error)

	// DeleteByID removes the row; a missing row is NotFound.
	DeleteByID(ctx context.Context, id int64) error
}

// Mapper converts between the wire DTO and the storage entity of one resource.
type Mapper[E entity.Persistable, D entity.Record] interface {
	ToDTO(e E) D

	// ToEntity never copies the DTO id; the service assigns identity.
	ToEntity(d D) E
}

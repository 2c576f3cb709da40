package domain

import (
	"context"
	"fmt"

	"grainpay/internal/core/apperror"
	"grainpay/internal/core/entity"
	"grainpay/internal/core/tx"
	"grainpay/pkg/logger"
)

// IDMismatchMessage is reported when the path id and the body id of an update differ.
const IDMismatchMessage = "Id mismatch"

// ResourceService is the CRUD contract shared by every resource type.
type ResourceService[D entity.Record] interface {
	FindAll(ctx context.Context, page PageRequest) (Page[D], error)
	Save(ctx context.Context, dto D) (D, error)
	FindByID(ctx context.Context, id int64) (D, error)
	UpdateByID(ctx context.Context, id int64, dto D) (D, error)
	DeleteByID(ctx context.Context, id int64) error
}

// CrudService implements ResourceService on top of a Gateway and a Mapper.
type CrudService[E entity.Persistable, D entity.Record] struct {
	gateway   Gateway[E]
	mapper    Mapper[E, D]
	txManager tx.Manager

	// entityName for log fields
	entityName string

	// notFoundMessage replaces any store-level not-found text
	notFoundMessage string
}

// CrudServiceConfig configures a CrudService.
type CrudServiceConfig[E entity.Persistable, D entity.Record] struct {
	Gateway         Gateway[E]
	Mapper          Mapper[E, D]
	TxManager       tx.Manager // Optional, defaults to tx.Passthrough
	EntityName      string
	NotFoundMessage string
}

// NewCrudService creates a new CRUD service.
func NewCrudService[E entity.Persistable, D entity.Record](cfg CrudServiceConfig[E, D]) *CrudService[E, D] {
	txm := cfg.TxManager
	if txm == nil {
		txm = tx.Passthrough
	}
	msg := cfg.NotFoundMessage
	if msg == "" {
		msg = cfg.EntityName + " not found!"
	}
	return &CrudService[E, D]{
		gateway:         cfg.Gateway,
		mapper:          cfg.Mapper,
		txManager:       txm,
		entityName:      cfg.EntityName,
		notFoundMessage: msg,
	}
}

var _ ResourceService[entity.Record] = (*CrudService[entity.Persistable, entity.Record])(nil)

func (s *CrudService[E, D]) normalizeGetErr(err error, id int64) error {
	if err == nil {
		return nil
	}
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.notFoundMessage).WithCause(err)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(fmt.Errorf("%s %d: %w", s.entityName, id, err))
}

func (s *CrudService[E, D]) normalizeErr(err error) error {
	if err == nil || apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err)
}

// FindAll returns one page of DTOs.
func (s *CrudService[E, D]) FindAll(ctx context.Context, page PageRequest) (Page[D], error) {
	if err := page.Validate(); err != nil {
		return Page[D]{}, err
	}

	var entities Page[E]
	err := s.readOnly(ctx, func(ctx context.Context) error {
		var err error
		entities, err = s.gateway.FindAll(ctx, page)
		return err
	})
	if err != nil {
		return Page[D]{}, s.normalizeErr(err)
	}
	return MapPage(entities, s.mapper.ToDTO), nil
}

// readOnly runs fn in a read-only transaction when the manager supports one,
// so the count and the page come from the same snapshot.
func (s *CrudService[E, D]) readOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if rom, ok := s.txManager.(tx.ReadOnlyManager); ok {
		return rom.ReadOnly(ctx, fn)
	}
	return fn(ctx)
}

// Save creates a new record. Any id carried by the DTO is ignored.
func (s *CrudService[E, D]) Save(ctx context.Context, dto D) (D, error) {
	var zero D

	e := s.mapper.ToEntity(dto)
	e.Base().AssignID(0)

	saved, err := s.gateway.Save(ctx, e)
	if err != nil {
		return zero, s.normalizeErr(err)
	}

	logger.Debug(ctx, "record created", "entity", s.entityName, "id", saved.Base().ID)
	return s.mapper.ToDTO(saved), nil
}

// FindByID returns the record with the given id.
func (s *CrudService[E, D]) FindByID(ctx context.Context, id int64) (D, error) {
	var zero D

	e, err := s.gateway.FindByID(ctx, id)
	if err != nil {
		return zero, s.normalizeGetErr(err, id)
	}
	return s.mapper.ToDTO(e), nil
}

// UpdateByID replaces every field of an existing record except id and createdAt.
// The body id must equal id; that is checked before the store is touched.
func (s *CrudService[E, D]) UpdateByID(ctx context.Context, id int64, dto D) (D, error) {
	var zero D

	if bodyID := dto.RecordID(); bodyID == nil || *bodyID != id {
		return zero, apperror.NewInvalidArgument(IDMismatchMessage)
	}

	var saved E
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.gateway.FindByID(ctx, id)
		if err != nil {
			return s.normalizeGetErr(err, id)
		}

		e := s.mapper.ToEntity(dto)
		base := e.Base()
		base.AssignID(id)
		base.CreatedAt = existing.Base().CreatedAt

		saved, err = s.gateway.Save(ctx, e)
		if err != nil {
			return s.normalizeGetErr(err, id)
		}
		if !entity.SameIdentity(existing, saved) {
			return apperror.NewInternal(fmt.Errorf("update %s %d stored row %d", s.entityName, id, saved.Base().ID))
		}
		return nil
	})
	if err != nil {
		return zero, err
	}

	logger.Debug(ctx, "record updated", "entity", s.entityName, "id", id)
	return s.mapper.ToDTO(saved), nil
}

// DeleteByID removes an existing record. Deleting a missing id is NotFound.
func (s *CrudService[E, D]) DeleteByID(ctx context.Context, id int64) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.gateway.FindByID(ctx, id); err != nil {
			return s.normalizeGetErr(err, id)
		}
		if err := s.gateway.DeleteByID(ctx, id); err != nil {
			return s.normalizeGetErr(err, id)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Debug(ctx, "record deleted", "entity", s.entityName, "id", id)
	return nil
}

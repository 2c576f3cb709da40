// Package entity holds the storage-side base types shared by all resources.
package entity

import (
	"time"
)

// Persistable is implemented by storage entities embedding BaseEntity.
type Persistable interface {
	Base() *BaseEntity
}

// Record is implemented by wire DTOs that may carry a record id.
type Record interface {
	// RecordID returns the id embedded in the DTO, nil when absent.
	RecordID() *int64
}

// BaseEntity contains the identity and audit columns of every table.
type BaseEntity struct {
	// ID is assigned by the store on insert; zero means "not persisted yet".
	ID int64 `db:"id" json:"id"`

	// CreatedAt is set once on first persistence.
	CreatedAt time.Time `db:"created_at" json:"createdAt"`

	// UpdatedAt moves forward on every successful save.
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewBaseEntity creates an unidentified BaseEntity stamped with now.
func NewBaseEntity(now time.Time) BaseEntity {
	now = now.UTC().Truncate(time.Second)
	return BaseEntity{
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Base returns the embedded BaseEntity (implements Persistable).
func (b *BaseEntity) Base() *BaseEntity {
	return b
}

// IsNew reports whether the store has not assigned an id yet.
func (b *BaseEntity) IsNew() bool {
	return b.ID == 0
}

// AssignID binds the entity to an existing row.
func (b *BaseEntity) AssignID(id int64) {
	b.ID = id
}

// Touch updates the UpdatedAt timestamp.
func (b *BaseEntity) Touch(now time.Time) {
	b.UpdatedAt = now.UTC().Truncate(time.Second)
}

// SameIdentity reports whether a and b denote the same stored record.
// Unpersisted entities are never the same as anything, themselves included.
func SameIdentity(a, b Persistable) bool {
	if a == nil || b == nil {
		return false
	}
	ab, bb := a.Base(), b.Base()
	if ab == nil || bb == nil {
		return false
	}
	return ab.ID != 0 && ab.ID == bb.ID
}

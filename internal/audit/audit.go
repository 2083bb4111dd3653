// Package audit stamps ownership and modification metadata on persisted
// entities and turns deletes into soft deletes. Entities opt in by embedding
// Fields and/or SoftDelete; the GORM plugin dispatches on the Auditable and
// SoftDeletable interfaces so any model gains the behaviour.
package audit

import (
	"time"
)

// Actor identifies the principal performing a mutation.
type Actor struct {
	ID   string
	Name string
}

// System is recorded when no authenticated principal is attached to a write.
var System = Actor{ID: "system", Name: "System"}

// IsZero reports whether no principal was supplied.
func (a Actor) IsZero() bool {
	return a.ID == "" && a.Name == ""
}

// DisplayName is the value written to created_by/updated_by.
func (a Actor) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}

// Fields holds creation and modification metadata. UserID, CreatedAt and
// CreatedBy are written once on insert.
type Fields struct {
	UserID    string     `gorm:"size:64;not null;index" json:"userId"`
	CreatedAt time.Time  `gorm:"not null" json:"createdAt"`
	CreatedBy string     `gorm:"size:100;not null" json:"createdBy"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
	UpdatedBy *string    `gorm:"size:100" json:"updatedBy"`
}

// AuditFields exposes the embedded metadata to the plugin.
func (f *Fields) AuditFields() *Fields { return f }

// SoftDelete marks a record as deleted without removing it. Once set the
// flag is never cleared.
type SoftDelete struct {
	IsDeleted bool       `gorm:"not null;index" json:"isDeleted"`
	DeletedAt *time.Time `json:"deletedAt"`
}

// SoftDeleteState exposes the embedded marker to the plugin.
func (s *SoftDelete) SoftDeleteState() *SoftDelete { return s }

// Auditable is implemented by models embedding Fields.
type Auditable interface {
	AuditFields() *Fields
}

// SoftDeletable is implemented by models embedding SoftDelete.
type SoftDeletable interface {
	SoftDeleteState() *SoftDelete
}

// Column names owned by the plugin.
const (
	ColumnUserID    = "user_id"
	ColumnCreatedAt = "created_at"
	ColumnCreatedBy = "created_by"
	ColumnUpdatedAt = "updated_at"
	ColumnUpdatedBy = "updated_by"
	ColumnIsDeleted = "is_deleted"
	ColumnDeletedAt = "deleted_at"
)

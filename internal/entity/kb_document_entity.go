package entity

import (
	"time"

	"github.com/google/uuid"
)

type KbDocument struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FileName  string
	Status    string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}

// Indexing lifecycle of an uploaded document.
const (
	KbDocumentStatusPending = "PENDING"
	KbDocumentStatusIndexed = "INDEXED"
	KbDocumentStatusFailed  = "FAILED"
)

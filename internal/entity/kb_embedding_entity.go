package entity

import (
	"time"

	"github.com/google/uuid"
)

type KbEmbedding struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Document       string
	EmbeddingValue []float32
	Source         string
	Page           *int
	ChunkIndex     int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}

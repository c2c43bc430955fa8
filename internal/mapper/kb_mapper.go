package mapper

import (
	"time"

	"helpdesk-assistant-be/internal/entity"
	"helpdesk-assistant-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KbDocumentMapper struct{}

func NewKbDocumentMapper() *KbDocumentMapper {
	return &KbDocumentMapper{}
}

func (m *KbDocumentMapper) ToEntity(e *model.KbDocument) *entity.KbDocument {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.KbDocument{
		Id:        e.Id,
		FileName:  e.FileName,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: e.DeletedAt.Valid,
	}
}

func (m *KbDocumentMapper) ToModel(e *entity.KbDocument) *model.KbDocument {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.KbDocument{
		Id:        e.Id,
		FileName:  e.FileName,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

type KbEmbeddingMapper struct{}

func NewKbEmbeddingMapper() *KbEmbeddingMapper {
	return &KbEmbeddingMapper{}
}

func (m *KbEmbeddingMapper) ToEntity(e *model.KbEmbedding) *entity.KbEmbedding {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.KbEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		Source:         e.Source,
		Page:           e.Page,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      e.DeletedAt.Valid,
	}
}

func (m *KbEmbeddingMapper) ToModel(e *entity.KbEmbedding) *model.KbEmbedding {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.KbEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		Source:         e.Source,
		Page:           e.Page,
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

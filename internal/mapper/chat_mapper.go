package mapper

import (
	"time"

	"helpdesk-assistant-be/internal/entity"
	"helpdesk-assistant-be/internal/model"

	"gorm.io/gorm"
)

type ChatMessageMapper struct{}

func NewChatMessageMapper() *ChatMessageMapper {
	return &ChatMessageMapper{}
}

func (m *ChatMessageMapper) ToEntity(e *model.ChatMessage) *entity.ChatMessage {
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

	return &entity.ChatMessage{
		Id:        e.Id,
		SessionId: e.SessionId,
		Role:      e.Role,
		Message:   e.Message,
		Intent:    e.Intent,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: e.DeletedAt.Valid,
	}
}

func (m *ChatMessageMapper) ToModel(e *entity.ChatMessage) *model.ChatMessage {
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

	return &model.ChatMessage{
		Id:        e.Id,
		SessionId: e.SessionId,
		Role:      e.Role,
		Message:   e.Message,
		Intent:    e.Intent,
		CreatedAt: e.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

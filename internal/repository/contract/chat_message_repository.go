package contract

import (
	"context"

	"helpdesk-assistant-be/internal/entity"
	"helpdesk-assistant-be/internal/repository/specification"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	FindBySession(ctx context.Context, sessionId string, limit int) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

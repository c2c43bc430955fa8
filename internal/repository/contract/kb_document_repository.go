package contract

import (
	"context"

	"helpdesk-assistant-be/internal/entity"
	"helpdesk-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

type KbDocumentRepository interface {
	Create(ctx context.Context, document *entity.KbDocument) error
	Update(ctx context.Context, document *entity.KbDocument) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KbDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KbDocument, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

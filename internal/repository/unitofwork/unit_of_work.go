package unitofwork

import (
	"context"

	"helpdesk-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatMessageRepository() contract.ChatMessageRepository
	KbDocumentRepository() contract.KbDocumentRepository
	KbEmbeddingRepository() contract.KbEmbeddingRepository
}

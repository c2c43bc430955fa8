package contract

import (
	"context"

	"helpdesk-assistant-be/internal/entity"
)

type KbEmbeddingRepository interface {
	CreateBulk(ctx context.Context, embeddings []*entity.KbEmbedding) error
	DeleteBySource(ctx context.Context, source string) error
	// SearchSimilar returns the closest chunks by cosine distance,
	// nearest first.
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.KbEmbedding, error)
}

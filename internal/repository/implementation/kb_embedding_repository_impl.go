package implementation

import (
	"context"

	"helpdesk-assistant-be/internal/entity"
	"helpdesk-assistant-be/internal/mapper"
	"helpdesk-assistant-be/internal/model"
	"helpdesk-assistant-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KbEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KbEmbeddingMapper
}

func NewKbEmbeddingRepository(db *gorm.DB) contract.KbEmbeddingRepository {
	return &KbEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewKbEmbeddingMapper(),
	}
}

func (r *KbEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.KbEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := make([]*model.KbEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = r.mapper.ToModel(e)
	}
	if err := r.db.WithContext(ctx).CreateInBatches(models, 100).Error; err != nil {
		return err
	}
	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

// DeleteBySource hard-deletes every chunk of a source so re-indexing
// never leaves stale rows behind the soft-delete scope.
func (r *KbEmbeddingRepositoryImpl) DeleteBySource(ctx context.Context, source string) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("source = ?", source).
		Delete(&model.KbEmbedding{}).Error
}

func (r *KbEmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.KbEmbedding, error) {
	if limit <= 0 {
		limit = 4
	}
	var models []*model.KbEmbedding

	// pgvector cosine distance: embedding_value <=> vector
	err := r.db.WithContext(ctx).
		Where("kb_embeddings.deleted_at IS NULL").
		Order(gorm.Expr("embedding_value <=> ?", pgvector.NewVector(embedding))).
		Limit(limit).
		Find(&models).Error

	if err != nil {
		return nil, err
	}

	entities := make([]*entity.KbEmbedding, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

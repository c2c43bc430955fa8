package rag

import (
	"context"
	"fmt"
	"log"

	"helpdesk-assistant-be/internal/repository/unitofwork"
	"helpdesk-assistant-be/pkg/embedding"
)

// VectorRetriever answers Search by embedding the query and running a
// cosine-distance scan over the kb_embeddings index.
type VectorRetriever struct {
	embeddingProvider embedding.EmbeddingProvider
	uowFactory        unitofwork.RepositoryFactory
	logger            *log.Logger
}

func NewVectorRetriever(
	embeddingProvider embedding.EmbeddingProvider,
	uowFactory unitofwork.RepositoryFactory,
	logger *log.Logger,
) *VectorRetriever {
	return &VectorRetriever{
		embeddingProvider: embeddingProvider,
		uowFactory:        uowFactory,
		logger:            logger,
	}
}

func (r *VectorRetriever) Search(ctx context.Context, query string, topK int) ([]Passage, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	embeddingRes, err := r.embeddingProvider.Generate(query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	uow := r.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.KbEmbeddingRepository().SearchSimilar(ctx, embeddingRes.Embedding.Values, topK)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	passages := make([]Passage, 0, len(rows))
	for _, row := range rows {
		passages = append(passages, Passage{
			Text:   row.Document,
			Source: row.Source,
			Page:   row.Page,
		})
	}

	r.logger.Printf("[DEBUG] Retrieved %d passages for query (topK=%d)", len(passages), topK)
	return passages, nil
}

var _ Retriever = &VectorRetriever{}

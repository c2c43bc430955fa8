package embedding

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// AzureProvider implements EmbeddingProvider against an Azure OpenAI
// embedding deployment (e.g. text-embedding-3-small).
type AzureProvider struct {
	client     *openai.Client
	Deployment string
}

func NewAzureProvider(endpoint, apiKey, apiVersion, deployment string) EmbeddingProvider {
	cfg := openai.DefaultAzureConfig(apiKey, endpoint)
	cfg.APIVersion = apiVersion
	return &AzureProvider{
		client:     openai.NewClientWithConfig(cfg),
		Deployment: deployment,
	}
}

func (p *AzureProvider) Generate(text string, taskType string) (*EmbeddingResponse, error) {
	// taskType is ignored: Azure OpenAI embeddings use one model for both
	// queries and documents.
	resp, err := p.client.CreateEmbeddings(context.Background(), openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(p.Deployment),
	})
	if err != nil {
		return nil, fmt.Errorf("azure openai embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("azure openai embedding: empty response")
	}

	return &EmbeddingResponse{
		Embedding: EmbeddingResponseEmbedding{Values: resp.Data[0].Embedding},
	}, nil
}

package azure

import (
	"context"
	"fmt"

	"helpdesk-assistant-be/pkg/llm"

	openai "github.com/sashabaranov/go-openai"
)

// AzureProvider talks to an Azure OpenAI chat deployment.
type AzureProvider struct {
	client    *openai.Client
	ModelName string
}

// Ensure AzureProvider implements LLMProvider
var _ llm.LLMProvider = &AzureProvider{}

func NewAzureProvider(endpoint, apiKey, apiVersion, deployment string) *AzureProvider {
	cfg := openai.DefaultAzureConfig(apiKey, endpoint)
	cfg.APIVersion = apiVersion
	return &AzureProvider{
		client:    openai.NewClientWithConfig(cfg),
		ModelName: deployment,
	}
}

func (p *AzureProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.2, // Default
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]openai.ChatCompletionMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = openai.ChatMessageRoleAssistant
		}
		messages[i] = openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		}
	}

	model := p.ModelName
	if options.Model != "" {
		model = options.Model
	}

	req := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: float32(options.Temperature),
	}
	if options.MaxTokens > 0 {
		req.MaxTokens = options.MaxTokens
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("azure openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("azure openai chat completion: empty choices")
	}

	return resp.Choices[0].Message.Content, nil
}

func (p *AzureProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	// Reuse Chat for simplicity as most new LLMs are chat-optimized
	return p.Chat(ctx, []llm.Message{{Role: openai.ChatMessageRoleUser, Content: prompt}}, opts...)
}

package factory

import (
	"fmt"

	"helpdesk-assistant-be/pkg/llm"
	"helpdesk-assistant-be/pkg/llm/azure"
)

func NewLLMProvider(providerType, endpoint, apiKey, apiVersion, deployment string) (llm.LLMProvider, error) {
	switch providerType {
	case "azure":
		if endpoint == "" || apiKey == "" {
			return nil, fmt.Errorf("azure provider requires endpoint and api key")
		}
		return azure.NewAzureProvider(endpoint, apiKey, apiVersion, deployment), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}

package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"helpdesk-assistant-be/internal/constant"
	"helpdesk-assistant-be/pkg/ai/state"
	"helpdesk-assistant-be/pkg/llm"
)

// Classification is the structured verdict of one classifier call.
type Classification struct {
	Intent    state.Intent
	Arguments map[string]string
}

// rawClassification mirrors the JSON the model is asked to emit.
type rawClassification struct {
	Intent    string            `json:"intent"`
	Arguments map[string]string `json:"arguments"`
}

// Classifier resolves a user question to one of the classifiable
// intents with a single low-temperature LLM call.
type Classifier struct {
	llmProvider llm.LLMProvider
	model       string
	logger      *log.Logger
}

func NewClassifier(llmProvider llm.LLMProvider, model string, logger *log.Logger) *Classifier {
	return &Classifier{
		llmProvider: llmProvider,
		model:       model,
		logger:      logger,
	}
}

// Classify asks the model for an intent verdict. Classification must
// never take the conversation down: any provider error or malformed
// response degrades to general_qa so the question still reaches
// retrieval.
func (c *Classifier) Classify(ctx context.Context, question string) Classification {
	prompt := fmt.Sprintf(constant.ClassifierPrompt, question)

	response, err := c.llmProvider.Generate(ctx, prompt,
		llm.WithTemperature(0.1),
		llm.WithModel(c.model),
	)
	if err != nil {
		c.logger.Printf("[WARN] intent classification failed, defaulting to general_qa: %v", err)
		return fallbackClassification()
	}

	verdict, err := parseClassification(response)
	if err != nil {
		c.logger.Printf("[WARN] intent parsing failed, defaulting to general_qa: %v (raw: %s)", err, response)
		return fallbackClassification()
	}

	return verdict
}

func parseClassification(response string) (Classification, error) {
	jsonContent := extractJSON(response)
	if jsonContent == "" {
		return Classification{}, fmt.Errorf("no JSON found in response")
	}

	var raw rawClassification
	if err := json.Unmarshal([]byte(jsonContent), &raw); err != nil {
		return Classification{}, fmt.Errorf("JSON unmarshal failed: %w", err)
	}

	intent := state.Intent(strings.ToLower(strings.TrimSpace(raw.Intent)))
	switch intent {
	case state.IntentGreeting, state.IntentDirectTool, state.IntentFaq,
		state.IntentGeneralQA, state.IntentAgentAction:
	default:
		return Classification{}, fmt.Errorf("unknown intent %q", raw.Intent)
	}

	args := raw.Arguments
	if args == nil {
		args = map[string]string{}
	}
	return Classification{Intent: intent, Arguments: args}, nil
}

func fallbackClassification() Classification {
	return Classification{Intent: state.IntentGeneralQA, Arguments: map[string]string{}}
}

func extractJSON(response string) string {
	startIdx := strings.Index(response, "{")
	endIdx := strings.LastIndex(response, "}")

	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return ""
	}

	return response[startIdx : endIdx+1]
}

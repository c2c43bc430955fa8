package pipeline

import (
	"context"
	"fmt"
	"log"

	"helpdesk-assistant-be/internal/constant"
	"helpdesk-assistant-be/pkg/ai/intent"
	"helpdesk-assistant-be/pkg/ai/state"
	"helpdesk-assistant-be/pkg/ai/tools"
	"helpdesk-assistant-be/pkg/llm"
	"helpdesk-assistant-be/pkg/rag"
)

// GraphPipeline is the LLM-backed answer flow: classify the question,
// then route to a greeting, a scripted tool, or retrieval-grounded
// generation. Each call is stateless; session identity is only carried
// for logging.
type GraphPipeline struct {
	classifier  *intent.Classifier
	registry    *tools.Registry
	retriever   rag.Retriever
	llmProvider llm.LLMProvider
	chatModel   string
	logger      *log.Logger
}

func NewGraphPipeline(
	classifier *intent.Classifier,
	registry *tools.Registry,
	retriever rag.Retriever,
	llmProvider llm.LLMProvider,
	chatModel string,
	logger *log.Logger,
) *GraphPipeline {
	return &GraphPipeline{
		classifier:  classifier,
		registry:    registry,
		retriever:   retriever,
		llmProvider: llmProvider,
		chatModel:   chatModel,
		logger:      logger,
	}
}

func (p *GraphPipeline) Execute(ctx context.Context, question, sessionID string) (state.Result, error) {
	st := &state.BotState{
		Question:  question,
		SessionID: sessionID,
		Sources:   []state.Citation{},
	}

	verdict := p.classifier.Classify(ctx, question)
	st.Intent = verdict.Intent
	st.ToolArgs = verdict.Arguments
	p.logger.Printf("[INFO] Intent resolved: %s (session=%s)", st.Intent, sessionID)

	switch st.Intent {
	case state.IntentGreeting:
		st.Reply = constant.GreetingReply
		return st.Result(), nil

	case state.IntentDirectTool:
		p.runTool(st)
		return st.Result(), nil

	case state.IntentFaq:
		// FAQ questions share the retrieval path; the reference tables
		// are part of the index, so the label converges to general_qa.
		st.Intent = state.IntentGeneralQA
		if err := p.answerWithRetrieval(ctx, st); err != nil {
			return state.Result{}, err
		}
		return st.Result(), nil

	default:
		// general_qa and agent_action both resolve through retrieval;
		// agent_action keeps its label on the way out.
		if err := p.answerWithRetrieval(ctx, st); err != nil {
			return state.Result{}, err
		}
		return st.Result(), nil
	}
}

func (p *GraphPipeline) runTool(st *state.BotState) {
	name := tools.ToolName(st.ToolArgs["tool_name"])
	st.ToolName = string(name)
	res := p.registry.Dispatch(name, st.ToolArgs, st.Question)
	st.Reply = Finalize(res)
}

func (p *GraphPipeline) answerWithRetrieval(ctx context.Context, st *state.BotState) error {
	passages, err := p.retriever.Search(ctx, st.Question, rag.DefaultTopK)
	if err != nil {
		return fmt.Errorf("retrieval failed: %w", err)
	}

	systemPrompt := constant.RagSystemPromptNoContext
	userPrompt := st.Question
	if len(passages) > 0 {
		systemPrompt = constant.RagSystemPromptWithContext
		userPrompt = fmt.Sprintf("컨텍스트:\n%s\n\n질문: %s", rag.BuildContextBlock(passages), st.Question)

		for i, passage := range passages {
			st.Sources = append(st.Sources, state.Citation{
				Source: passage.Source,
				Page:   passage.Page,
				Index:  i + 1,
			})
		}
	}

	reply, err := p.llmProvider.Chat(ctx, []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: systemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: userPrompt},
	}, llm.WithModel(p.chatModel))
	if err != nil {
		return fmt.Errorf("answer generation failed: %w", err)
	}

	st.Reply = reply
	return nil
}

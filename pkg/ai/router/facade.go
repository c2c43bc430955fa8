package router

import (
	"context"
	"log"

	"helpdesk-assistant-be/internal/constant"
	"helpdesk-assistant-be/pkg/ai/pipeline"
	"helpdesk-assistant-be/pkg/ai/state"
)

// Facade is the single entry point for answering a question. It picks
// the LLM-backed graph when a backend is configured and the rule-based
// fallback otherwise, and guarantees the caller always receives a
// complete result triple.
type Facade struct {
	graph        *pipeline.GraphPipeline
	fallback     *pipeline.FallbackPipeline
	backendReady bool
	logger       *log.Logger
}

func NewFacade(
	graph *pipeline.GraphPipeline,
	fallback *pipeline.FallbackPipeline,
	backendReady bool,
	logger *log.Logger,
) *Facade {
	return &Facade{
		graph:        graph,
		fallback:     fallback,
		backendReady: backendReady,
		logger:       logger,
	}
}

// BackendReady reports whether the LLM-backed graph is in use.
func (f *Facade) BackendReady() bool {
	return f.backendReady
}

// Answer resolves one question. Graph failures of any kind, panics
// included, collapse to the fixed system-error triple; they are never
// retried and never reach the caller as errors.
func (f *Facade) Answer(ctx context.Context, question, sessionID string) (result state.Result) {
	if !f.backendReady {
		return f.fallback.Execute(question, sessionID)
	}

	defer func() {
		if r := recover(); r != nil {
			f.logger.Printf("[ERROR] answer pipeline panicked (session=%s): %v", sessionID, r)
			result = systemErrorResult()
		}
	}()

	res, err := f.graph.Execute(ctx, question, sessionID)
	if err != nil {
		f.logger.Printf("[ERROR] answer pipeline failed (session=%s): %v", sessionID, err)
		return systemErrorResult()
	}
	return res
}

func systemErrorResult() state.Result {
	return state.NewResult(constant.SystemErrorReply, state.IntentSystemError)
}

package pipeline

import (
	"strings"

	"helpdesk-assistant-be/internal/constant"
	"helpdesk-assistant-be/pkg/ai/state"
	"helpdesk-assistant-be/pkg/ai/tools"
	"helpdesk-assistant-be/pkg/kb"
)

// FallbackPipeline answers without any LLM backend. The rules run in a
// fixed order and the first hit wins, so identical questions always get
// identical answers.
type FallbackPipeline struct {
	store    *kb.Store
	registry *tools.Registry
}

func NewFallbackPipeline(store *kb.Store, registry *tools.Registry) *FallbackPipeline {
	return &FallbackPipeline{
		store:    store,
		registry: registry,
	}
}

func (p *FallbackPipeline) Execute(question, sessionID string) state.Result {
	trimmed := strings.TrimSpace(question)
	folded := strings.ToLower(trimmed)

	// Rule 1: exact greeting.
	for _, greeting := range constant.Greetings {
		if folded == greeting {
			return state.NewResult(constant.GreetingReply, state.IntentGreeting)
		}
	}

	// Rule 2: password reset.
	if strings.Contains(trimmed, constant.TriggerResetPassword) {
		res := p.registry.Dispatch(tools.ToolResetPassword, nil, trimmed)
		return state.NewResult(Finalize(res), state.IntentDirectTool)
	}

	// Rule 3: account issuance.
	if strings.Contains(trimmed, constant.TriggerRequestIDA) || strings.Contains(trimmed, constant.TriggerRequestIDB) {
		res := p.registry.Dispatch(tools.ToolRequestID, nil, trimmed)
		return state.NewResult(Finalize(res), state.IntentDirectTool)
	}

	// Rule 4: owner directory.
	if strings.Contains(trimmed, constant.TriggerOwner) {
		return p.lookupOwner(trimmed)
	}

	// Rule 5: lexical FAQ match.
	if entry := p.store.FindSimilarFAQ(trimmed); entry != nil {
		result := state.NewResult(constant.FaqAnswerPrefix+entry.Answer, state.IntentFaq)
		result.Sources = []state.Citation{{Source: "faq_data.csv", Index: 1}}
		return result
	}

	// Rule 6: give up explicitly.
	return state.NewResult(constant.UnsupportedReply, state.IntentUnsupported)
}

func (p *FallbackPipeline) lookupOwner(question string) state.Result {
	owners := p.store.Owners()

	if strings.Contains(question, constant.TriggerOwnerAll) || strings.TrimSpace(question) == constant.TriggerOwnerListAll {
		if len(owners) == 0 {
			return state.NewResult(constant.EmptyOwnersReply, state.IntentDirectTool)
		}
		result := state.NewResult(formatOwnerList(owners), state.IntentDirectTool)
		result.Sources = []state.Citation{{Source: "owners.csv", Index: 1}}
		return result
	}

	for i := range owners {
		if owners[i].Screen != "" && strings.Contains(question, owners[i].Screen) {
			result := state.NewResult(formatOwner(&owners[i]), state.IntentDirectTool)
			result.Sources = []state.Citation{{Source: "owners.csv", Index: 1}}
			return result
		}
	}

	return state.NewResult(constant.OwnerNotFoundHint, state.IntentDirectTool)
}

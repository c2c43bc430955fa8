package state

// Intent is the closed set of conversation intents the assistant
// understands. The classifier only ever emits the first five; the last
// two are assigned by the pipelines themselves.
type Intent string

const (
	IntentGreeting    Intent = "greeting"
	IntentDirectTool  Intent = "direct_tool"
	IntentFaq         Intent = "faq"
	IntentGeneralQA   Intent = "general_qa"
	IntentAgentAction Intent = "agent_action"
	IntentUnsupported Intent = "unsupported"
	IntentSystemError Intent = "system_error"
)

// Valid reports whether the value is one of the known intents.
func (i Intent) Valid() bool {
	switch i {
	case IntentGreeting, IntentDirectTool, IntentFaq, IntentGeneralQA,
		IntentAgentAction, IntentUnsupported, IntentSystemError:
		return true
	}
	return false
}

// Citation points at a passage that grounded part of a reply. Index is
// the 1-based rank the passage held in the retrieval result. Page is nil
// for sources without page structure (FAQ rows, directory rows).
type Citation struct {
	Source string
	Page   *int
	Index  int
}

// Result is the uniform answer triple every pipeline branch produces.
// Sources is never nil; an answer without citations carries an empty
// slice.
type Result struct {
	Reply   string
	Intent  Intent
	Sources []Citation
}

// NewResult builds a citation-free result.
func NewResult(reply string, intent Intent) Result {
	return Result{Reply: reply, Intent: intent, Sources: []Citation{}}
}

// BotState threads one question through the pipeline nodes. A fresh
// value is built per call; nothing here outlives the request.
type BotState struct {
	Question  string
	SessionID string
	Intent    Intent
	ToolName  string
	ToolArgs  map[string]string
	Reply     string
	Sources   []Citation
}

// Result snapshots the state into the outward triple.
func (s *BotState) Result() Result {
	sources := s.Sources
	if sources == nil {
		sources = []Citation{}
	}
	return Result{Reply: s.Reply, Intent: s.Intent, Sources: sources}
}

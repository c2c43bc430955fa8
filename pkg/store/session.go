package store

// Session is the in-memory interaction snapshot for one conversation.
// It exists for introspection only; answering never reads it.
type Session struct {
	ID         string `json:"id"`
	Mode       string `json:"mode"` // "GRAPH" | "FALLBACK"
	LastIntent string `json:"last_intent"`
	LastQuery  string `json:"last_query"`
	Turns      int    `json:"turns"`
}

const (
	ModeGraph    = "GRAPH"
	ModeFallback = "FALLBACK"
)

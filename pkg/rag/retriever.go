package rag

import "context"

// DefaultTopK is how many passages one question retrieves.
const DefaultTopK = 4

// Passage is one retrieved knowledge-base chunk. Page is nil for
// sources without page structure.
type Passage struct {
	Text   string
	Source string
	Page   *int
}

// Retriever finds the passages most relevant to a question, best first.
type Retriever interface {
	Search(ctx context.Context, query string, topK int) ([]Passage, error)
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"session_id" validate:"required"`
}

type CitationDTO struct {
	Source string `json:"source"`
	Page   *int   `json:"page,omitempty"`
	Index  int    `json:"index"`
}

type ChatResponse struct {
	Reply   string        `json:"reply"`
	Intent  string        `json:"intent"`
	Sources []CitationDTO `json:"sources"`
}

type ChatHistoryItemResponse struct {
	Id        uuid.UUID `json:"id"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	Intent    string    `json:"intent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type StatusResponse struct {
	Ok             bool   `json:"ok"`
	Mode           string `json:"mode"`
	AzureAvailable bool   `json:"azure_available"`
	LastIntent     string `json:"last_intent,omitempty"`
}

type UploadResponse struct {
	DocumentId uuid.UUID `json:"document_id"`
	FileName   string    `json:"file_name"`
	Status     string    `json:"status"`
}

type SyncResponse struct {
	Ok             bool `json:"ok"`
	IndexedChunks  int  `json:"indexed_chunks"`
	IndexedSources int  `json:"indexed_sources"`
}

// PublishIndexDocumentMessage is the payload of one indexing event on
// the knowledge-base topic.
type PublishIndexDocumentMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
	FileName   string    `json:"file_name"`
}

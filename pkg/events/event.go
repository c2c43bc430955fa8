package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "KB_DOCUMENT_UPLOADED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent carries the common fields for concrete events.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Knowledge-base lifecycle events.
const (
	KbDocumentUploaded = "KB_DOCUMENT_UPLOADED"
	KbDocumentIndexed  = "KB_DOCUMENT_INDEXED"
)

// NewKbDocumentUploaded records that a file was stored and is awaiting
// indexing.
func NewKbDocumentUploaded(documentId, fileName string) Event {
	return BaseEvent{
		Type: KbDocumentUploaded,
		Data: map[string]interface{}{
			"document_id": documentId,
			"file_name":   fileName,
		},
		OccurredAt: time.Now(),
	}
}

package types

const (
	EventDocumentCreated = "document.created"
	EventDocumentUpdated = "document.updated"
	EventDocumentDeleted = "document.deleted"
)

// DocumentEvent is pushed to websocket clients on every record mutation.
type DocumentEvent struct {
	Type       string `json:"type"`
	DocumentID string `json:"documentId"`
	Timestamp  string `json:"timestamp"`
}

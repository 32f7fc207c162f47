package types

const (
	DocumentTypeNote = "note"
	DocumentTypeLink = "link"
	DocumentTypeFile = "file"
)

// There is no processing pipeline in the local server, so every document
// is written as done.
const DocumentStatusDone = "done"

// Document represents a persisted memory record (note, link or file).
type Document struct {
	ID            string                 `json:"id"`
	Content       string                 `json:"content"`
	URL           *string                `json:"url"`
	Title         string                 `json:"title"`
	Type          string                 `json:"type"`
	Status        string                 `json:"status"`
	CreatedAt     string                 `json:"createdAt"`
	UpdatedAt     string                 `json:"updatedAt"`
	ContainerTags []string               `json:"containerTags"`
	Metadata      map[string]interface{} `json:"metadata"`
	MemoryEntries []interface{}          `json:"memoryEntries"`
}

// Pagination describes the page window returned by the list endpoint.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	Limit       int `json:"limit"`
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
}

package types

type CreateDocumentRequest struct {
	Content       string                 `json:"content"`
	ContainerTags []string               `json:"containerTags"`
	Metadata      map[string]interface{} `json:"metadata"`
}

type ListDocumentsRequest struct {
	Page          int      `json:"page"`
	Limit         int      `json:"limit"`
	ContainerTags []string `json:"containerTags"`
}

// UpdateDocumentRequest carries a partial document. Pointer fields
// distinguish "absent" from "set to zero value"; absent fields keep their
// stored value. Metadata is merged key by key, never replaced wholesale.
// The id, type and createdAt fields are deliberately not patchable.
type UpdateDocumentRequest struct {
	Content       *string                `json:"content"`
	URL           *string                `json:"url"`
	Title         *string                `json:"title"`
	Status        *string                `json:"status"`
	ContainerTags *[]string              `json:"containerTags"`
	Metadata      map[string]interface{} `json:"metadata"`
}

type DocumentsByIDsRequest struct {
	IDs []string `json:"ids"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

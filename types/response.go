package types

type ListDocumentsResponse struct {
	Documents  []*Document `json:"documents"`
	Pagination Pagination  `json:"pagination"`
}

type DocumentsResponse struct {
	Documents []*Document `json:"documents"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

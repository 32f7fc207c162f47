package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tieubaoca/memobox-be/service"
	"github.com/tieubaoca/memobox-be/types"
)

type UploadHandler struct {
	documents service.DocumentService
}

func NewUploadHandler(documents service.DocumentService) *UploadHandler {
	return &UploadHandler{
		documents: documents,
	}
}

// HandleUploadDocument serves POST /documents/file. The multipart form
// carries the payload under "file" plus optional "containerTags" and
// "metadata" fields holding JSON strings.
func (h *UploadHandler) HandleUploadDocument(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "File is required"})
		return
	}
	defer file.Close()

	var containerTags []string
	if raw := c.Request.FormValue("containerTags"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &containerTags); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid containerTags"})
			return
		}
	}

	var metadata map[string]interface{}
	if raw := c.Request.FormValue("metadata"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid metadata"})
			return
		}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}

	mimeType := header.Header.Get("Content-Type")
	doc, err := h.documents.CreateFromUpload(c, header.Filename, header.Size, mimeType, data, containerTags, metadata)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

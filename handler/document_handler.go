package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tieubaoca/memobox-be/repository"
	"github.com/tieubaoca/memobox-be/service"
	"github.com/tieubaoca/memobox-be/types"
)

type DocumentHandler interface {
	HandleList(c *gin.Context)
	HandleCreate(c *gin.Context)
	HandleGet(c *gin.Context)
	HandleUpdate(c *gin.Context)
	HandleDelete(c *gin.Context)
	HandleGetByIDs(c *gin.Context)
}

type documentHandler struct {
	documents service.DocumentService
	queries   service.QueryService
}

func NewDocumentHandler(documents service.DocumentService, queries service.QueryService) DocumentHandler {
	return &documentHandler{
		documents: documents,
		queries:   queries,
	}
}

// HandleList serves POST /documents/documents. An empty body means first
// page with default limit and no tag filter.
func (h *documentHandler) HandleList(c *gin.Context) {
	var req types.ListDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}

	docs, pagination, err := h.queries.Paginate(c, req.Page, req.Limit, req.ContainerTags)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, types.ListDocumentsResponse{
		Documents:  docs,
		Pagination: pagination,
	})
}

func (h *documentHandler) HandleCreate(c *gin.Context) {
	var req types.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body"})
		return
	}

	doc, err := h.documents.Create(c, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *documentHandler) HandleGet(c *gin.Context) {
	doc, err := h.documents.Get(c, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *documentHandler) HandleUpdate(c *gin.Context) {
	var req types.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body"})
		return
	}

	doc, err := h.documents.Update(c, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *documentHandler) HandleDelete(c *gin.Context) {
	if err := h.documents.Delete(c, c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, types.SuccessResponse{Success: true})
}

func (h *documentHandler) HandleGetByIDs(c *gin.Context) {
	var req types.DocumentsByIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body"})
		return
	}

	docs, err := h.queries.GetByIDs(c, req.IDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, types.DocumentsResponse{Documents: docs})
}

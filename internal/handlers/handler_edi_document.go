package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/dto"
	"github.com/SscSPs/l10n_addons/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentHandler handles HTTP requests related to fiscal documents.
type documentHandler struct {
	documentService portssvc.EDIDocumentSvcFacade
}

// RegisterDocumentRoutes registers routes related to fiscal documents and SAT synchronization.
// syncMiddleware runs only in front of the SAT sync endpoint.
func RegisterDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.EDIDocumentSvcFacade, syncMiddleware ...gin.HandlerFunc) {
	h := &documentHandler{documentService: documentService}

	documents := rg.Group("/documents")
	{
		documents.GET("/:id", h.getDocument)
		documents.POST("/:id/retry", h.retryDocument)
		documents.POST("/:id/cancel", h.cancelDocument)
		documents.POST("/sat-sync", append(syncMiddleware, h.syncSATStatus)...)
	}
	rg.GET("/orders/:id/documents", h.listOrderDocuments)
}

// getDocument godoc
// @Summary Get a fiscal document
// @Tags documents
// @Produce  json
// @Param   id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to retrieve document"
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	doc, err := h.documentService.GetDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// listOrderDocuments godoc
// @Summary List the fiscal documents of an order
// @Description Newest first, paginated with an opaque token
// @Tags documents
// @Produce  json
// @Param   id path string true "Order ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token of the next page"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list documents"
// @Security BearerAuth
// @Router /orders/{id}/documents [get]
func (h *documentHandler) listOrderDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListDocuments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.documentService.ListDocumentsByOrder(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// retryDocument godoc
// @Summary Retry a failed fiscal document
// @Description Replays the failed signature or cancellation. A new failure is recorded on the document.
// @Tags documents
// @Produce  json
// @Param   id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 422 {object} map[string]string "Document is not in a failed state"
// @Failure 500 {object} map[string]string "Failed to retry document"
// @Security BearerAuth
// @Router /documents/{id}/retry [post]
func (h *documentHandler) retryDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	doc, err := h.documentService.ActionRetry(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retry document")
		return
	}
	logger.Info("Document retried", slog.String("document_id", doc.DocumentID), slog.String("state", string(doc.State)))
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// cancelDocument godoc
// @Summary Cancel a sent fiscal document
// @Description Requests the cancellation of a signed CFDI. Reason 01 requires the substituting uuid.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   id path string true "Document ID"
// @Param   cancel body dto.CancelDocumentRequest true "Cancellation reason"
// @Success 200 {object} dto.DocumentResponse "The cancellation document"
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 422 {object} map[string]string "Document cannot be cancelled"
// @Failure 500 {object} map[string]string "Failed to cancel document"
// @Security BearerAuth
// @Router /documents/{id}/cancel [post]
func (h *documentHandler) cancelDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CancelDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CancelDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	doc, err := h.documentService.ActionCancel(c.Request.Context(), c.Param("id"), req.Reason, req.SubstitutionUUID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to cancel document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// syncSATStatus godoc
// @Summary Synchronize SAT states
// @Description Queries the SAT state of sent and cancelled documents. An empty list selects every pending document.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   sync body dto.SATSyncRequest false "Documents to check"
// @Success 200 {object} dto.SATSyncResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Limit exceeded"
// @Failure 500 {object} map[string]string "Failed to synchronize SAT states"
// @Security BearerAuth
// @Router /documents/sat-sync [post]
func (h *documentHandler) syncSATStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SATSyncRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for SATSync", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	resp, err := h.documentService.FetchAndUpdateSATStatus(c.Request.Context(), req.DocumentIDs)
	if err != nil {
		respondError(c, logger, err, "Failed to synchronize SAT states")
		return
	}
	logger.Info("SAT states synchronized", slog.Int("checked", resp.Checked), slog.Int("updated", resp.Updated))
	c.JSON(http.StatusOK, resp)
}

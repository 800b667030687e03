package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/dto"
	"github.com/SscSPs/l10n_addons/internal/middleware"
	"github.com/gin-gonic/gin"
)

// globalInvoiceHandler serves the global invoice wizard.
type globalInvoiceHandler struct {
	wizard portssvc.GlobalInvoiceWizardSvc
}

// RegisterGlobalInvoiceRoutes registers the global invoice wizard routes.
func RegisterGlobalInvoiceRoutes(rg *gin.RouterGroup, wizard portssvc.GlobalInvoiceWizardSvc) {
	h := &globalInvoiceHandler{wizard: wizard}

	g := rg.Group("/global-invoices")
	{
		g.POST("/wizard", h.defaultGet)
		g.POST("", h.create)
	}
}

// defaultGet godoc
// @Summary Open the global invoice wizard
// @Description Checks that the orders can be globally invoiced and returns the wizard defaults
// @Tags global-invoices
// @Accept  json
// @Produce  json
// @Param   wizard body dto.GlobalInvoiceWizardRequest true "Selected orders"
// @Success 200 {object} dto.GlobalInvoiceWizardResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Orders not eligible"
// @Failure 500 {object} map[string]string "Failed to open wizard"
// @Security BearerAuth
// @Router /global-invoices/wizard [post]
func (h *globalInvoiceHandler) defaultGet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GlobalInvoiceWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GlobalInvoiceWizard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	wizard, err := h.wizard.DefaultGet(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to open wizard")
		return
	}
	c.JSON(http.StatusOK, dto.GlobalInvoiceWizardResponse{OrderIDs: wizard.OrderIDs, Periodicity: wizard.Periodicity})
}

// create godoc
// @Summary Create a global invoice
// @Description Sends, or retries, the global CFDI of the selected orders. A failed signature is recorded on the returned document.
// @Tags global-invoices
// @Accept  json
// @Produce  json
// @Param   wizard body dto.GlobalInvoiceWizardRequest true "Selected orders and periodicity"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 422 {object} map[string]string "Orders not eligible"
// @Failure 500 {object} map[string]string "Failed to create global invoice"
// @Security BearerAuth
// @Router /global-invoices [post]
func (h *globalInvoiceHandler) create(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GlobalInvoiceWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGlobalInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	wizard, err := h.wizard.DefaultGet(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create global invoice")
		return
	}

	doc, err := h.wizard.ActionCreateGlobalInvoice(c.Request.Context(), *wizard, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create global invoice")
		return
	}
	logger.Info("Global invoice processed", slog.String("document_id", doc.DocumentID), slog.String("state", string(doc.State)))
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

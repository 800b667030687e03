package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/dto"
	"github.com/SscSPs/l10n_addons/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankHandler handles HTTP requests related to bank journals and bank accounts.
type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

// RegisterBankRoutes registers routes related to bank journals and partner bank accounts.
func RegisterBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := &bankHandler{bankService: bankService}

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("/:id", h.getJournal)
		journals.PATCH("/:id/aba", h.updateJournalABA)
	}

	banks := rg.Group("/partner-banks")
	{
		banks.POST("", h.createPartnerBank)
		banks.GET("/:id", h.getPartnerBank)
	}
}

// createJournal godoc
// @Summary Create a bank journal
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   journal body dto.CreateJournalRequest true "Journal details"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to create journal"
// @Security BearerAuth
// @Router /journals [post]
func (h *bankHandler) createJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	journal, err := h.bankService.CreateJournal(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create journal")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

// getJournal godoc
// @Summary Get a bank journal by ID
// @Tags journals
// @Produce  json
// @Param   id path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve journal"
// @Security BearerAuth
// @Router /journals/{id} [get]
func (h *bankHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	journal, err := h.bankService.GetJournalByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// updateJournalABA godoc
// @Summary Configure the ABA data of a bank journal
// @Description Sets the bank account and the ABA user fields used to generate ABA payments
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   id path string true "Journal ID"
// @Param   aba body dto.UpdateJournalABARequest true "ABA configuration"
// @Success 200 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal or bank account not found"
// @Failure 500 {object} map[string]string "Failed to update journal"
// @Security BearerAuth
// @Router /journals/{id}/aba [patch]
func (h *bankHandler) updateJournalABA(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateJournalABARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateJournalABA", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	journal, err := h.bankService.UpdateJournalABA(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// createPartnerBank godoc
// @Summary Register a bank account
// @Tags partner-banks
// @Accept  json
// @Produce  json
// @Param   bank body dto.CreatePartnerBankRequest true "Bank account details"
// @Success 201 {object} dto.PartnerBankResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create bank account"
// @Security BearerAuth
// @Router /partner-banks [post]
func (h *bankHandler) createPartnerBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartnerBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePartnerBank", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	bank, err := h.bankService.CreatePartnerBank(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create bank account")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPartnerBankResponse(bank))
}

// getPartnerBank godoc
// @Summary Get a bank account by ID
// @Tags partner-banks
// @Produce  json
// @Param   id path string true "Bank account ID"
// @Success 200 {object} dto.PartnerBankResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve bank account"
// @Security BearerAuth
// @Router /partner-banks/{id} [get]
func (h *bankHandler) getPartnerBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bank, err := h.bankService.GetPartnerBankByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve bank account")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartnerBankResponse(bank))
}

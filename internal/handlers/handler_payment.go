package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/dto"
	"github.com/SscSPs/l10n_addons/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// RegisterPaymentRoutes registers routes related to payments.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := &paymentHandler{paymentService: paymentService}

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("/:id", h.getPayment)
		payments.PATCH("/:id", h.updatePayment)
		payments.POST("/:id/confirm", h.confirmPayment)
	}
}

// createPayment godoc
// @Summary Create a draft payment
// @Description Creates a draft payment. ABA credit transfers are checked against the journal and destination account.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Journal or bank account not found"
// @Failure 409 {object} handlers.RedirectResponse "Bank configuration required"
// @Failure 500 {object} map[string]string "Failed to create payment"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create payment", slog.String("payment_method", req.PaymentMethodCode), slog.String("journal_id", req.JournalID))
	payment, err := h.paymentService.CreatePayment(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create payment")
		return
	}

	logger.Info("Payment created successfully", slog.String("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// getPayment godoc
// @Summary Get a payment by ID
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve payment"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// updatePayment godoc
// @Summary Update a draft payment
// @Description Changes the given fields. Only the checks triggered by the changed fields run.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   id path string true "Payment ID"
// @Param   payment body dto.UpdatePaymentRequest true "Fields to change"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} handlers.RedirectResponse "Bank configuration required"
// @Failure 422 {object} map[string]string "Payment is not a draft"
// @Failure 500 {object} map[string]string "Failed to update payment"
// @Security BearerAuth
// @Router /payments/{id} [patch]
func (h *paymentHandler) updatePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// confirmPayment godoc
// @Summary Confirm a draft payment
// @Tags payments
// @Produce  json
// @Param   id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} handlers.RedirectResponse "Bank configuration required"
// @Failure 422 {object} map[string]string "Payment is not a draft"
// @Failure 500 {object} map[string]string "Failed to confirm payment"
// @Security BearerAuth
// @Router /payments/{id}/confirm [post]
func (h *paymentHandler) confirmPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	payment, err := h.paymentService.ConfirmPayment(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to confirm payment")
		return
	}
	logger.Info("Payment confirmed", slog.String("payment_id", payment.PaymentID))
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

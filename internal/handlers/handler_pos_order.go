package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/dto"
	"github.com/SscSPs/l10n_addons/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles HTTP requests related to point-of-sale orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

// RegisterOrderRoutes registers routes related to orders and refunds.
func RegisterOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := &orderHandler{orderService: orderService}

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("/:id", h.getOrder)
		orders.POST("/:id/invoice", h.invoiceOrder)
		orders.POST("/:id/refund", h.refundOrder)
	}
	rg.POST("/refunds", h.createRefund)
}

// createOrder godoc
// @Summary Record a paid point-of-sale order
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to create order"
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create order")
		return
	}
	logger.Info("Order created successfully", slog.String("order_id", order.OrderID))
	h.respondOrder(c, logger, order.OrderID, http.StatusCreated)
}

// getOrder godoc
// @Summary Get an order and its fiscal status
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to retrieve order"
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	h.respondOrder(c, logger, c.Param("id"), http.StatusOK)
}

// invoiceOrder godoc
// @Summary Invoice an order individually
// @Description Signs an individual CFDI for the order. A failed signature is recorded on the returned document.
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 422 {object} map[string]string "Order already invoiced"
// @Failure 500 {object} map[string]string "Failed to invoice order"
// @Security BearerAuth
// @Router /orders/{id}/invoice [post]
func (h *orderHandler) invoiceOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	doc, err := h.orderService.InvoiceOrder(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to invoice order")
		return
	}
	logger.Info("Order invoiced", slog.String("order_id", c.Param("id")), slog.String("document_id", doc.DocumentID), slog.String("state", string(doc.State)))
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// refundOrder godoc
// @Summary Refund an order
// @Description Refunds every remaining quantity of the order as a new refund order
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} map[string]string "Nothing left to refund"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to refund order"
// @Security BearerAuth
// @Router /orders/{id}/refund [post]
func (h *orderHandler) refundOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	refund, err := h.orderService.RefundOrder(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to refund order")
		return
	}
	h.respondOrder(c, logger, refund.OrderID, http.StatusCreated)
}

// createRefund godoc
// @Summary Refund lines of one or more orders
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   refund body dto.CreateRefundRequest true "Lines to refund"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order or line not found"
// @Failure 500 {object} map[string]string "Failed to create refund"
// @Security BearerAuth
// @Router /refunds [post]
func (h *orderHandler) createRefund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRefund", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := currentUser(c, logger)
	if !ok {
		return
	}

	refund, err := h.orderService.CreateRefund(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create refund")
		return
	}
	h.respondOrder(c, logger, refund.OrderID, http.StatusCreated)
}

// respondOrder writes the order with its current fiscal status.
func (h *orderHandler) respondOrder(c *gin.Context, logger *slog.Logger, orderID string, status int) {
	order, fiscal, err := h.orderService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve order")
		return
	}
	c.JSON(status, dto.ToOrderResponse(order, *fiscal))
}

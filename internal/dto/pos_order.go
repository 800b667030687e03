package dto

import (
	"time"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderLineRequest is one product line of a new order.
type OrderLineRequest struct {
	ProductRef  string          `json:"productRef" binding:"required"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	TaxRate     decimal.Decimal `json:"taxRate"`  // e.g. 0.16
	Discount    decimal.Decimal `json:"discount"` // Percentage, e.g. 20 for 20%
}

// CreateOrderRequest defines the data needed to record a point-of-sale order.
type CreateOrderRequest struct {
	CompanyID  string             `json:"companyID" binding:"required"`
	Name       string             `json:"name"`
	UID        string             `json:"uid"`
	PartnerID  string             `json:"partnerID"`
	PartnerVAT string             `json:"partnerVAT"`
	Lines      []OrderLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// RefundLineRequest refunds a quantity of an existing order line.
type RefundLineRequest struct {
	OrderID     string          `json:"orderID" binding:"required"`
	OrderLineID string          `json:"orderLineID" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"` // Positive quantity to refund
}

// CreateRefundRequest defines a refund order built from lines of one or more orders.
type CreateRefundRequest struct {
	Lines []RefundLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// OrderLineResponse defines the data returned for an order line.
type OrderLineResponse struct {
	LineID              string          `json:"lineID"`
	ProductRef          string          `json:"productRef"`
	Description         string          `json:"description"`
	Quantity            decimal.Decimal `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unitPrice"`
	PriceSubtotal       decimal.Decimal `json:"priceSubtotal"`
	PriceSubtotalIncl   decimal.Decimal `json:"priceSubtotalIncl"`
	RefundedOrderLineID string          `json:"refundedOrderLineID,omitempty"`
	RefundedQuantity    decimal.Decimal `json:"refundedQuantity"`
}

// OrderResponse defines the data returned for an order, including its fiscal status.
type OrderResponse struct {
	OrderID          string              `json:"orderID"`
	CompanyID        string              `json:"companyID"`
	Name             string              `json:"name"`
	UID              string              `json:"uid"`
	PartnerID        string              `json:"partnerID,omitempty"`
	AmountTotal      decimal.Decimal     `json:"amountTotal"`
	InvoiceID        string              `json:"invoiceID,omitempty"`
	RefundedOrderIDs []string            `json:"refundedOrderIDs"`
	Lines            []OrderLineResponse `json:"lines"`
	CFDIState        string              `json:"cfdiState"`
	CFDIUUID         string              `json:"cfdiUUID"`
	IsCFDINeeded     bool                `json:"isCFDINeeded"`
	UpdateSATNeeded  bool                `json:"updateSATNeeded"`
	CreatedAt        time.Time           `json:"createdAt"`
}

// ToOrderResponse converts a domain.Order and its fiscal status to OrderResponse DTO
func ToOrderResponse(o *domain.Order, status domain.OrderFiscalStatus) OrderResponse {
	lines := make([]OrderLineResponse, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = OrderLineResponse{
			LineID:              l.LineID,
			ProductRef:          l.ProductRef,
			Description:         l.Description,
			Quantity:            l.Quantity,
			UnitPrice:           l.UnitPrice,
			PriceSubtotal:       l.PriceSubtotal,
			PriceSubtotalIncl:   l.PriceSubtotalIncl,
			RefundedOrderLineID: l.RefundedOrderLineID,
			RefundedQuantity:    l.RefundedQuantity,
		}
	}
	refunded := o.RefundedOrderIDs()
	if refunded == nil {
		refunded = []string{}
	}
	return OrderResponse{
		OrderID:          o.OrderID,
		CompanyID:        o.CompanyID,
		Name:             o.Name,
		UID:              o.UID,
		PartnerID:        o.PartnerID,
		AmountTotal:      o.AmountTotal,
		InvoiceID:        o.InvoiceID,
		RefundedOrderIDs: refunded,
		Lines:            lines,
		CFDIState:        string(status.CFDIState),
		CFDIUUID:         status.CFDIUUID,
		IsCFDINeeded:     status.IsCFDINeeded,
		UpdateSATNeeded:  status.UpdateSATNeeded,
		CreatedAt:        o.CreatedAt,
	}
}

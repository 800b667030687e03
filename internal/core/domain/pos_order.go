package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// CFDIState is the fiscal state of an order, derived from its documents.
type CFDIState string

const (
	CFDIStateNone       CFDIState = ""
	CFDIStateSent       CFDIState = "sent"
	CFDIStateGlobalSent CFDIState = "global_sent"
	CFDIStateCancel     CFDIState = "cancel"
)

// OrderLine is a single product line of a point-of-sale order.
type OrderLine struct {
	LineID              string          `json:"lineID"`
	OrderID             string          `json:"orderID"`
	ProductRef          string          `json:"productRef"`
	Description         string          `json:"description"`
	Quantity            decimal.Decimal `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unitPrice"`
	PriceSubtotal       decimal.Decimal `json:"priceSubtotal"`     // Excluding taxes
	PriceSubtotalIncl   decimal.Decimal `json:"priceSubtotalIncl"` // Including taxes
	RefundedOrderLineID string          `json:"refundedOrderLineID,omitempty"`
	RefundedOrderID     string          `json:"refundedOrderID,omitempty"`
	RefundedQuantity    decimal.Decimal `json:"refundedQuantity"` // Quantity already refunded by refund orders
}

// TaxAmount is the tax part of the line.
func (l OrderLine) TaxAmount() decimal.Decimal {
	return l.PriceSubtotalIncl.Sub(l.PriceSubtotal)
}

// Order is a point-of-sale order. Its fiscal state is derived from the documents linked to it.
type Order struct {
	OrderID     string          `json:"orderID"`
	CompanyID   string          `json:"companyID"`
	Name        string          `json:"name"`
	UID         string          `json:"uid"`
	PartnerID   string          `json:"partnerID,omitempty"`
	PartnerVAT  string          `json:"partnerVAT,omitempty"`
	Lines       []OrderLine     `json:"lines"`
	AmountTotal decimal.Decimal `json:"amountTotal"`
	InvoiceID   string          `json:"invoiceID,omitempty"` // Set once the order is individually invoiced
	OrderDate   time.Time       `json:"orderDate"`
	AuditFields
}

// IsInvoiced reports whether the order was converted to an individual invoice.
func (o *Order) IsInvoiced() bool {
	return o.InvoiceID != ""
}

// RefundedOrderIDs returns the parent orders refunded by this order's lines.
func (o *Order) RefundedOrderIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, l := range o.Lines {
		if l.RefundedOrderID != "" && !seen[l.RefundedOrderID] {
			seen[l.RefundedOrderID] = true
			ids = append(ids, l.RefundedOrderID)
		}
	}
	sort.Strings(ids)
	return ids
}

// IsRefund reports whether the order refunds lines of other orders.
func (o *Order) IsRefund() bool {
	for _, l := range o.Lines {
		if l.RefundedOrderLineID != "" {
			return true
		}
	}
	return false
}

// IsFullyRefunded reports whether every positive line was refunded in full.
func (o *Order) IsFullyRefunded() bool {
	hasPositive := false
	for _, l := range o.Lines {
		if !l.Quantity.IsPositive() {
			continue
		}
		hasPositive = true
		if l.RefundedQuantity.LessThan(l.Quantity) {
			return false
		}
	}
	return hasPositive
}

// Line returns the line with the given id.
func (o *Order) Line(lineID string) (*OrderLine, bool) {
	for i := range o.Lines {
		if o.Lines[i].LineID == lineID {
			return &o.Lines[i], true
		}
	}
	return nil, false
}

// ComputeAmountTotal sums the tax-included line totals.
func (o *Order) ComputeAmountTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.PriceSubtotalIncl)
	}
	return total
}

// OrderFiscalStatus is the fiscal view of an order computed from its documents.
type OrderFiscalStatus struct {
	CFDIState       CFDIState `json:"cfdiState"`
	CFDIUUID        string    `json:"cfdiUUID"`
	IsCFDINeeded    bool      `json:"isCFDINeeded"`
	UpdateSATNeeded bool      `json:"updateSATNeeded"`
}

// LiveDocument returns the newest successfully sent document of lane that no successful
// cancellation targets, or nil.
func LiveDocument(docs []Document, lane Lane) *Document {
	cancelled := make(map[string]bool)
	for _, d := range docs {
		if d.State.Step() == StepCancel && d.AttachmentUUID != "" {
			cancelled[d.AttachmentUUID] = true
		}
	}
	sorted := append([]Document(nil), docs...)
	SortDocuments(sorted)
	for i := range sorted {
		if sorted[i].State == StateFor(lane, StepSent) && !cancelled[sorted[i].AttachmentUUID] {
			return &sorted[i]
		}
	}
	return nil
}

// DeriveFiscalStatus computes the fiscal status of an order from the documents linked to it.
// A live global invoice takes precedence over a live individual invoice.
func DeriveFiscalStatus(order *Order, company *Company, docs []Document) OrderFiscalStatus {
	var status OrderFiscalStatus
	if d := LiveDocument(docs, LaneGlobalInvoice); d != nil {
		status.CFDIState, status.CFDIUUID = CFDIStateGlobalSent, d.AttachmentUUID
	} else if d := LiveDocument(docs, LaneInvoice); d != nil {
		status.CFDIState, status.CFDIUUID = CFDIStateSent, d.AttachmentUUID
	} else {
		sorted := append([]Document(nil), docs...)
		SortDocuments(sorted)
		for i := range sorted {
			if sorted[i].State.Step() == StepCancel {
				status.CFDIState, status.CFDIUUID = CFDIStateCancel, sorted[i].AttachmentUUID
				break
			}
		}
	}

	for i := range docs {
		if docs[i].NeedsSATUpdate() {
			status.UpdateSATNeeded = true
			break
		}
	}

	status.IsCFDINeeded = company != nil && company.CountryCode == CountryMexico &&
		!order.IsInvoiced() &&
		status.CFDIState != CFDIStateGlobalSent &&
		!order.IsFullyRefunded()
	return status
}

package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func mxCompany() *domain.Company {
	return &domain.Company{CompanyID: "c1", CountryCode: domain.CountryMexico}
}

func TestDeriveFiscalStatus(t *testing.T) {
	order := &domain.Order{OrderID: "o1", Lines: []domain.OrderLine{{LineID: "l1", Quantity: decimal.NewFromInt(1)}}}

	tests := []struct {
		name      string
		docs      []domain.Document
		wantState domain.CFDIState
		wantUUID  string
		wantSAT   bool
	}{
		{
			name:      "no documents",
			wantState: domain.CFDIStateNone,
		},
		{
			name:      "failed global invoice only",
			docs:      []domain.Document{{State: domain.GlobalInvoiceSentFailed, Sequence: 1}},
			wantState: domain.CFDIStateNone,
		},
		{
			name: "global invoice wins over later individual invoice",
			docs: []domain.Document{
				{State: domain.GlobalInvoiceSent, AttachmentUUID: "g", SATState: domain.SATValid, Sequence: 1},
				{State: domain.InvoiceSent, AttachmentUUID: "i", SATState: domain.SATNotDefined, Sequence: 2},
			},
			wantState: domain.CFDIStateGlobalSent,
			wantUUID:  "g",
			wantSAT:   true,
		},
		{
			name: "cancelled individual invoice",
			docs: []domain.Document{
				{State: domain.InvoiceSent, AttachmentUUID: "i", SATState: domain.SATValid, Sequence: 1},
				{State: domain.InvoiceCancel, AttachmentUUID: "i", SATState: domain.SATCancelled, Sequence: 2},
			},
			wantState: domain.CFDIStateCancel,
			wantUUID:  "i",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := domain.DeriveFiscalStatus(order, mxCompany(), tt.docs)
			assert.Equal(t, tt.wantState, status.CFDIState)
			assert.Equal(t, tt.wantUUID, status.CFDIUUID)
			assert.Equal(t, tt.wantSAT, status.UpdateSATNeeded)
		})
	}
}

func TestDeriveFiscalStatus_IsCFDINeeded(t *testing.T) {
	order := &domain.Order{OrderID: "o1", Lines: []domain.OrderLine{{LineID: "l1", Quantity: decimal.NewFromInt(2)}}}
	assert.True(t, domain.DeriveFiscalStatus(order, mxCompany(), nil).IsCFDINeeded)

	foreign := &domain.Company{CompanyID: "c2", CountryCode: "AU"}
	assert.False(t, domain.DeriveFiscalStatus(order, foreign, nil).IsCFDINeeded)

	invoiced := *order
	invoiced.InvoiceID = "inv"
	assert.False(t, domain.DeriveFiscalStatus(&invoiced, mxCompany(), nil).IsCFDINeeded)

	refunded := *order
	refunded.Lines = []domain.OrderLine{{LineID: "l1", Quantity: decimal.NewFromInt(2), RefundedQuantity: decimal.NewFromInt(2)}}
	assert.False(t, domain.DeriveFiscalStatus(&refunded, mxCompany(), nil).IsCFDINeeded)

	global := []domain.Document{{State: domain.GlobalInvoiceSent, AttachmentUUID: "g"}}
	assert.False(t, domain.DeriveFiscalStatus(order, mxCompany(), global).IsCFDINeeded)
}

func TestOrder_Refunds(t *testing.T) {
	refund := domain.Order{Lines: []domain.OrderLine{
		{LineID: "r1", Quantity: decimal.NewFromInt(-2), RefundedOrderLineID: "l1", RefundedOrderID: "o2"},
		{LineID: "r2", Quantity: decimal.NewFromInt(-3), RefundedOrderLineID: "l9", RefundedOrderID: "o1"},
		{LineID: "r3", Quantity: decimal.NewFromInt(-1), RefundedOrderLineID: "l2", RefundedOrderID: "o2"},
	}}
	assert.True(t, refund.IsRefund())
	assert.Equal(t, []string{"o1", "o2"}, refund.RefundedOrderIDs())
	assert.False(t, refund.IsFullyRefunded())

	plain := domain.Order{Lines: []domain.OrderLine{{LineID: "l1", Quantity: decimal.NewFromInt(1)}}}
	assert.False(t, plain.IsRefund())
	assert.Empty(t, plain.RefundedOrderIDs())
}

func TestOrderLine_TaxAmount(t *testing.T) {
	line := domain.OrderLine{
		PriceSubtotal:     decimal.RequireFromString("1000.00"),
		PriceSubtotalIncl: decimal.RequireFromString("1160.00"),
	}
	assert.True(t, decimal.RequireFromString("160").Equal(line.TaxAmount()))
}

func TestLiveDocument(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	docs := []domain.Document{
		{DocumentID: "inv", State: domain.InvoiceSent, AttachmentUUID: "u1", AuditFields: domain.AuditFields{CreatedAt: t0}},
		{DocumentID: "g1", State: domain.GlobalInvoiceSent, AttachmentUUID: "u2", AuditFields: domain.AuditFields{CreatedAt: t0}},
		{DocumentID: "g1c", State: domain.GlobalInvoiceCancel, AttachmentUUID: "u2", AuditFields: domain.AuditFields{CreatedAt: t0.Add(time.Hour)}},
		{DocumentID: "g2f", State: domain.GlobalInvoiceSentFailed, AuditFields: domain.AuditFields{CreatedAt: t0.Add(2 * time.Hour)}},
	}

	assert.Nil(t, domain.LiveDocument(docs, domain.LaneGlobalInvoice), "cancelled global invoice is not live")
	live := domain.LiveDocument(docs, domain.LaneInvoice)
	if assert.NotNil(t, live) {
		assert.Equal(t, "inv", live.DocumentID)
	}
}

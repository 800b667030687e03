package mapping

import (
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/SscSPs/l10n_addons/internal/models"
)

// ToModelOrder converts a domain Order to a model Order and its lines
func ToModelOrder(d domain.Order) (models.Order, []models.OrderLine) {
	order := models.Order{
		OrderID:     d.OrderID,
		CompanyID:   d.CompanyID,
		Name:        d.Name,
		UID:         d.UID,
		PartnerID:   d.PartnerID,
		PartnerVAT:  d.PartnerVAT,
		AmountTotal: d.AmountTotal,
		InvoiceID:   NullableString(d.InvoiceID),
		OrderDate:   d.OrderDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	lines := make([]models.OrderLine, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = models.OrderLine{
			LineID:              l.LineID,
			OrderID:             d.OrderID,
			LineNo:              i + 1,
			ProductRef:          l.ProductRef,
			Description:         l.Description,
			Quantity:            l.Quantity,
			UnitPrice:           l.UnitPrice,
			PriceSubtotal:       l.PriceSubtotal,
			PriceSubtotalIncl:   l.PriceSubtotalIncl,
			RefundedOrderLineID: NullableString(l.RefundedOrderLineID),
			RefundedOrderID:     NullableString(l.RefundedOrderID),
			RefundedQuantity:    l.RefundedQuantity,
		}
	}
	return order, lines
}

// ToDomainOrder converts a model Order and its lines, sorted by line number, to a domain Order
func ToDomainOrder(m models.Order, lines []models.OrderLine) domain.Order {
	d := domain.Order{
		OrderID:     m.OrderID,
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		UID:         m.UID,
		PartnerID:   m.PartnerID,
		PartnerVAT:  m.PartnerVAT,
		AmountTotal: m.AmountTotal,
		InvoiceID:   FromNullableString(m.InvoiceID),
		OrderDate:   m.OrderDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	for _, l := range lines {
		d.Lines = append(d.Lines, domain.OrderLine{
			LineID:              l.LineID,
			OrderID:             l.OrderID,
			ProductRef:          l.ProductRef,
			Description:         l.Description,
			Quantity:            l.Quantity,
			UnitPrice:           l.UnitPrice,
			PriceSubtotal:       l.PriceSubtotal,
			PriceSubtotalIncl:   l.PriceSubtotalIncl,
			RefundedOrderLineID: FromNullableString(l.RefundedOrderLineID),
			RefundedOrderID:     FromNullableString(l.RefundedOrderID),
			RefundedQuantity:    l.RefundedQuantity,
		})
	}
	return d
}

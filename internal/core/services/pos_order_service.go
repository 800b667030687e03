package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/l10n_addons/internal/apperrors"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	portsrepo "github.com/SscSPs/l10n_addons/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/dto"
)

var hundred = decimal.NewFromInt(100)

// posOrderService records orders, refunds and individual invoices.
type posOrderService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	companyRepo  portsrepo.CompanyRepositoryFacade
	orderRepo    portsrepo.OrderRepositoryFacade
	documentRepo portsrepo.DocumentReader
	invoicer     portssvc.EDIInvoicerSvc
}

// NewPOSOrderService creates a new OrderService.
func NewPOSOrderService(
	txManager portsrepo.TransactionManager,
	companyRepo portsrepo.CompanyRepositoryFacade,
	orderRepo portsrepo.OrderRepositoryFacade,
	documentRepo portsrepo.DocumentReader,
	invoicer portssvc.EDIInvoicerSvc,
) portssvc.OrderSvcFacade {
	return &posOrderService{
		txManager:    txManager,
		companyRepo:  companyRepo,
		orderRepo:    orderRepo,
		documentRepo: documentRepo,
		invoicer:     invoicer,
	}
}

var _ portssvc.OrderSvcFacade = (*posOrderService)(nil)

// CreateOrder records a paid order and computes its line totals.
func (s *posOrderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, userID string) (*domain.Order, error) {
	if len(req.Lines) == 0 {
		return nil, apperrors.Validationf("an order needs at least one line")
	}
	if _, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Validationf("company %s not found", req.CompanyID)
		}
		return nil, err
	}

	now := s.Now()
	order := domain.Order{
		OrderID:     uuid.NewString(),
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		UID:         req.UID,
		PartnerID:   req.PartnerID,
		PartnerVAT:  req.PartnerVAT,
		OrderDate:   now,
		AuditFields: domain.NewAuditFields(userID, now),
	}
	if order.UID == "" {
		order.UID = uuid.NewString()
	}
	if order.Name == "" {
		order.Name = "Order " + order.UID[:8]
	}

	for i, l := range req.Lines {
		if !l.Quantity.IsPositive() {
			return nil, apperrors.Validationf("line %d: quantity must be positive, use a refund to return products", i+1)
		}
		if l.UnitPrice.IsNegative() || l.TaxRate.IsNegative() || l.Discount.IsNegative() || l.Discount.GreaterThan(hundred) {
			return nil, apperrors.Validationf("line %d: invalid price, tax rate or discount", i+1)
		}
		subtotal := l.Quantity.Mul(l.UnitPrice).Mul(hundred.Sub(l.Discount)).Div(hundred).Round(2)
		order.Lines = append(order.Lines, domain.OrderLine{
			LineID:            uuid.NewString(),
			OrderID:           order.OrderID,
			ProductRef:        l.ProductRef,
			Description:       l.Description,
			Quantity:          l.Quantity,
			UnitPrice:         l.UnitPrice,
			PriceSubtotal:     subtotal,
			PriceSubtotalIncl: subtotal.Mul(decimal.NewFromInt(1).Add(l.TaxRate)).Round(2),
			RefundedQuantity:  decimal.Zero,
		})
	}
	order.AmountTotal = order.ComputeAmountTotal()

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Order created", slog.String("order_id", order.OrderID), slog.String("amount_total", order.AmountTotal.String()))
	return &order, nil
}

// GetOrder retrieves an order and derives its fiscal status from its documents.
func (s *posOrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, *domain.OrderFiscalStatus, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	company, err := s.companyRepo.FindCompanyByID(ctx, order.CompanyID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, err
	}
	docs, err := s.documentRepo.FindDocumentsByOrderIDs(ctx, []string{orderID})
	if err != nil {
		return nil, nil, err
	}
	status := domain.DeriveFiscalStatus(order, company, docs)
	return order, &status, nil
}

// InvoiceOrder converts an order to an individual invoice and signs it. A globally invoiced
// order is invoiced as a substitution of its global invoice, which stays untouched.
func (s *posOrderService) InvoiceOrder(ctx context.Context, orderID string, userID string) (*domain.Document, error) {
	var doc *domain.Document
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		orders, err := s.orderRepo.FindOrdersByIDsForUpdate(ctx, []string{orderID})
		if err != nil {
			return err
		}
		order := &orders[0]
		if order.IsInvoiced() {
			return apperrors.NotEligiblef("order %s is already invoiced", order.Name)
		}
		company, err := s.companyRepo.FindCompanyByID(ctx, order.CompanyID)
		if err != nil {
			return err
		}
		if company.CountryCode != domain.CountryMexico {
			return apperrors.NotEligiblef("company %s does not issue CFDI", company.Name)
		}

		docs, err := s.documentRepo.FindDocumentsByOrderIDs(ctx, []string{orderID})
		if err != nil {
			return err
		}
		for _, d := range docs {
			if d.State.Lane() == domain.LaneInvoice {
				return apperrors.NotEligiblef("order %s already has an invoice document", order.Name)
			}
		}

		origin := ""
		if g := domain.LiveDocument(docs, domain.LaneGlobalInvoice); g != nil {
			origin = domain.BuildOrigin(domain.RelationSubstitution, g.AttachmentUUID)
		} else if order.IsRefund() {
			if origin, err = s.refundOrigin(ctx, order.RefundedOrderIDs()); err != nil {
				return err
			}
		}

		order.InvoiceID = uuid.NewString()
		order.Touch(userID, s.Now())
		if err := s.orderRepo.UpdateOrder(ctx, *order); err != nil {
			return err
		}
		doc, err = s.invoicer.SignInvoice(ctx, company, []domain.Order{*order}, origin, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Order invoiced", slog.String("order_id", orderID), slog.String("document_id", doc.DocumentID), slog.String("state", string(doc.State)))
	return doc, nil
}

// RefundOrder refunds every quantity of the order that was not refunded yet.
func (s *posOrderService) RefundOrder(ctx context.Context, orderID string, userID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	var req dto.CreateRefundRequest
	for _, l := range order.Lines {
		remaining := l.Quantity.Sub(l.RefundedQuantity)
		if l.Quantity.IsPositive() && remaining.IsPositive() {
			req.Lines = append(req.Lines, dto.RefundLineRequest{OrderID: orderID, OrderLineID: l.LineID, Quantity: remaining})
		}
	}
	if len(req.Lines) == 0 {
		return nil, apperrors.NotEligiblef("order %s has nothing left to refund", order.Name)
	}
	return s.CreateRefund(ctx, req, userID)
}

// CreateRefund creates one refund order from lines of one or more orders. When a refunded
// order was already invoiced or globally sent, the refund is invoiced immediately as a
// credit note of it.
func (s *posOrderService) CreateRefund(ctx context.Context, req dto.CreateRefundRequest, userID string) (*domain.Order, error) {
	if len(req.Lines) == 0 {
		return nil, apperrors.Validationf("a refund needs at least one line")
	}

	var refund domain.Order
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		parentIDs := make([]string, 0, len(req.Lines))
		for _, l := range req.Lines {
			parentIDs = append(parentIDs, l.OrderID)
		}
		parents, err := s.orderRepo.FindOrdersByIDsForUpdate(ctx, uniqueStrings(parentIDs))
		if err != nil {
			return err
		}
		byID := make(map[string]*domain.Order, len(parents))
		for i := range parents {
			if parents[i].CompanyID != parents[0].CompanyID {
				return apperrors.Validationf("You can only refund orders sharing the same company.")
			}
			byID[parents[i].OrderID] = &parents[i]
		}

		now := s.Now()
		first := parents[0]
		refund = domain.Order{
			OrderID:     uuid.NewString(),
			CompanyID:   first.CompanyID,
			UID:         uuid.NewString(),
			PartnerID:   first.PartnerID,
			PartnerVAT:  first.PartnerVAT,
			OrderDate:   now,
			AuditFields: domain.NewAuditFields(userID, now),
		}
		refund.Name = first.Name + " REFUND"
		if len(parents) > 1 {
			refund.Name = "Refund " + refund.UID[:8]
		}

		for _, rl := range req.Lines {
			parent := byID[rl.OrderID]
			line, ok := parent.Line(rl.OrderLineID)
			if !ok {
				return apperrors.Validationf("line %s does not belong to order %s", rl.OrderLineID, rl.OrderID)
			}
			if !line.Quantity.IsPositive() {
				return apperrors.Validationf("line %s is itself a refund", line.LineID)
			}
			if !rl.Quantity.IsPositive() {
				return apperrors.Validationf("refunded quantity of line %s must be positive", line.LineID)
			}
			remaining := line.Quantity.Sub(line.RefundedQuantity)
			if rl.Quantity.GreaterThan(remaining) {
				return apperrors.Validationf("cannot refund %s of line %s, only %s left", rl.Quantity, line.LineID, remaining)
			}

			ratio := rl.Quantity.Div(line.Quantity)
			refund.Lines = append(refund.Lines, domain.OrderLine{
				LineID:              uuid.NewString(),
				OrderID:             refund.OrderID,
				ProductRef:          line.ProductRef,
				Description:         line.Description,
				Quantity:            rl.Quantity.Neg(),
				UnitPrice:           line.UnitPrice,
				PriceSubtotal:       line.PriceSubtotal.Mul(ratio).Round(2).Neg(),
				PriceSubtotalIncl:   line.PriceSubtotalIncl.Mul(ratio).Round(2).Neg(),
				RefundedOrderLineID: line.LineID,
				RefundedOrderID:     parent.OrderID,
				RefundedQuantity:    decimal.Zero,
			})
			line.RefundedQuantity = line.RefundedQuantity.Add(rl.Quantity)
		}
		refund.AmountTotal = refund.ComputeAmountTotal()

		company, err := s.companyRepo.FindCompanyByID(ctx, refund.CompanyID)
		if err != nil {
			return err
		}
		autoInvoice, err := s.needsCreditNote(ctx, parents, company)
		if err != nil {
			return err
		}
		if autoInvoice {
			refund.InvoiceID = uuid.NewString()
		}

		if err := s.orderRepo.SaveOrder(ctx, refund); err != nil {
			return err
		}
		for i := range parents {
			parents[i].Touch(userID, now)
			if err := s.orderRepo.UpdateOrder(ctx, parents[i]); err != nil {
				return err
			}
		}

		if !autoInvoice {
			return nil
		}
		origin, err := s.refundOrigin(ctx, refund.RefundedOrderIDs())
		if err != nil {
			return err
		}
		_, err = s.invoicer.SignInvoice(ctx, company, []domain.Order{refund}, origin, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Refund created", slog.String("order_id", refund.OrderID), slog.Bool("invoiced", refund.IsInvoiced()))
	return &refund, nil
}

// needsCreditNote reports whether a refund of parents must be invoiced right away.
func (s *posOrderService) needsCreditNote(ctx context.Context, parents []domain.Order, company *domain.Company) (bool, error) {
	if company.CountryCode != domain.CountryMexico {
		return false, nil
	}
	ids := orderIDsOf(parents)
	docs, err := s.documentRepo.FindDocumentsByOrderIDs(ctx, ids)
	if err != nil {
		return false, err
	}
	byOrder := groupDocumentsByOrder(docs, ids)
	for i := range parents {
		if parents[i].IsInvoiced() {
			return true, nil
		}
		if domain.DeriveFiscalStatus(&parents[i], company, byOrder[parents[i].OrderID]).CFDIState == domain.CFDIStateGlobalSent {
			return true, nil
		}
	}
	return false, nil
}

// refundOrigin relates a refund to the individual invoice of the first refunded order that
// has one, else to the first global invoice found.
func (s *posOrderService) refundOrigin(ctx context.Context, parentIDs []string) (string, error) {
	if len(parentIDs) == 0 {
		return "", nil
	}
	docs, err := s.documentRepo.FindDocumentsByOrderIDs(ctx, parentIDs)
	if err != nil {
		return "", fmt.Errorf("failed to load documents of refunded orders: %w", err)
	}
	byOrder := groupDocumentsByOrder(docs, parentIDs)
	for _, lane := range []domain.Lane{domain.LaneInvoice, domain.LaneGlobalInvoice} {
		for _, id := range parentIDs {
			if d := domain.LiveDocument(byOrder[id], lane); d != nil {
				return domain.BuildOrigin(domain.RelationCreditNote, d.AttachmentUUID), nil
			}
		}
	}
	return "", nil
}

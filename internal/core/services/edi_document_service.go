package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/l10n_addons/internal/analytics"
	"github.com/SscSPs/l10n_addons/internal/apperrors"
	"github.com/SscSPs/l10n_addons/internal/cfdi"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/SscSPs/l10n_addons/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/l10n_addons/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/dto"
	"github.com/SscSPs/l10n_addons/internal/metrics"
)

const (
	msgSameCompany    = "You can only process orders sharing the same company."
	msgNotEligible    = "Some orders are already sent or not eligible for CFDI."
	msgOnlyRefunds    = "A global invoice cannot be made of refunds only."
	satSyncUserID     = "system:sat_sync"
	eventDocumentSign = "edi_document_signed"
	eventDocumentCncl = "edi_document_cancelled"
)

// ediDocumentService drives fiscal documents through signing, cancellation and SAT
// synchronization. Every operation runs in one transaction; remote failures are recorded
// on the document and the transaction still commits.
type ediDocumentService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	companyRepo  portsrepo.CompanyRepositoryFacade
	orderRepo    portsrepo.OrderRepositoryFacade
	documentRepo portsrepo.DocumentRepositoryFacade
	pac          gateways.PACClient
	sat          gateways.SATClient
	tracker      analytics.Tracker
}

// NewEDIDocumentService creates a new EDIDocumentService.
func NewEDIDocumentService(
	txManager portsrepo.TransactionManager,
	companyRepo portsrepo.CompanyRepositoryFacade,
	orderRepo portsrepo.OrderRepositoryFacade,
	documentRepo portsrepo.DocumentRepositoryFacade,
	pac gateways.PACClient,
	sat gateways.SATClient,
	tracker analytics.Tracker,
) portssvc.EDIDocumentSvcFacade {
	if tracker == nil {
		tracker = analytics.Nop{}
	}
	return &ediDocumentService{
		txManager:    txManager,
		companyRepo:  companyRepo,
		orderRepo:    orderRepo,
		documentRepo: documentRepo,
		pac:          pac,
		sat:          sat,
		tracker:      tracker,
	}
}

var _ portssvc.EDIDocumentSvcFacade = (*ediDocumentService)(nil)

// GlobalInvoiceTrySend signs one global invoice for the orders, reusing the newest failed
// attempt linked to exactly the same orders, pending refunds included, when there is one.
func (s *ediDocumentService) GlobalInvoiceTrySend(ctx context.Context, orderIDs []string, periodicity string, userID string) (*domain.Document, error) {
	if periodicity == "" {
		periodicity = domain.DefaultPeriodicity
	}
	if !domain.IsValidPeriodicity(periodicity) {
		return nil, apperrors.Validationf("invalid periodicity %q", periodicity)
	}

	var doc *domain.Document
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		orders, company, err := s.lockGlobalInvoiceOrders(ctx, orderIDs)
		if err != nil {
			return err
		}
		orders, err = s.withPendingRefunds(ctx, orders)
		if err != nil {
			return err
		}

		docs, err := s.documentRepo.FindDocumentsByOrderIDs(ctx, orderIDsOf(orders))
		if err != nil {
			return err
		}
		// A failed attempt is only reused for the very same orders; it never carries over
		// orders left out of this selection.
		ids := orderIDsOf(orders)
		isNew := true
		for i := range docs {
			if docs[i].State == domain.GlobalInvoiceSentFailed && docs[i].LinksExactly(ids) {
				doc, isNew = &docs[i], false
				break
			}
		}
		if isNew {
			doc = s.newDocument(company.CompanyID, userID)
		}
		doc.SetOrders(ids...)
		doc.Periodicity = periodicity
		doc.AttachmentOrigin = ""

		s.sign(ctx, doc, domain.LaneGlobalInvoice, company, orders, userID)
		return s.persist(ctx, doc, isNew)
	})
	if err != nil {
		return nil, err
	}
	setOwnActionFlags(doc)
	return doc, nil
}

// CheckGlobalInvoiceEligibility runs the global invoice checks without side effects.
func (s *ediDocumentService) CheckGlobalInvoiceEligibility(ctx context.Context, orderIDs []string) error {
	return s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		_, _, err := s.lockGlobalInvoiceOrders(ctx, orderIDs)
		return err
	})
}

// SignInvoice creates and signs an individual invoice document. The caller owns the transaction.
func (s *ediDocumentService) SignInvoice(ctx context.Context, company *domain.Company, orders []domain.Order, origin string, userID string) (*domain.Document, error) {
	doc := s.newDocument(company.CompanyID, userID)
	doc.LinkOrders(orderIDsOf(orders)...)
	doc.AttachmentOrigin = origin

	s.sign(ctx, doc, domain.LaneInvoice, company, orders, userID)
	if err := s.documentRepo.SaveDocument(ctx, doc); err != nil {
		return nil, err
	}
	setOwnActionFlags(doc)
	return doc, nil
}

// ActionRetry replays the failed action of a document in place.
func (s *ediDocumentService) ActionRetry(ctx context.Context, documentID string, userID string) (*domain.Document, error) {
	var doc *domain.Document
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		d, err := s.documentRepo.FindDocumentByIDForUpdate(ctx, documentID)
		if err != nil {
			return err
		}
		if !d.State.IsFailed() {
			return apperrors.NotEligiblef("document %s has no failed action to retry", documentID)
		}
		company, err := s.companyRepo.FindCompanyByID(ctx, d.CompanyID)
		if err != nil {
			return err
		}

		lane := d.State.Lane()
		if d.State.Step() == domain.StepCancelFailed {
			s.cancel(ctx, d, lane, company, userID)
			doc = d
			return s.documentRepo.UpdateDocument(ctx, *d)
		}

		orders, err := s.orderRepo.FindOrdersByIDsForUpdate(ctx, d.OrderIDs)
		if err != nil {
			return err
		}
		if lane == domain.LaneGlobalInvoice {
			if err := s.checkGlobalInvoiceOrders(ctx, orders, company, d.DocumentID); err != nil {
				return err
			}
			if orders, err = s.withPendingRefunds(ctx, orders); err != nil {
				return err
			}
			d.LinkOrders(orderIDsOf(orders)...)
		}
		s.sign(ctx, d, lane, company, orders, userID)
		doc = d
		return s.documentRepo.UpdateDocument(ctx, *d)
	})
	if err != nil {
		return nil, err
	}
	setOwnActionFlags(doc)
	return doc, nil
}

// ActionCancel cancels a signed document. The cancellation is a new document of the same
// lane carrying the cancelled uuid.
func (s *ediDocumentService) ActionCancel(ctx context.Context, documentID string, reason string, substitutionUUID string, userID string) (*domain.Document, error) {
	if !domain.IsValidCancellationReason(reason) {
		return nil, apperrors.Validationf("invalid cancellation reason %q", reason)
	}
	if reason == domain.CancelReasonWithRelated && substitutionUUID == "" {
		return nil, apperrors.Validationf("a substitution uuid is required when the cancellation reason is %s", reason)
	}

	var cancelDoc *domain.Document
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		d, err := s.documentRepo.FindDocumentByIDForUpdate(ctx, documentID)
		if err != nil {
			return err
		}
		flagged, err := s.withActionFlags(ctx, d)
		if err != nil {
			return err
		}
		if !flagged.CancelButtonNeeded {
			return apperrors.NotEligiblef("document %s cannot be cancelled", documentID)
		}
		company, err := s.companyRepo.FindCompanyByID(ctx, d.CompanyID)
		if err != nil {
			return err
		}

		cancelDoc = s.newDocument(d.CompanyID, userID)
		cancelDoc.LinkOrders(d.OrderIDs...)
		cancelDoc.AttachmentUUID = d.AttachmentUUID
		cancelDoc.AttachmentOrigin = d.AttachmentOrigin
		cancelDoc.Periodicity = d.Periodicity
		cancelDoc.CancellationReason = reason
		cancelDoc.SubstitutionUUID = substitutionUUID

		s.cancel(ctx, cancelDoc, d.State.Lane(), company, userID)
		return s.documentRepo.SaveDocument(ctx, cancelDoc)
	})
	if err != nil {
		return nil, err
	}
	setOwnActionFlags(cancelDoc)
	return cancelDoc, nil
}

// GetDocument retrieves a document with its action flags.
func (s *ediDocumentService) GetDocument(ctx context.Context, documentID string) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return s.withActionFlags(ctx, doc)
}

// ListDocumentsByOrder lists a page of the documents of an order, newest first.
func (s *ediDocumentService) ListDocumentsByOrder(ctx context.Context, orderID string, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error) {
	if _, err := s.orderRepo.FindOrderByID(ctx, orderID); err != nil {
		return nil, err
	}
	all, err := s.documentRepo.FindDocumentsByOrderIDs(ctx, []string{orderID})
	if err != nil {
		return nil, err
	}
	domain.ComputeActionFlags(all)
	flags := make(map[string]domain.Document, len(all))
	for _, d := range all {
		flags[d.DocumentID] = d
	}

	page, nextToken, err := s.documentRepo.ListDocumentsByOrderID(ctx, orderID, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	for i := range page {
		if f, ok := flags[page[i].DocumentID]; ok {
			page[i].RetryButtonNeeded = f.RetryButtonNeeded
			page[i].CancelButtonNeeded = f.CancelButtonNeeded
		}
	}
	return &dto.ListDocumentsResponse{Documents: dto.ToDocumentResponses(page), NextToken: nextToken}, nil
}

// FetchAndUpdateSATStatus asks the tax authority for the status of sent and cancelled
// documents whose status is not final yet. An empty documentIDs selects all of them.
func (s *ediDocumentService) FetchAndUpdateSATStatus(ctx context.Context, documentIDs []string) (*dto.SATSyncResponse, error) {
	ids := uniqueStrings(documentIDs)
	res := &dto.SATSyncResponse{}

	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		docs, err := s.documentRepo.FindDocumentsNeedingSATUpdate(ctx, ids)
		if err != nil {
			return err
		}
		res.Checked = len(docs)

		var uuids []string
		for _, d := range docs {
			if d.AttachmentUUID != "" {
				uuids = append(uuids, d.AttachmentUUID)
			}
		}
		uuids = uniqueStrings(uuids)
		if len(uuids) == 0 {
			return nil
		}

		statuses, err := s.sat.FetchStatuses(ctx, uuids)
		if err != nil {
			metrics.SATSyncFailuresTotal.Inc()
			s.LogError(ctx, err, "SAT status query failed", slog.Int("documents", len(docs)))
			return nil
		}

		now := s.Now()
		for i := range docs {
			raw, ok := statuses[docs[i].AttachmentUUID]
			if !ok {
				continue
			}
			state, known := domain.ParseSATState(raw)
			if !known {
				s.LogWarn(ctx, "Unknown SAT status ignored", slog.String("document_id", docs[i].DocumentID), slog.String("status", raw))
				continue
			}
			if state == docs[i].SATState {
				continue
			}
			changed, err := s.documentRepo.UpdateSATState(ctx, docs[i].DocumentID, state, now, satSyncUserID)
			if err != nil {
				return err
			}
			if !changed {
				continue
			}
			res.Updated++
			metrics.SATStatusUpdatesTotal.WithLabelValues(string(state)).Inc()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "SAT status synchronized", slog.Int("checked", res.Checked), slog.Int("updated", res.Updated))
	return res, nil
}

// lockGlobalInvoiceOrders locks the orders and checks they can share one global invoice.
func (s *ediDocumentService) lockGlobalInvoiceOrders(ctx context.Context, orderIDs []string) ([]domain.Order, *domain.Company, error) {
	ids := uniqueStrings(orderIDs)
	if len(ids) == 0 {
		return nil, nil, apperrors.Validationf("no orders selected")
	}
	orders, err := s.orderRepo.FindOrdersByIDsForUpdate(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	for _, o := range orders {
		if o.CompanyID != orders[0].CompanyID {
			return nil, nil, apperrors.NotEligiblef(msgSameCompany)
		}
	}
	company, err := s.companyRepo.FindCompanyByID(ctx, orders[0].CompanyID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.checkGlobalInvoiceOrders(ctx, orders, company, ""); err != nil {
		return nil, nil, err
	}
	return orders, company, nil
}

// checkGlobalInvoiceOrders rejects orders that are invoiced, already globally sent or that
// do not need a CFDI. Documents with id ignoreDocID are left out of the fiscal status.
func (s *ediDocumentService) checkGlobalInvoiceOrders(ctx context.Context, orders []domain.Order, company *domain.Company, ignoreDocID string) error {
	docsByOrder, err := s.documentsByOrder(ctx, orderIDsOf(orders))
	if err != nil {
		return err
	}
	onlyRefunds := true
	for i := range orders {
		o := &orders[i]
		if o.CompanyID != company.CompanyID {
			return apperrors.NotEligiblef(msgSameCompany)
		}
		var docs []domain.Document
		for _, d := range docsByOrder[o.OrderID] {
			if d.DocumentID != ignoreDocID {
				docs = append(docs, d)
			}
		}
		status := domain.DeriveFiscalStatus(o, company, docs)
		if o.IsInvoiced() || status.CFDIState == domain.CFDIStateGlobalSent || !status.IsCFDINeeded {
			return apperrors.NotEligiblef(msgNotEligible)
		}
		if !o.IsRefund() {
			onlyRefunds = false
		}
	}
	if onlyRefunds {
		return apperrors.NotEligiblef(msgOnlyRefunds)
	}
	return nil
}

// withPendingRefunds adds the refunds of the orders that were neither invoiced nor given an
// individual invoice document, so partial refunds are netted in the global invoice.
func (s *ediDocumentService) withPendingRefunds(ctx context.Context, orders []domain.Order) ([]domain.Order, error) {
	inSet := make(map[string]bool, len(orders))
	for _, o := range orders {
		inSet[o.OrderID] = true
	}
	refunds, err := s.orderRepo.FindRefundOrdersOf(ctx, orderIDsOf(orders))
	if err != nil {
		return nil, err
	}

	var candidates []string
	for _, r := range refunds {
		if !inSet[r.OrderID] && !r.IsInvoiced() {
			candidates = append(candidates, r.OrderID)
		}
	}
	candidates = uniqueStrings(candidates)
	if len(candidates) == 0 {
		return orders, nil
	}

	docsByOrder, err := s.documentsByOrder(ctx, candidates)
	if err != nil {
		return nil, err
	}
	var extra []string
	for _, id := range candidates {
		hasInvoiceDoc := false
		for _, d := range docsByOrder[id] {
			if d.State.Lane() == domain.LaneInvoice {
				hasInvoiceDoc = true
				break
			}
		}
		if !hasInvoiceDoc {
			extra = append(extra, id)
		}
	}
	if len(extra) == 0 {
		return orders, nil
	}

	locked, err := s.orderRepo.FindOrdersByIDsForUpdate(ctx, extra)
	if err != nil {
		return nil, err
	}
	return append(orders, locked...), nil
}

// documentsByOrder groups the documents linked to orderIDs by order.
func (s *ediDocumentService) documentsByOrder(ctx context.Context, orderIDs []string) (map[string][]domain.Document, error) {
	docs, err := s.documentRepo.FindDocumentsByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, err
	}
	return groupDocumentsByOrder(docs, orderIDs), nil
}

// sign builds the payload of doc and sends it to the provider, recording the outcome on doc.
func (s *ediDocumentService) sign(ctx context.Context, doc *domain.Document, lane domain.Lane, company *domain.Company, orders []domain.Order, userID string) {
	now := s.Now()
	folio := ""
	if lane == domain.LaneInvoice && len(orders) > 0 {
		folio = orders[0].Name
	}

	payload, err := cfdi.Build(cfdi.Input{
		Company:     *company,
		Orders:      orders,
		Lane:        lane,
		Origin:      doc.AttachmentOrigin,
		Periodicity: doc.Periodicity,
		Folio:       folio,
		Date:        now,
	})
	var res *gateways.SignResult
	if err == nil {
		res, err = s.pac.Sign(ctx, gateways.SignRequest{
			Lane:        lane,
			CompanyID:   company.CompanyID,
			CompanyVAT:  company.VAT,
			OrderIDs:    doc.OrderIDs,
			Origin:      doc.AttachmentOrigin,
			Periodicity: doc.Periodicity,
			XML:         payload,
		})
	}

	if err != nil {
		doc.State = domain.StateFor(lane, domain.StepSentFailed)
		doc.SATState = domain.SATNotChecked
		doc.Message = err.Error()
		doc.Attachment = nil
		doc.AttachmentName = ""
		doc.AttachmentUUID = ""
		s.LogWarn(ctx, "CFDI signing failed", slog.String("document_id", doc.DocumentID), slog.String("lane", string(lane)), slog.String("error", err.Error()))
	} else {
		doc.State = domain.StateFor(lane, domain.StepSent)
		doc.SATState = domain.SATNotDefined
		doc.Message = ""
		doc.Attachment = res.Attachment
		doc.AttachmentName = res.AttachmentName
		doc.AttachmentUUID = res.UUID
		s.LogInfo(ctx, "CFDI signed", slog.String("document_id", doc.DocumentID), slog.String("lane", string(lane)), slog.String("uuid", res.UUID))
	}
	doc.Datetime = now
	doc.Touch(userID, now)

	metrics.EDIAttemptsTotal.WithLabelValues(string(lane), "sign", metrics.Result(err)).Inc()
	s.tracker.Enqueue(userID, eventDocumentSign, map[string]any{
		"lane":   string(lane),
		"state":  string(doc.State),
		"orders": len(doc.OrderIDs),
	})
}

// cancel asks the provider to cancel doc.AttachmentUUID, recording the outcome on doc.
func (s *ediDocumentService) cancel(ctx context.Context, doc *domain.Document, lane domain.Lane, company *domain.Company, userID string) {
	err := s.pac.Cancel(ctx, gateways.CancelRequest{
		CompanyVAT:       company.VAT,
		UUID:             doc.AttachmentUUID,
		Reason:           doc.CancellationReason,
		SubstitutionUUID: doc.SubstitutionUUID,
	})
	if err != nil {
		doc.State = domain.StateFor(lane, domain.StepCancelFailed)
		doc.Message = err.Error()
		s.LogWarn(ctx, "CFDI cancellation failed", slog.String("document_id", doc.DocumentID), slog.String("uuid", doc.AttachmentUUID), slog.String("error", err.Error()))
	} else {
		doc.State = domain.StateFor(lane, domain.StepCancel)
		doc.SATState = domain.SATNotDefined
		doc.Message = ""
		s.LogInfo(ctx, "CFDI cancelled", slog.String("document_id", doc.DocumentID), slog.String("uuid", doc.AttachmentUUID))
	}
	now := s.Now()
	doc.Datetime = now
	doc.Touch(userID, now)

	metrics.EDIAttemptsTotal.WithLabelValues(string(lane), "cancel", metrics.Result(err)).Inc()
	s.tracker.Enqueue(userID, eventDocumentCncl, map[string]any{
		"lane":   string(lane),
		"state":  string(doc.State),
		"reason": doc.CancellationReason,
	})
}

func (s *ediDocumentService) newDocument(companyID, userID string) *domain.Document {
	return &domain.Document{
		DocumentID:  uuid.NewString(),
		CompanyID:   companyID,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
}

func (s *ediDocumentService) persist(ctx context.Context, doc *domain.Document, isNew bool) error {
	if isNew {
		return s.documentRepo.SaveDocument(ctx, doc)
	}
	return s.documentRepo.UpdateDocument(ctx, *doc)
}

// withActionFlags computes the flags of doc against the documents sharing its orders.
func (s *ediDocumentService) withActionFlags(ctx context.Context, doc *domain.Document) (*domain.Document, error) {
	if len(doc.OrderIDs) == 0 {
		setOwnActionFlags(doc)
		return doc, nil
	}
	siblings, err := s.documentRepo.FindDocumentsByOrderIDs(ctx, doc.OrderIDs)
	if err != nil {
		return nil, err
	}
	found := false
	for _, d := range siblings {
		if d.DocumentID == doc.DocumentID {
			found = true
			break
		}
	}
	if !found {
		siblings = append(siblings, *doc)
	}
	domain.ComputeActionFlags(siblings)
	for _, d := range siblings {
		if d.DocumentID == doc.DocumentID {
			doc.RetryButtonNeeded = d.RetryButtonNeeded
			doc.CancelButtonNeeded = d.CancelButtonNeeded
		}
	}
	return doc, nil
}

// setOwnActionFlags computes the flags of a document whose uuid no other document refers to.
func setOwnActionFlags(doc *domain.Document) {
	docs := []domain.Document{*doc}
	domain.ComputeActionFlags(docs)
	doc.RetryButtonNeeded = docs[0].RetryButtonNeeded
	doc.CancelButtonNeeded = docs[0].CancelButtonNeeded
}

func groupDocumentsByOrder(docs []domain.Document, orderIDs []string) map[string][]domain.Document {
	wanted := make(map[string]bool, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = true
	}
	out := make(map[string][]domain.Document, len(orderIDs))
	for _, d := range docs {
		for _, id := range d.OrderIDs {
			if wanted[id] {
				out[id] = append(out[id], d)
			}
		}
	}
	return out
}

func orderIDsOf(orders []domain.Order) []string {
	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.OrderID
	}
	return ids
}

// uniqueStrings drops empty and repeated values, keeping the first occurrence order.
func uniqueStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

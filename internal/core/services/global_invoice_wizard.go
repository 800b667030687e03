package services

import (
	"context"

	"github.com/SscSPs/l10n_addons/internal/apperrors"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/SscSPs/l10n_addons/internal/core/hooks"
	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/dto"
)

// OperationCreateGlobalInvoice is the handler chain run by the global invoice wizard.
const OperationCreateGlobalInvoice = "global_invoice.create"

// GlobalInvoiceChain is the handler chain of OperationCreateGlobalInvoice.
type GlobalInvoiceChain = hooks.Chain[GlobalInvoiceCommand, *domain.Document]

// GlobalInvoiceCommand is what the wizard hands to the global invoice handlers.
type GlobalInvoiceCommand struct {
	Wizard domain.GlobalInvoiceWizard
	UserID string
}

type globalInvoiceWizardService struct {
	BaseService
	edi   portssvc.EDIDocumentSvcFacade
	chain *GlobalInvoiceChain
}

// NewGlobalInvoiceWizardService creates the wizard on top of chain.
func NewGlobalInvoiceWizardService(edi portssvc.EDIDocumentSvcFacade, chain *GlobalInvoiceChain) portssvc.GlobalInvoiceWizardSvc {
	return &globalInvoiceWizardService{edi: edi, chain: chain}
}

var _ portssvc.GlobalInvoiceWizardSvc = (*globalInvoiceWizardService)(nil)

// DefaultGet checks the selected orders up front so the user is told before confirming.
func (s *globalInvoiceWizardService) DefaultGet(ctx context.Context, req dto.GlobalInvoiceWizardRequest) (*domain.GlobalInvoiceWizard, error) {
	wizard := &domain.GlobalInvoiceWizard{
		OrderIDs:    uniqueStrings(req.OrderIDs),
		Periodicity: req.Periodicity,
	}
	if wizard.Periodicity == "" {
		wizard.Periodicity = domain.DefaultPeriodicity
	}
	if !domain.IsValidPeriodicity(wizard.Periodicity) {
		return nil, apperrors.Validationf("invalid periodicity %q", wizard.Periodicity)
	}
	if len(wizard.OrderIDs) > 0 {
		if err := s.edi.CheckGlobalInvoiceEligibility(ctx, wizard.OrderIDs); err != nil {
			return nil, err
		}
	}
	return wizard, nil
}

// ActionCreateGlobalInvoice runs the registered global invoice handlers.
func (s *globalInvoiceWizardService) ActionCreateGlobalInvoice(ctx context.Context, wizard domain.GlobalInvoiceWizard, userID string) (*domain.Document, error) {
	return s.chain.Run(ctx, GlobalInvoiceCommand{Wizard: wizard, UserID: userID})
}

// NewGlobalInvoiceChain builds the chain with the order handler in front of the fallback
// that rejects wizards opened without records.
func NewGlobalInvoiceChain(edi portssvc.EDIDocumentSvcFacade) *GlobalInvoiceChain {
	chain := hooks.NewChain[GlobalInvoiceCommand, *domain.Document](OperationCreateGlobalInvoice)
	chain.Append("default", func(ctx context.Context, cmd GlobalInvoiceCommand) (*domain.Document, bool, error) {
		return nil, true, apperrors.Validationf("no records selected for the global invoice")
	})
	chain.Prepend("pos_order", func(ctx context.Context, cmd GlobalInvoiceCommand) (*domain.Document, bool, error) {
		if len(cmd.Wizard.OrderIDs) == 0 {
			return nil, false, nil
		}
		doc, err := edi.GlobalInvoiceTrySend(ctx, cmd.Wizard.OrderIDs, cmd.Wizard.Periodicity, cmd.UserID)
		return doc, true, err
	})
	return chain
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/l10n_addons/internal/apperrors"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/SscSPs/l10n_addons/internal/core/hooks"
	portsrepo "github.com/SscSPs/l10n_addons/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/metrics"
)

// ABA payments are always in Australian dollars.
const abaCurrency = "AUD"

// Redirect targets of the configuration errors.
const (
	resModelJournal     = "account.journal"
	resModelPartnerBank = "res.partner.bank"
)

// Constraint names.
const (
	ConstraintABASourceAccount      = "aba_source_account"
	ConstraintABADestinationAccount = "aba_destination_account"
	ConstraintPartnerBankRequired   = "partner_bank_required"
)

type abaValidatorService struct {
	BaseService
	journalRepo     portsrepo.JournalReader
	partnerBankRepo portsrepo.PartnerBankReader
}

// NewABAValidatorService creates the ABA credit transfer checks.
func NewABAValidatorService(journalRepo portsrepo.JournalReader, partnerBankRepo portsrepo.PartnerBankReader) portssvc.ABAValidatorSvc {
	return &abaValidatorService{journalRepo: journalRepo, partnerBankRepo: partnerBankRepo}
}

var _ portssvc.ABAValidatorSvc = (*abaValidatorService)(nil)

// ValidateSourceAccount checks the originating side of an ABA payment.
func (s *abaValidatorService) ValidateSourceAccount(ctx context.Context, payment domain.Payment) error {
	if !payment.IsABA() {
		return nil
	}
	if payment.CurrencyCode != abaCurrency {
		return apperrors.Validationf("ABA payments must be defined in AUD.")
	}

	journal, err := s.journalRepo.FindJournalByID(ctx, payment.JournalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.Validationf("journal %s not found", payment.JournalID)
		}
		return err
	}

	account, err := s.findPartnerBank(ctx, journal.BankAccountID)
	if err != nil {
		return err
	}
	if !account.IsValidABA() {
		s.LogDebug(ctx, "Journal bank account is not a valid ABA account", slog.String("journal_id", journal.JournalID))
		return apperrors.NewRedirectError(
			fmt.Sprintf("Journal '%s' requires a proper ABA account. Please configure the Account first.", journal.Name),
			resModelJournal, journal.JournalID, "Configure Journal",
		)
	}
	if !journal.HasABAData() {
		return apperrors.NewRedirectError(
			fmt.Sprintf("Please fill in the ABA data of account %s (journal %s) before using it to generate ABA payments.", account.DisplayName(), journal.Name),
			resModelJournal, journal.JournalID, "Configure Journal",
		)
	}
	return nil
}

// ValidateDestinationAccount checks the partner side of an ABA payment.
func (s *abaValidatorService) ValidateDestinationAccount(ctx context.Context, payment domain.Payment) error {
	if !payment.IsABA() {
		return nil
	}
	account, err := s.findPartnerBank(ctx, payment.PartnerBankID)
	if err != nil {
		return err
	}
	if account.IsValidABA() {
		return nil
	}
	name := ""
	if account != nil {
		name = account.DisplayName()
	}
	return apperrors.NewRedirectError(
		fmt.Sprintf("The partner requires a bank account with a valid BSB and account number. Please configure the following account first:\n %s.", name),
		resModelPartnerBank, payment.PartnerBankID, "Configure Account",
	)
}

// findPartnerBank returns nil without error when the id is empty or unknown.
func (s *abaValidatorService) findPartnerBank(ctx context.Context, id string) (*domain.PartnerBank, error) {
	if id == "" {
		return nil, nil
	}
	account, err := s.partnerBankRepo.FindPartnerBankByID(ctx, id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	return account, err
}

// RegisterPaymentConstraints wires the bank account checks into the payment constraints.
func RegisterPaymentConstraints(c *hooks.Constraints[domain.Payment], aba portssvc.ABAValidatorSvc, methods *hooks.PaymentMethods) {
	c.Register(counted(hooks.Constraint[domain.Payment]{
		Name:     ConstraintPartnerBankRequired,
		Triggers: []string{domain.PaymentFieldMethod, domain.PaymentFieldPartnerBank},
		Check: func(ctx context.Context, p domain.Payment) error {
			if methods.NeedsBankAccount(p.PaymentMethodCode) && p.PartnerBankID == "" {
				return apperrors.Validationf("payment method %s requires a partner bank account", p.PaymentMethodCode)
			}
			return nil
		},
	}))
	c.Register(counted(hooks.Constraint[domain.Payment]{
		Name:     ConstraintABASourceAccount,
		Triggers: []string{domain.PaymentFieldMethod, domain.PaymentFieldJournal, domain.PaymentFieldCurrency},
		Check:    aba.ValidateSourceAccount,
	}))
	c.Register(counted(hooks.Constraint[domain.Payment]{
		Name:     ConstraintABADestinationAccount,
		Triggers: []string{domain.PaymentFieldMethod, domain.PaymentFieldPartnerBank},
		Check:    aba.ValidateDestinationAccount,
	}))
}

// RegisterPaymentMethods declares the methods this service knows about.
func RegisterPaymentMethods(methods *hooks.PaymentMethods) {
	methods.Register(domain.PaymentMethodABACreditTransfer, true, true)
	methods.Register(domain.PaymentMethodManual, false, false)
}

func counted(c hooks.Constraint[domain.Payment]) hooks.Constraint[domain.Payment] {
	check := c.Check
	c.Check = func(ctx context.Context, p domain.Payment) error {
		err := check(ctx, p)
		if err != nil {
			metrics.PaymentValidationFailuresTotal.WithLabelValues(c.Name).Inc()
		}
		return err
	}
	return c
}

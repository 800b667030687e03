package services

import (
	"context"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/SscSPs/l10n_addons/internal/dto"
)

// PaymentSvcFacade defines the payment operations.
type PaymentSvcFacade interface {
	// CreatePayment creates a draft payment. Constraints run on every field.
	CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error)

	// GetPaymentByID retrieves a payment.
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// UpdatePayment changes a draft payment. Constraints run for the changed fields only.
	UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error)

	// ConfirmPayment posts a draft payment after re-running every constraint.
	ConfirmPayment(ctx context.Context, paymentID string, userID string) (*domain.Payment, error)
}

// ABAValidatorSvc checks ABA credit transfer payments.
type ABAValidatorSvc interface {
	// ValidateSourceAccount checks currency, journal bank account and journal ABA data.
	ValidateSourceAccount(ctx context.Context, payment domain.Payment) error

	// ValidateDestinationAccount checks the partner bank account.
	ValidateDestinationAccount(ctx context.Context, payment domain.Payment) error
}

// BankSvcFacade defines operations on bank journals and bank accounts.
type BankSvcFacade interface {
	CreateJournal(ctx context.Context, req dto.CreateJournalRequest, userID string) (*domain.BankJournal, error)
	GetJournalByID(ctx context.Context, journalID string) (*domain.BankJournal, error)
	UpdateJournalABA(ctx context.Context, journalID string, req dto.UpdateJournalABARequest, userID string) (*domain.BankJournal, error)
	CreatePartnerBank(ctx context.Context, req dto.CreatePartnerBankRequest, userID string) (*domain.PartnerBank, error)
	GetPartnerBankByID(ctx context.Context, partnerBankID string) (*domain.PartnerBank, error)
}

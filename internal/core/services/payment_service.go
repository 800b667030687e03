package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/l10n_addons/internal/apperrors"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/SscSPs/l10n_addons/internal/core/hooks"
	portsrepo "github.com/SscSPs/l10n_addons/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/dto"
)

// paymentService hosts payments and runs the payment constraints on every change.
type paymentService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	paymentRepo portsrepo.PaymentRepositoryFacade
	journalRepo portsrepo.JournalReader
	constraints *hooks.Constraints[domain.Payment]
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(txManager portsrepo.TransactionManager, paymentRepo portsrepo.PaymentRepositoryFacade, journalRepo portsrepo.JournalReader, constraints *hooks.Constraints[domain.Payment]) portssvc.PaymentSvcFacade {
	return &paymentService{
		txManager:   txManager,
		paymentRepo: paymentRepo,
		journalRepo: journalRepo,
		constraints: constraints,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// CreatePayment creates a draft payment.
func (s *paymentService) CreatePayment(ctx context.Context, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error) {
	if !req.Amount.GreaterThan(decimal.Zero) {
		return nil, apperrors.Validationf("payment amount must be positive")
	}

	payment := domain.Payment{
		PaymentID:         uuid.NewString(),
		PaymentMethodCode: req.PaymentMethodCode,
		CurrencyCode:      req.CurrencyCode,
		JournalID:         req.JournalID,
		PartnerBankID:     req.PartnerBankID,
		Amount:            req.Amount,
		State:             domain.PaymentDraft,
		AuditFields:       domain.NewAuditFields(userID, s.Now()),
	}

	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.ensureJournal(ctx, payment.JournalID); err != nil {
			return err
		}
		if err := s.constraints.Check(ctx, payment, nil); err != nil {
			return err
		}
		return s.paymentRepo.SavePayment(ctx, payment)
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Payment created", slog.String("payment_id", payment.PaymentID), slog.String("method", payment.PaymentMethodCode))
	return &payment, nil
}

// GetPaymentByID retrieves a payment.
func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.paymentRepo.FindPaymentByID(ctx, paymentID)
}

// UpdatePayment applies the provided fields to a draft payment.
func (s *paymentService) UpdatePayment(ctx context.Context, paymentID string, req dto.UpdatePaymentRequest, userID string) (*domain.Payment, error) {
	var updated *domain.Payment
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		payment, err := s.paymentRepo.FindPaymentByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment.State != domain.PaymentDraft {
			return apperrors.NotEligiblef("only draft payments can be modified, payment %s is %s", paymentID, payment.State)
		}

		var changed []string
		if req.PaymentMethodCode != nil && *req.PaymentMethodCode != payment.PaymentMethodCode {
			payment.PaymentMethodCode = *req.PaymentMethodCode
			changed = append(changed, domain.PaymentFieldMethod)
		}
		if req.CurrencyCode != nil && *req.CurrencyCode != payment.CurrencyCode {
			payment.CurrencyCode = *req.CurrencyCode
			changed = append(changed, domain.PaymentFieldCurrency)
		}
		if req.JournalID != nil && *req.JournalID != payment.JournalID {
			if err := s.ensureJournal(ctx, *req.JournalID); err != nil {
				return err
			}
			payment.JournalID = *req.JournalID
			changed = append(changed, domain.PaymentFieldJournal)
		}
		if req.PartnerBankID != nil && *req.PartnerBankID != payment.PartnerBankID {
			payment.PartnerBankID = *req.PartnerBankID
			changed = append(changed, domain.PaymentFieldPartnerBank)
		}
		if req.Amount != nil && !req.Amount.Equal(payment.Amount) {
			if !req.Amount.GreaterThan(decimal.Zero) {
				return apperrors.Validationf("payment amount must be positive")
			}
			payment.Amount = *req.Amount
			changed = append(changed, domain.PaymentFieldAmount)
		}

		updated = payment
		if len(changed) == 0 {
			return nil
		}
		if err := s.constraints.Check(ctx, *payment, changed); err != nil {
			return err
		}
		payment.Touch(userID, s.Now())
		return s.paymentRepo.UpdatePayment(ctx, *payment)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ConfirmPayment posts a draft payment.
func (s *paymentService) ConfirmPayment(ctx context.Context, paymentID string, userID string) (*domain.Payment, error) {
	var confirmed *domain.Payment
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		payment, err := s.paymentRepo.FindPaymentByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if payment.State != domain.PaymentDraft {
			return apperrors.NotEligiblef("payment %s is %s and cannot be confirmed", paymentID, payment.State)
		}
		if err := s.constraints.Check(ctx, *payment, nil); err != nil {
			return err
		}
		payment.State = domain.PaymentPosted
		payment.Touch(userID, s.Now())
		confirmed = payment
		return s.paymentRepo.UpdatePayment(ctx, *payment)
	})
	if err != nil {
		s.LogDebug(ctx, "Payment not confirmed", slog.String("payment_id", paymentID), slog.String("reason", err.Error()))
		return nil, err
	}

	s.LogInfo(ctx, "Payment confirmed", slog.String("payment_id", paymentID))
	return confirmed, nil
}

func (s *paymentService) ensureJournal(ctx context.Context, journalID string) error {
	if _, err := s.journalRepo.FindJournalByID(ctx, journalID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.Validationf("journal %s not found", journalID)
		}
		return err
	}
	return nil
}

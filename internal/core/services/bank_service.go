package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/l10n_addons/internal/apperrors"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	portsrepo "github.com/SscSPs/l10n_addons/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/dto"
)

// bankService manages bank journals and bank accounts.
type bankService struct {
	BaseService
	txManager       portsrepo.TransactionManager
	journalRepo     portsrepo.JournalRepositoryFacade
	partnerBankRepo portsrepo.PartnerBankRepositoryFacade
}

// NewBankService creates a new BankService.
func NewBankService(txManager portsrepo.TransactionManager, journalRepo portsrepo.JournalRepositoryFacade, partnerBankRepo portsrepo.PartnerBankRepositoryFacade) portssvc.BankSvcFacade {
	return &bankService{txManager: txManager, journalRepo: journalRepo, partnerBankRepo: partnerBankRepo}
}

var _ portssvc.BankSvcFacade = (*bankService)(nil)

// CreateJournal creates a bank journal, optionally bound to a bank account.
func (s *bankService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest, userID string) (*domain.BankJournal, error) {
	journal := domain.BankJournal{
		JournalID:     uuid.NewString(),
		Name:          req.Name,
		BankAccountID: req.BankAccountID,
		ABAUserSpec:   req.ABAUserSpec,
		ABAFIC:        req.ABAFIC,
		ABAUserNumber: req.ABAUserNumber,
		AuditFields:   domain.NewAuditFields(userID, s.Now()),
	}
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.ensureBankAccount(ctx, journal.BankAccountID); err != nil {
			return err
		}
		return s.journalRepo.SaveJournal(ctx, journal)
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Bank journal created", slog.String("journal_id", journal.JournalID))
	return &journal, nil
}

// GetJournalByID retrieves a bank journal.
func (s *bankService) GetJournalByID(ctx context.Context, journalID string) (*domain.BankJournal, error) {
	return s.journalRepo.FindJournalByID(ctx, journalID)
}

// UpdateJournalABA sets the bank account and ABA fields of a journal.
func (s *bankService) UpdateJournalABA(ctx context.Context, journalID string, req dto.UpdateJournalABARequest, userID string) (*domain.BankJournal, error) {
	var journal *domain.BankJournal
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		journal, err = s.journalRepo.FindJournalByID(ctx, journalID)
		if err != nil {
			return err
		}
		if req.BankAccountID != nil {
			if err := s.ensureBankAccount(ctx, *req.BankAccountID); err != nil {
				return err
			}
			journal.BankAccountID = *req.BankAccountID
		}
		if req.ABAUserSpec != nil {
			journal.ABAUserSpec = *req.ABAUserSpec
		}
		if req.ABAFIC != nil {
			journal.ABAFIC = *req.ABAFIC
		}
		if req.ABAUserNumber != nil {
			journal.ABAUserNumber = *req.ABAUserNumber
		}
		journal.Touch(userID, s.Now())
		return s.journalRepo.UpdateJournal(ctx, *journal)
	})
	if err != nil {
		return nil, err
	}
	return journal, nil
}

// CreatePartnerBank registers a bank account.
func (s *bankService) CreatePartnerBank(ctx context.Context, req dto.CreatePartnerBankRequest, userID string) (*domain.PartnerBank, error) {
	account := domain.PartnerBank{
		PartnerBankID: uuid.NewString(),
		PartnerID:     req.PartnerID,
		AccNumber:     req.AccNumber,
		AccType:       req.AccType,
		ABABSB:        req.ABABSB,
		AuditFields:   domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.partnerBankRepo.SavePartnerBank(ctx, account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetPartnerBankByID retrieves a bank account.
func (s *bankService) GetPartnerBankByID(ctx context.Context, partnerBankID string) (*domain.PartnerBank, error) {
	return s.partnerBankRepo.FindPartnerBankByID(ctx, partnerBankID)
}

func (s *bankService) ensureBankAccount(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if _, err := s.partnerBankRepo.FindPartnerBankByID(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.Validationf("bank account %s not found", id)
		}
		return err
	}
	return nil
}

package repositories

import (
	"context"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
)

// JournalReader defines read operations for bank journals
type JournalReader interface {
	FindJournalByID(ctx context.Context, journalID string) (*domain.BankJournal, error)
}

// JournalWriter defines write operations for bank journals
type JournalWriter interface {
	SaveJournal(ctx context.Context, journal domain.BankJournal) error
	UpdateJournal(ctx context.Context, journal domain.BankJournal) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// PartnerBankReader defines read operations for bank accounts
type PartnerBankReader interface {
	FindPartnerBankByID(ctx context.Context, partnerBankID string) (*domain.PartnerBank, error)
}

// PartnerBankWriter defines write operations for bank accounts
type PartnerBankWriter interface {
	SavePartnerBank(ctx context.Context, bank domain.PartnerBank) error
}

// PartnerBankRepositoryFacade combines all bank-account-related repository interfaces
type PartnerBankRepositoryFacade interface {
	PartnerBankReader
	PartnerBankWriter
}

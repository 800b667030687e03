package memory

import (
	"context"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
)

// FindJournalByID retrieves a bank journal.
func (s *Store) FindJournalByID(ctx context.Context, journalID string) (*domain.BankJournal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.data.journals[journalID]
	if !ok {
		return nil, notFound("journal", journalID)
	}
	return &j, nil
}

// SaveJournal persists a new bank journal.
func (s *Store) SaveJournal(ctx context.Context, journal domain.BankJournal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.journals[journal.JournalID]; ok {
		return duplicate("journal", journal.JournalID)
	}
	s.data.journals[journal.JournalID] = journal
	return nil
}

// UpdateJournal overwrites a bank journal.
func (s *Store) UpdateJournal(ctx context.Context, journal domain.BankJournal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.journals[journal.JournalID]; !ok {
		return notFound("journal", journal.JournalID)
	}
	s.data.journals[journal.JournalID] = journal
	return nil
}

// FindPartnerBankByID retrieves a bank account.
func (s *Store) FindPartnerBankByID(ctx context.Context, partnerBankID string) (*domain.PartnerBank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.data.partnerBanks[partnerBankID]
	if !ok {
		return nil, notFound("partner bank", partnerBankID)
	}
	return &b, nil
}

// SavePartnerBank persists a new bank account.
func (s *Store) SavePartnerBank(ctx context.Context, bank domain.PartnerBank) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.partnerBanks[bank.PartnerBankID]; ok {
		return duplicate("partner bank", bank.PartnerBankID)
	}
	s.data.partnerBanks[bank.PartnerBankID] = bank
	return nil
}

// FindCompanyByID retrieves a company.
func (s *Store) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.data.companies[companyID]
	if !ok {
		return nil, notFound("company", companyID)
	}
	return &c, nil
}

// SaveCompany persists a new company.
func (s *Store) SaveCompany(ctx context.Context, company domain.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.companies[company.CompanyID]; ok {
		return duplicate("company", company.CompanyID)
	}
	s.data.companies[company.CompanyID] = company
	return nil
}

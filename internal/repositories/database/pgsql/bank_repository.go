package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/l10n_addons/internal/apperrors"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	portsrepo "github.com/SscSPs/l10n_addons/internal/core/ports/repositories"
	"github.com/SscSPs/l10n_addons/internal/models"
	"github.com/SscSPs/l10n_addons/internal/utils/mapping"
)

// PgxBankRepository stores bank journals and bank accounts.
type PgxBankRepository struct {
	BaseRepository
}

func newPgxBankRepository(pool *pgxpool.Pool) *PgxBankRepository {
	return &PgxBankRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.JournalRepositoryFacade     = (*PgxBankRepository)(nil)
	_ portsrepo.PartnerBankRepositoryFacade = (*PgxBankRepository)(nil)
)

// FindJournalByID retrieves a bank journal by its ID.
func (r *PgxBankRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.BankJournal, error) {
	query := `
		SELECT journal_id, name, bank_account_id, aba_user_spec, aba_fic, aba_user_number,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM bank_journals
		WHERE journal_id = $1;
	`
	var m models.BankJournal
	err := r.db(ctx).QueryRow(ctx, query, journalID).Scan(
		&m.JournalID, &m.Name, &m.BankAccountID, &m.ABAUserSpec, &m.ABAFIC, &m.ABAUserNumber,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapError(err, "journal "+journalID)
	}
	journal := mapping.ToDomainBankJournal(m)
	return &journal, nil
}

// SaveJournal inserts a bank journal.
func (r *PgxBankRepository) SaveJournal(ctx context.Context, journal domain.BankJournal) error {
	m := mapping.ToModelBankJournal(journal)
	query := `
		INSERT INTO bank_journals (journal_id, name, bank_account_id, aba_user_spec, aba_fic, aba_user_number,
		                           created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.JournalID, m.Name, m.BankAccountID, m.ABAUserSpec, m.ABAFIC, m.ABAUserNumber,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "journal "+m.JournalID)
}

// UpdateJournal overwrites the editable columns of a bank journal.
func (r *PgxBankRepository) UpdateJournal(ctx context.Context, journal domain.BankJournal) error {
	m := mapping.ToModelBankJournal(journal)
	query := `
		UPDATE bank_journals
		SET name = $2, bank_account_id = $3, aba_user_spec = $4, aba_fic = $5, aba_user_number = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE journal_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.JournalID, m.Name, m.BankAccountID, m.ABAUserSpec, m.ABAFIC, m.ABAUserNumber,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapError(err, "journal "+m.JournalID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindPartnerBankByID retrieves a bank account by its ID.
func (r *PgxBankRepository) FindPartnerBankByID(ctx context.Context, partnerBankID string) (*domain.PartnerBank, error) {
	query := `
		SELECT partner_bank_id, partner_id, acc_number, acc_type, aba_bsb,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM partner_banks
		WHERE partner_bank_id = $1;
	`
	var m models.PartnerBank
	err := r.db(ctx).QueryRow(ctx, query, partnerBankID).Scan(
		&m.PartnerBankID, &m.PartnerID, &m.AccNumber, &m.AccType, &m.ABABSB,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapError(err, "partner bank "+partnerBankID)
	}
	bank := mapping.ToDomainPartnerBank(m)
	return &bank, nil
}

// SavePartnerBank inserts a bank account.
func (r *PgxBankRepository) SavePartnerBank(ctx context.Context, bank domain.PartnerBank) error {
	m := mapping.ToModelPartnerBank(bank)
	query := `
		INSERT INTO partner_banks (partner_bank_id, partner_id, acc_number, acc_type, aba_bsb,
		                           created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.PartnerBankID, m.PartnerID, m.AccNumber, m.AccType, m.ABABSB,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "partner bank "+m.PartnerBankID)
}

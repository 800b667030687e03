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

const paymentColumns = `payment_id, payment_method_code, currency_code, journal_id, partner_bank_id, amount, state,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxPaymentRepository stores payments.
type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) *PgxPaymentRepository {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return r.findPayment(ctx, `SELECT `+paymentColumns+` FROM payments WHERE payment_id = $1;`, paymentID)
}

// FindPaymentByIDForUpdate retrieves a payment and locks its row.
func (r *PgxPaymentRepository) FindPaymentByIDForUpdate(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return r.findPayment(ctx, `SELECT `+paymentColumns+` FROM payments WHERE payment_id = $1 FOR UPDATE;`, paymentID)
}

func (r *PgxPaymentRepository) findPayment(ctx context.Context, query, paymentID string) (*domain.Payment, error) {
	var m models.Payment
	err := r.db(ctx).QueryRow(ctx, query, paymentID).Scan(
		&m.PaymentID, &m.PaymentMethodCode, &m.CurrencyCode, &m.JournalID, &m.PartnerBankID, &m.Amount, &m.State,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapError(err, "payment "+paymentID)
	}
	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// SavePayment inserts a payment.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `INSERT INTO payments (` + paymentColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := r.db(ctx).Exec(ctx, query,
		m.PaymentID, m.PaymentMethodCode, m.CurrencyCode, m.JournalID, m.PartnerBankID, m.Amount, m.State,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	return mapError(err, "payment "+m.PaymentID)
}

// UpdatePayment overwrites a payment.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		UPDATE payments
		SET payment_method_code = $2, currency_code = $3, journal_id = $4, partner_bank_id = $5,
		    amount = $6, state = $7, last_updated_at = $8, last_updated_by = $9
		WHERE payment_id = $1;
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		m.PaymentID, m.PaymentMethodCode, m.CurrencyCode, m.JournalID, m.PartnerBankID,
		m.Amount, m.State, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapError(err, "payment "+m.PaymentID)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
	portsrepo "github.com/SscSPs/l10n_addons/internal/core/ports/repositories"
	"github.com/SscSPs/l10n_addons/internal/models"
	"github.com/SscSPs/l10n_addons/internal/utils/mapping"
)

// PgxCompanyRepository stores issuing companies.
type PgxCompanyRepository struct {
	BaseRepository
}

func newPgxCompanyRepository(pool *pgxpool.Pool) *PgxCompanyRepository {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

// FindCompanyByID retrieves a company by its ID.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `
		SELECT company_id, name, vat, country_code, zip, fiscal_regime, currency_code
		FROM companies
		WHERE company_id = $1;
	`
	var m models.Company
	err := r.db(ctx).QueryRow(ctx, query, companyID).Scan(
		&m.CompanyID, &m.Name, &m.VAT, &m.CountryCode, &m.ZIP, &m.FiscalRegime, &m.CurrencyCode,
	)
	if err != nil {
		return nil, mapError(err, "company "+companyID)
	}
	company := mapping.ToDomainCompany(m)
	return &company, nil
}

// SaveCompany inserts a company.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `
		INSERT INTO companies (company_id, name, vat, country_code, zip, fiscal_regime, currency_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db(ctx).Exec(ctx, query, m.CompanyID, m.Name, m.VAT, m.CountryCode, m.ZIP, m.FiscalRegime, m.CurrencyCode)
	return mapError(err, "company "+m.CompanyID)
}

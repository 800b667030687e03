package repositories

import (
	"context"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
)

// CompanyRepositoryFacade defines persistence operations for companies.
type CompanyRepositoryFacade interface {
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
	SaveCompany(ctx context.Context, company domain.Company) error
}

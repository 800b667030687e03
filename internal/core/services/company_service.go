package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
	portsrepo "github.com/SscSPs/l10n_addons/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
	"github.com/SscSPs/l10n_addons/internal/dto"
)

type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// CreateCompany registers an issuing company. Codes are stored upper case.
func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	company := domain.Company{
		CompanyID:    uuid.NewString(),
		Name:         req.Name,
		VAT:          strings.ToUpper(req.VAT),
		CountryCode:  strings.ToUpper(req.CountryCode),
		ZIP:          req.ZIP,
		FiscalRegime: req.FiscalRegime,
		CurrencyCode: strings.ToUpper(req.CurrencyCode),
	}
	if company.CurrencyCode == "" && company.CountryCode == domain.CountryMexico {
		company.CurrencyCode = "MXN"
	}
	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		return nil, err
	}
	return &company, nil
}

// GetCompanyByID retrieves a company.
func (s *companyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	return s.companyRepo.FindCompanyByID(ctx, companyID)
}

package dto

import "github.com/SscSPs/l10n_addons/internal/core/domain"

// CreateCompanyRequest defines the data needed to register an issuing company.
type CreateCompanyRequest struct {
	Name         string `json:"name" binding:"required"`
	VAT          string `json:"vat" binding:"required,min=12,max=13"`
	CountryCode  string `json:"countryCode" binding:"required,len=2"`
	ZIP          string `json:"zip" binding:"omitempty,numeric,len=5"`
	FiscalRegime string `json:"fiscalRegime" binding:"omitempty,numeric,len=3"`
	CurrencyCode string `json:"currencyCode" binding:"omitempty,len=3"`
}

// CompanyResponse defines the data returned for a company.
type CompanyResponse struct {
	CompanyID    string `json:"companyID"`
	Name         string `json:"name"`
	VAT          string `json:"vat"`
	CountryCode  string `json:"countryCode"`
	ZIP          string `json:"zip"`
	FiscalRegime string `json:"fiscalRegime"`
	CurrencyCode string `json:"currencyCode"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:    c.CompanyID,
		Name:         c.Name,
		VAT:          c.VAT,
		CountryCode:  c.CountryCode,
		ZIP:          c.ZIP,
		FiscalRegime: c.FiscalRegime,
		CurrencyCode: c.CurrencyCode,
	}
}

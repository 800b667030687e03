package domain

// CountryMexico is the only country whose orders require a CFDI.
const CountryMexico = "MX"

// Company is the legal entity issuing orders and fiscal documents.
type Company struct {
	CompanyID    string `json:"companyID"`
	Name         string `json:"name"`
	VAT          string `json:"vat"` // RFC for Mexican companies
	CountryCode  string `json:"countryCode"`
	ZIP          string `json:"zip"`
	FiscalRegime string `json:"fiscalRegime"`
	CurrencyCode string `json:"currencyCode"`
}

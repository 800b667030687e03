package models

// Company represents a row of companies.
type Company struct {
	CompanyID    string `db:"company_id"`
	Name         string `db:"name"`
	VAT          string `db:"vat"`
	CountryCode  string `db:"country_code"`
	ZIP          string `db:"zip"`
	FiscalRegime string `db:"fiscal_regime"`
	CurrencyCode string `db:"currency_code"`
}

package models

import "github.com/shopspring/decimal"

// Payment represents a row of payments.
type Payment struct {
	PaymentID         string          `db:"payment_id"`
	PaymentMethodCode string          `db:"payment_method_code"`
	CurrencyCode      string          `db:"currency_code"`
	JournalID         string          `db:"journal_id"`
	PartnerBankID     *string         `db:"partner_bank_id"` // Nullable
	Amount            decimal.Decimal `db:"amount"`
	State             string          `db:"state"`
	AuditFields
}

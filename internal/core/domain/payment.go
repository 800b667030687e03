package domain

import (
	"github.com/shopspring/decimal"
)

// PaymentState indicates where a payment is in its confirmation lifecycle.
type PaymentState string

const (
	PaymentDraft     PaymentState = "draft"
	PaymentPosted    PaymentState = "posted"
	PaymentCancelled PaymentState = "cancelled"
)

// Payment method codes known to this service. Other codes are accepted and treated as opaque.
const (
	PaymentMethodABACreditTransfer = "aba_ct"
	PaymentMethodManual            = "manual"
)

// Payment field names used as constraint triggers.
const (
	PaymentFieldMethod      = "payment_method"
	PaymentFieldJournal     = "journal_id"
	PaymentFieldCurrency    = "currency"
	PaymentFieldPartnerBank = "partner_bank_id"
	PaymentFieldAmount      = "amount"
)

// Payment represents a single money movement from a bank journal to a partner bank account.
type Payment struct {
	PaymentID         string          `json:"paymentID"`
	PaymentMethodCode string          `json:"paymentMethodCode"`
	CurrencyCode      string          `json:"currencyCode"`
	JournalID         string          `json:"journalID"`
	PartnerBankID     string          `json:"partnerBankID"` // Empty when no destination account is set
	Amount            decimal.Decimal `json:"amount"`
	State             PaymentState    `json:"state"`
	AuditFields
}

// IsABA reports whether the payment uses the ABA credit transfer method.
func (p *Payment) IsABA() bool {
	return p.PaymentMethodCode == PaymentMethodABACreditTransfer
}

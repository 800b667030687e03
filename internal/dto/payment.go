package dto

import (
	"time"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data needed to create a draft payment.
type CreatePaymentRequest struct {
	PaymentMethodCode string          `json:"paymentMethodCode" binding:"required"`
	CurrencyCode      string          `json:"currencyCode" binding:"required,len=3"`
	JournalID         string          `json:"journalID" binding:"required"`
	PartnerBankID     string          `json:"partnerBankID"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
}

// UpdatePaymentRequest defines the fields that can be changed on a draft payment.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdatePaymentRequest struct {
	PaymentMethodCode *string          `json:"paymentMethodCode"`
	CurrencyCode      *string          `json:"currencyCode" binding:"omitempty,len=3"`
	JournalID         *string          `json:"journalID"`
	PartnerBankID     *string          `json:"partnerBankID"`
	Amount            *decimal.Decimal `json:"amount"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID         string          `json:"paymentID"`
	PaymentMethodCode string          `json:"paymentMethodCode"`
	CurrencyCode      string          `json:"currencyCode"`
	JournalID         string          `json:"journalID"`
	PartnerBankID     string          `json:"partnerBankID"`
	Amount            decimal.Decimal `json:"amount"`
	State             string          `json:"state"`
	CreatedAt         time.Time       `json:"createdAt"`
	CreatedBy         string          `json:"createdBy"`
	LastUpdatedAt     time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy     string          `json:"lastUpdatedBy"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:         p.PaymentID,
		PaymentMethodCode: p.PaymentMethodCode,
		CurrencyCode:      p.CurrencyCode,
		JournalID:         p.JournalID,
		PartnerBankID:     p.PartnerBankID,
		Amount:            p.Amount,
		State:             string(p.State),
		CreatedAt:         p.CreatedAt,
		CreatedBy:         p.CreatedBy,
		LastUpdatedAt:     p.LastUpdatedAt,
		LastUpdatedBy:     p.LastUpdatedBy,
	}
}

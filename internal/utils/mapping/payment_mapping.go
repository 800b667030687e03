package mapping

import (
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/SscSPs/l10n_addons/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:         d.PaymentID,
		PaymentMethodCode: d.PaymentMethodCode,
		CurrencyCode:      d.CurrencyCode,
		JournalID:         d.JournalID,
		PartnerBankID:     NullableString(d.PartnerBankID),
		Amount:            d.Amount,
		State:             string(d.State),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:         m.PaymentID,
		PaymentMethodCode: m.PaymentMethodCode,
		CurrencyCode:      m.CurrencyCode,
		JournalID:         m.JournalID,
		PartnerBankID:     FromNullableString(m.PartnerBankID),
		Amount:            m.Amount,
		State:             domain.PaymentState(m.State),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

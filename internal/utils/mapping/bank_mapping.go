package mapping

import (
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/SscSPs/l10n_addons/internal/models"
)

// ToModelPartnerBank converts a domain PartnerBank to a model PartnerBank
func ToModelPartnerBank(d domain.PartnerBank) models.PartnerBank {
	return models.PartnerBank{
		PartnerBankID: d.PartnerBankID,
		PartnerID:     d.PartnerID,
		AccNumber:     d.AccNumber,
		AccType:       d.AccType,
		ABABSB:        d.ABABSB,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPartnerBank converts a model PartnerBank to a domain PartnerBank
func ToDomainPartnerBank(m models.PartnerBank) domain.PartnerBank {
	return domain.PartnerBank{
		PartnerBankID: m.PartnerBankID,
		PartnerID:     m.PartnerID,
		AccNumber:     m.AccNumber,
		AccType:       m.AccType,
		ABABSB:        m.ABABSB,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBankJournal converts a domain BankJournal to a model BankJournal
func ToModelBankJournal(d domain.BankJournal) models.BankJournal {
	return models.BankJournal{
		JournalID:     d.JournalID,
		Name:          d.Name,
		BankAccountID: NullableString(d.BankAccountID),
		ABAUserSpec:   d.ABAUserSpec,
		ABAFIC:        d.ABAFIC,
		ABAUserNumber: d.ABAUserNumber,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankJournal converts a model BankJournal to a domain BankJournal
func ToDomainBankJournal(m models.BankJournal) domain.BankJournal {
	return domain.BankJournal{
		JournalID:     m.JournalID,
		Name:          m.Name,
		BankAccountID: FromNullableString(m.BankAccountID),
		ABAUserSpec:   m.ABAUserSpec,
		ABAFIC:        m.ABAFIC,
		ABAUserNumber: m.ABAUserNumber,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

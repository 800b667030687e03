package dto

import "github.com/SscSPs/l10n_addons/internal/core/domain"

// CreateJournalRequest defines the data needed to create a bank journal.
type CreateJournalRequest struct {
	Name          string `json:"name" binding:"required"`
	BankAccountID string `json:"bankAccountID"`
	ABAUserSpec   string `json:"abaUserSpec"`
	ABAFIC        string `json:"abaFIC" binding:"omitempty,max=3"`
	ABAUserNumber string `json:"abaUserNumber" binding:"omitempty,numeric,max=6"`
}

// UpdateJournalABARequest defines the ABA configuration of a bank journal.
type UpdateJournalABARequest struct {
	BankAccountID *string `json:"bankAccountID"`
	ABAUserSpec   *string `json:"abaUserSpec"`
	ABAFIC        *string `json:"abaFIC" binding:"omitempty,max=3"`
	ABAUserNumber *string `json:"abaUserNumber" binding:"omitempty,numeric,max=6"`
}

// CreatePartnerBankRequest defines the data needed to register a bank account.
type CreatePartnerBankRequest struct {
	PartnerID string `json:"partnerID" binding:"required"`
	AccNumber string `json:"accNumber" binding:"required"`
	AccType   string `json:"accType" binding:"required,oneof=aba bank"`
	ABABSB    string `json:"abaBSB" binding:"omitempty,bsb"`
}

// JournalResponse defines the data returned for a bank journal.
type JournalResponse struct {
	JournalID     string `json:"journalID"`
	Name          string `json:"name"`
	BankAccountID string `json:"bankAccountID"`
	ABAUserSpec   string `json:"abaUserSpec"`
	ABAFIC        string `json:"abaFIC"`
	ABAUserNumber string `json:"abaUserNumber"`
}

// PartnerBankResponse defines the data returned for a bank account.
type PartnerBankResponse struct {
	PartnerBankID string `json:"partnerBankID"`
	PartnerID     string `json:"partnerID"`
	AccNumber     string `json:"accNumber"`
	AccType       string `json:"accType"`
	ABABSB        string `json:"abaBSB"`
	DisplayName   string `json:"displayName"`
}

// ToJournalResponse converts a domain.BankJournal to JournalResponse DTO
func ToJournalResponse(j *domain.BankJournal) JournalResponse {
	return JournalResponse{
		JournalID:     j.JournalID,
		Name:          j.Name,
		BankAccountID: j.BankAccountID,
		ABAUserSpec:   j.ABAUserSpec,
		ABAFIC:        j.ABAFIC,
		ABAUserNumber: j.ABAUserNumber,
	}
}

// ToPartnerBankResponse converts a domain.PartnerBank to PartnerBankResponse DTO
func ToPartnerBankResponse(b *domain.PartnerBank) PartnerBankResponse {
	return PartnerBankResponse{
		PartnerBankID: b.PartnerBankID,
		PartnerID:     b.PartnerID,
		AccNumber:     b.AccNumber,
		AccType:       b.AccType,
		ABABSB:        b.ABABSB,
		DisplayName:   b.DisplayName(),
	}
}

package domain

// Bank account types.
const (
	AccountTypeABA  = "aba"
	AccountTypeBank = "bank"
)

// PartnerBank is a bank account record. Journals reference one as their own account and
// payments reference one as the destination account.
type PartnerBank struct {
	PartnerBankID string `json:"partnerBankID"`
	PartnerID     string `json:"partnerID"`
	AccNumber     string `json:"accNumber"`
	AccType       string `json:"accType"`
	ABABSB        string `json:"abaBSB"`
	AuditFields
}

// DisplayName is the label shown to users when the account needs attention.
func (b *PartnerBank) DisplayName() string {
	if b.ABABSB != "" {
		return b.ABABSB + " " + b.AccNumber
	}
	return b.AccNumber
}

// IsValidABA reports whether the account can be used for ABA transfers.
func (b *PartnerBank) IsValidABA() bool {
	return b != nil && b.AccType == AccountTypeABA && b.ABABSB != ""
}

// BankJournal is the payment journal a payment originates from.
type BankJournal struct {
	JournalID     string `json:"journalID"`
	Name          string `json:"name"`
	BankAccountID string `json:"bankAccountID"`
	ABAUserSpec   string `json:"abaUserSpec"`
	ABAFIC        string `json:"abaFIC"`
	ABAUserNumber string `json:"abaUserNumber"`
	AuditFields
}

// HasABAData reports whether the three ABA configuration fields are filled.
func (j *BankJournal) HasABAData() bool {
	return j.ABAUserSpec != "" && j.ABAFIC != "" && j.ABAUserNumber != ""
}

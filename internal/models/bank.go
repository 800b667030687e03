package models

// PartnerBank represents a row of partner_banks.
type PartnerBank struct {
	PartnerBankID string `db:"partner_bank_id"`
	PartnerID     string `db:"partner_id"`
	AccNumber     string `db:"acc_number"`
	AccType       string `db:"acc_type"`
	ABABSB        string `db:"aba_bsb"`
	AuditFields
}

// BankJournal represents a row of bank_journals.
type BankJournal struct {
	JournalID     string  `db:"journal_id"`
	Name          string  `db:"name"`
	BankAccountID *string `db:"bank_account_id"` // Nullable
	ABAUserSpec   string  `db:"aba_user_spec"`
	ABAFIC        string  `db:"aba_fic"`
	ABAUserNumber string  `db:"aba_user_number"`
	AuditFields
}

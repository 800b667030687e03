package domain

// GlobalInvoiceWizard is the transient input of a global invoice creation.
// OrderIDs is empty when the wizard was opened from something other than orders.
type GlobalInvoiceWizard struct {
	OrderIDs    []string `json:"orderIDs"`
	Periodicity string   `json:"periodicity"`
}

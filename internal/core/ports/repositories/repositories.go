package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager       TransactionManager
	PaymentRepo     PaymentRepositoryFacade
	JournalRepo     JournalRepositoryFacade
	PartnerBankRepo PartnerBankRepositoryFacade
	CompanyRepo     CompanyRepositoryFacade
	OrderRepo       OrderRepositoryFacade
	DocumentRepo    DocumentRepositoryFacade
}

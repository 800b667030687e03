package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/l10n_addons/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	bankRepo := newPgxBankRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TxManager:       newTxManager(dbPool),
		PaymentRepo:     newPgxPaymentRepository(dbPool),
		JournalRepo:     bankRepo,
		PartnerBankRepo: bankRepo,
		CompanyRepo:     newPgxCompanyRepository(dbPool),
		OrderRepo:       newPgxOrderRepository(dbPool),
		DocumentRepo:    newPgxDocumentRepository(dbPool),
	}
}

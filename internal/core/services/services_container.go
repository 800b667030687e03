package services

import (
	"github.com/SscSPs/l10n_addons/internal/analytics"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/SscSPs/l10n_addons/internal/core/hooks"
	"github.com/SscSPs/l10n_addons/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/l10n_addons/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/l10n_addons/internal/core/ports/services"
)

// Gateways groups the remote collaborators of the services.
type Gateways struct {
	PAC     gateways.PACClient
	SAT     gateways.SATClient
	Tracker analytics.Tracker
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, gw Gateways) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Bank account checks are registered as payment constraints.
	methods := hooks.NewPaymentMethods()
	RegisterPaymentMethods(methods)
	container.ABAValidator = NewABAValidatorService(repos.JournalRepo, repos.PartnerBankRepo)
	constraints := hooks.NewConstraints[domain.Payment]()
	RegisterPaymentConstraints(constraints, container.ABAValidator, methods)

	container.Payment = NewPaymentService(repos.TxManager, repos.PaymentRepo, repos.JournalRepo, constraints)
	container.Bank = NewBankService(repos.TxManager, repos.JournalRepo, repos.PartnerBankRepo)

	container.EDIDocument = NewEDIDocumentService(
		repos.TxManager,
		repos.CompanyRepo,
		repos.OrderRepo,
		repos.DocumentRepo,
		gw.PAC,
		gw.SAT,
		gw.Tracker,
	)
	container.Company = NewCompanyService(repos.CompanyRepo)
	container.Order = NewPOSOrderService(repos.TxManager, repos.CompanyRepo, repos.OrderRepo, repos.DocumentRepo, container.EDIDocument)
	container.GlobalInvoice = NewGlobalInvoiceWizardService(container.EDIDocument, NewGlobalInvoiceChain(container.EDIDocument))

	return container
}

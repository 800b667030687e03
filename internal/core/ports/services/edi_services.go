package services

import (
	"context"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/SscSPs/l10n_addons/internal/dto"
)

// CompanySvcFacade defines operations on issuing companies.
type CompanySvcFacade interface {
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
}

// OrderSvcFacade defines point-of-sale order operations.
type OrderSvcFacade interface {
	// CreateOrder records a paid order.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, userID string) (*domain.Order, error)

	// GetOrder retrieves an order and its fiscal status.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, *domain.OrderFiscalStatus, error)

	// InvoiceOrder converts the order to an individual invoice and signs it.
	InvoiceOrder(ctx context.Context, orderID string, userID string) (*domain.Document, error)

	// RefundOrder refunds every remaining quantity of an order.
	RefundOrder(ctx context.Context, orderID string, userID string) (*domain.Order, error)

	// CreateRefund creates one refund order from lines of one or more orders.
	CreateRefund(ctx context.Context, req dto.CreateRefundRequest, userID string) (*domain.Order, error)
}

// EDIInvoicerSvc signs individual invoices for orders. The caller owns the transaction.
type EDIInvoicerSvc interface {
	SignInvoice(ctx context.Context, company *domain.Company, orders []domain.Order, origin string, userID string) (*domain.Document, error)
}

// EDIDocumentSvcFacade defines the fiscal document lifecycle operations.
type EDIDocumentSvcFacade interface {
	EDIInvoicerSvc

	// GlobalInvoiceTrySend creates or retries the global invoice of a set of orders.
	GlobalInvoiceTrySend(ctx context.Context, orderIDs []string, periodicity string, userID string) (*domain.Document, error)

	// CheckGlobalInvoiceEligibility rejects order sets that cannot be globally invoiced.
	CheckGlobalInvoiceEligibility(ctx context.Context, orderIDs []string) error

	// ActionRetry replays the failed remote call of a document.
	ActionRetry(ctx context.Context, documentID string, userID string) (*domain.Document, error)

	// ActionCancel cancels a sent document, creating a cancellation document.
	ActionCancel(ctx context.Context, documentID string, reason string, substitutionUUID string, userID string) (*domain.Document, error)

	// GetDocument retrieves a document with its action flags.
	GetDocument(ctx context.Context, documentID string) (*domain.Document, error)

	// ListDocumentsByOrder lists the documents of an order, newest first.
	ListDocumentsByOrder(ctx context.Context, orderID string, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error)

	// FetchAndUpdateSATStatus synchronizes the SAT state of sent/cancelled documents.
	FetchAndUpdateSATStatus(ctx context.Context, documentIDs []string) (*dto.SATSyncResponse, error)
}

// GlobalInvoiceWizardSvc is the global invoice creation entry point.
type GlobalInvoiceWizardSvc interface {
	// DefaultGet validates the selected orders and fills the wizard defaults.
	DefaultGet(ctx context.Context, req dto.GlobalInvoiceWizardRequest) (*domain.GlobalInvoiceWizard, error)

	// ActionCreateGlobalInvoice runs the registered global invoice handlers.
	ActionCreateGlobalInvoice(ctx context.Context, wizard domain.GlobalInvoiceWizard, userID string) (*domain.Document, error)
}

package repositories

import (
	"context"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a payment by its ID.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// FindPaymentByIDForUpdate retrieves a payment and locks it until the transaction ends.
	FindPaymentByIDForUpdate(ctx context.Context, paymentID string) (*domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment persists a new payment.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// UpdatePayment overwrites an existing payment.
	UpdatePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

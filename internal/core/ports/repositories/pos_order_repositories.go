package repositories

import (
	"context"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
)

// OrderReader defines read operations for point-of-sale orders
type OrderReader interface {
	// FindOrderByID retrieves an order with its lines.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// FindOrdersByIDsForUpdate retrieves orders with their lines and locks them until the
	// transaction ends. Missing ids are reported with apperrors.ErrNotFound.
	FindOrdersByIDsForUpdate(ctx context.Context, orderIDs []string) ([]domain.Order, error)

	// FindRefundOrdersOf retrieves the orders having at least one line refunding one of parentOrderIDs.
	FindRefundOrdersOf(ctx context.Context, parentOrderIDs []string) ([]domain.Order, error)
}

// OrderWriter defines write operations for point-of-sale orders
type OrderWriter interface {
	// SaveOrder persists a new order and its lines.
	SaveOrder(ctx context.Context, order domain.Order) error

	// UpdateOrder updates the invoice link and the refunded quantities of the lines.
	UpdateOrder(ctx context.Context, order domain.Order) error
}

// OrderRepositoryFacade combines all order-related repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}

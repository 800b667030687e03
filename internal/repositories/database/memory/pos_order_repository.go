package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
)

// FindOrderByID retrieves an order with its lines.
func (s *Store) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.data.orders[orderID]
	if !ok {
		return nil, notFound("order", orderID)
	}
	o = copyOrder(o)
	return &o, nil
}

// FindOrdersByIDsForUpdate retrieves orders sorted by id.
func (s *Store) FindOrdersByIDsForUpdate(ctx context.Context, orderIDs []string) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool, len(orderIDs))
	orders := make([]domain.Order, 0, len(orderIDs))
	for _, id := range orderIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		o, ok := s.data.orders[id]
		if !ok {
			return nil, notFound("order", id)
		}
		orders = append(orders, copyOrder(o))
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderID < orders[j].OrderID })
	return orders, nil
}

// FindRefundOrdersOf retrieves the refunds of the given orders sorted by id.
func (s *Store) FindRefundOrdersOf(ctx context.Context, parentOrderIDs []string) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	parents := make(map[string]bool, len(parentOrderIDs))
	for _, id := range parentOrderIDs {
		parents[id] = true
	}
	var refunds []domain.Order
	for _, o := range s.data.orders {
		for _, l := range o.Lines {
			if l.RefundedOrderID != "" && parents[l.RefundedOrderID] {
				refunds = append(refunds, copyOrder(o))
				break
			}
		}
	}
	sort.Slice(refunds, func(i, j int) bool { return refunds[i].OrderID < refunds[j].OrderID })
	return refunds, nil
}

// SaveOrder persists a new order and its lines.
func (s *Store) SaveOrder(ctx context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.orders[order.OrderID]; ok {
		return duplicate("order", order.OrderID)
	}
	s.data.orders[order.OrderID] = copyOrder(order)
	return nil
}

// UpdateOrder updates the invoice link and the refunded quantities of the lines.
func (s *Store) UpdateOrder(ctx context.Context, order domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.data.orders[order.OrderID]
	if !ok {
		return notFound("order", order.OrderID)
	}
	stored = copyOrder(stored)
	stored.InvoiceID = order.InvoiceID
	stored.AuditFields.LastUpdatedAt = order.LastUpdatedAt
	stored.AuditFields.LastUpdatedBy = order.LastUpdatedBy
	for i := range stored.Lines {
		if l, ok := order.Line(stored.Lines[i].LineID); ok {
			stored.Lines[i].RefundedQuantity = l.RefundedQuantity
		}
	}
	s.data.orders[order.OrderID] = stored
	return nil
}

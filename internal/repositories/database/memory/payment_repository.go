package memory

import (
	"context"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
)

// FindPaymentByID retrieves a payment.
func (s *Store) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.data.payments[paymentID]
	if !ok {
		return nil, notFound("payment", paymentID)
	}
	return &p, nil
}

// FindPaymentByIDForUpdate retrieves a payment. Transactions are serialized, so holding one
// is the lock.
func (s *Store) FindPaymentByIDForUpdate(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.FindPaymentByID(ctx, paymentID)
}

// SavePayment persists a new payment.
func (s *Store) SavePayment(ctx context.Context, payment domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.payments[payment.PaymentID]; ok {
		return duplicate("payment", payment.PaymentID)
	}
	s.data.payments[payment.PaymentID] = payment
	return nil
}

// UpdatePayment overwrites a payment.
func (s *Store) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.payments[payment.PaymentID]; !ok {
		return notFound("payment", payment.PaymentID)
	}
	s.data.payments[payment.PaymentID] = payment
	return nil
}

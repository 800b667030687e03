// Package memory keeps every record in process memory. It backs the sandbox deployment and
// the service tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/l10n_addons/internal/apperrors"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	portsrepo "github.com/SscSPs/l10n_addons/internal/core/ports/repositories"
)

type txCtxKey struct{}

type tables struct {
	payments     map[string]domain.Payment
	journals     map[string]domain.BankJournal
	partnerBanks map[string]domain.PartnerBank
	companies    map[string]domain.Company
	orders       map[string]domain.Order
	documents    map[string]domain.Document
	sequence     int64
}

func newTables() tables {
	return tables{
		payments:     make(map[string]domain.Payment),
		journals:     make(map[string]domain.BankJournal),
		partnerBanks: make(map[string]domain.PartnerBank),
		companies:    make(map[string]domain.Company),
		orders:       make(map[string]domain.Order),
		documents:    make(map[string]domain.Document),
	}
}

func (t tables) clone() tables {
	c := newTables()
	for k, v := range t.payments {
		c.payments[k] = v
	}
	for k, v := range t.journals {
		c.journals[k] = v
	}
	for k, v := range t.partnerBanks {
		c.partnerBanks[k] = v
	}
	for k, v := range t.companies {
		c.companies[k] = v
	}
	for k, v := range t.orders {
		c.orders[k] = copyOrder(v)
	}
	for k, v := range t.documents {
		c.documents[k] = copyDocument(v)
	}
	c.sequence = t.sequence
	return c
}

// Store implements every repository facade and the transaction manager.
// Transactions are serialized; a failed transaction restores the snapshot taken when it began.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	data tables
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{data: newTables()}
}

// NewRepositoryProvider exposes a Store through the repository ports.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:       store,
		PaymentRepo:     store,
		JournalRepo:     store,
		PartnerBankRepo: store,
		CompanyRepo:     store,
		OrderRepo:       store,
		DocumentRepo:    store,
	}
}

var (
	_ portsrepo.TransactionManager          = (*Store)(nil)
	_ portsrepo.PaymentRepositoryFacade     = (*Store)(nil)
	_ portsrepo.JournalRepositoryFacade     = (*Store)(nil)
	_ portsrepo.PartnerBankRepositoryFacade = (*Store)(nil)
	_ portsrepo.CompanyRepositoryFacade     = (*Store)(nil)
	_ portsrepo.OrderRepositoryFacade       = (*Store)(nil)
	_ portsrepo.DocumentRepositoryFacade    = (*Store)(nil)
)

// RunInTx runs fn in a transaction. Nested calls join the outer transaction.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if ctx.Value(txCtxKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	defer func() {
		if p := recover(); p != nil {
			s.restore(snapshot)
			panic(p)
		}
		if err != nil {
			s.restore(snapshot)
		}
	}()

	return fn(context.WithValue(ctx, txCtxKey{}, true))
}

func (s *Store) restore(snapshot tables) {
	s.mu.Lock()
	s.data = snapshot
	s.mu.Unlock()
}

func (s *Store) nextSequence() int64 {
	s.data.sequence++
	return s.data.sequence
}

func duplicate(kind, id string) error {
	return fmt.Errorf("%w: %s %s", apperrors.ErrDuplicate, kind, id)
}

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, kind, id)
}

func copyOrder(o domain.Order) domain.Order {
	o.Lines = append([]domain.OrderLine(nil), o.Lines...)
	return o
}

func copyDocument(d domain.Document) domain.Document {
	d.OrderIDs = append([]string(nil), d.OrderIDs...)
	d.Attachment = append([]byte(nil), d.Attachment...)
	return d
}

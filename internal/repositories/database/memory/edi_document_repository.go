package memory

import (
	"context"
	"time"

	"github.com/SscSPs/l10n_addons/internal/apperrors"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/SscSPs/l10n_addons/internal/utils/pagination"
)

// FindDocumentByID retrieves a document.
func (s *Store) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.data.documents[documentID]
	if !ok {
		return nil, notFound("document", documentID)
	}
	d = copyDocument(d)
	return &d, nil
}

// FindDocumentByIDForUpdate retrieves a document. Transactions are serialized, so holding one
// is the lock.
func (s *Store) FindDocumentByIDForUpdate(ctx context.Context, documentID string) (*domain.Document, error) {
	return s.FindDocumentByID(ctx, documentID)
}

// FindDocumentsByOrderIDs retrieves every document linked to one of orderIDs, newest first.
func (s *Store) FindDocumentsByOrderIDs(ctx context.Context, orderIDs []string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wanted := make(map[string]bool, len(orderIDs))
	for _, id := range orderIDs {
		wanted[id] = true
	}
	var docs []domain.Document
	for _, d := range s.data.documents {
		for _, id := range d.OrderIDs {
			if wanted[id] {
				docs = append(docs, copyDocument(d))
				break
			}
		}
	}
	domain.SortDocuments(docs)
	return docs, nil
}

// ListDocumentsByOrderID retrieves a page of the documents of one order, newest first.
func (s *Store) ListDocumentsByOrderID(ctx context.Context, orderID string, limit int, nextToken *string) ([]domain.Document, *string, error) {
	all, err := s.FindDocumentsByOrderIDs(ctx, []string{orderID})
	if err != nil {
		return nil, nil, err
	}

	if nextToken != nil && *nextToken != "" {
		tokenCreatedAt, tokenSequence, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.Validationf("%v", err)
		}
		filtered := all[:0]
		for _, d := range all {
			if pagination.IsAfter(d.CreatedAt, d.Sequence, tokenCreatedAt, tokenSequence) {
				filtered = append(filtered, d)
			}
		}
		all = filtered
	}

	if limit <= 0 || len(all) <= limit {
		return all, nil, nil
	}
	page := all[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(last.CreatedAt, last.Sequence)
	return page, &token, nil
}

// FindDocumentsNeedingSATUpdate retrieves documents the status synchronization should query.
func (s *Store) FindDocumentsNeedingSATUpdate(ctx context.Context, documentIDs []string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var docs []domain.Document
	if len(documentIDs) == 0 {
		for _, d := range s.data.documents {
			if d.NeedsSATUpdate() {
				docs = append(docs, copyDocument(d))
			}
		}
	} else {
		seen := make(map[string]bool, len(documentIDs))
		for _, id := range documentIDs {
			d, ok := s.data.documents[id]
			if !ok || seen[id] || !d.NeedsSATUpdate() {
				continue
			}
			seen[id] = true
			docs = append(docs, copyDocument(d))
		}
	}
	domain.SortDocuments(docs)
	return docs, nil
}

// SaveDocument persists a new document and assigns its sequence.
func (s *Store) SaveDocument(ctx context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.documents[doc.DocumentID]; ok {
		return duplicate("document", doc.DocumentID)
	}
	doc.Sequence = s.nextSequence()
	s.data.documents[doc.DocumentID] = copyDocument(*doc)
	return nil
}

// UpdateDocument overwrites a document. The sequence is kept.
func (s *Store) UpdateDocument(ctx context.Context, doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.data.documents[doc.DocumentID]
	if !ok {
		return notFound("document", doc.DocumentID)
	}
	doc.Sequence = stored.Sequence
	s.data.documents[doc.DocumentID] = copyDocument(doc)
	return nil
}

// UpdateSATState sets the SAT state when it is not terminal and differs from state.
func (s *Store) UpdateSATState(ctx context.Context, documentID string, state domain.SATState, updatedAt time.Time, updatedBy string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.data.documents[documentID]
	if !ok || doc.SATState == state || doc.SATState.IsTerminal() {
		return false, nil
	}
	doc.SATState = state
	doc.Touch(updatedBy, updatedAt)
	s.data.documents[documentID] = doc
	return true, nil
}

package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
)

// DocumentReader defines read operations for fiscal documents
type DocumentReader interface {
	// FindDocumentByID retrieves a document by its ID.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// FindDocumentByIDForUpdate retrieves a document and locks it until the transaction ends.
	FindDocumentByIDForUpdate(ctx context.Context, documentID string) (*domain.Document, error)

	// FindDocumentsByOrderIDs retrieves every document linked to at least one of orderIDs, newest first.
	FindDocumentsByOrderIDs(ctx context.Context, orderIDs []string) ([]domain.Document, error)

	// ListDocumentsByOrderID retrieves a page of the documents of one order, newest first.
	// It returns the documents, a token for the next page, and an error.
	ListDocumentsByOrderID(ctx context.Context, orderID string, limit int, nextToken *string) ([]domain.Document, *string, error)

	// FindDocumentsNeedingSATUpdate retrieves sent or cancelled documents whose SAT state is not
	// terminal. An empty documentIDs selects all of them.
	FindDocumentsNeedingSATUpdate(ctx context.Context, documentIDs []string) ([]domain.Document, error)
}

// DocumentWriter defines write operations for fiscal documents
type DocumentWriter interface {
	// SaveDocument persists a new document and its order links. It sets doc.Sequence.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// UpdateDocument overwrites an existing document and its order links.
	UpdateDocument(ctx context.Context, doc domain.Document) error

	// UpdateSATState sets the SAT state of a document whose SAT state is not terminal yet and
	// differs from state. It reports whether a row changed; an unknown id changes nothing.
	UpdateSATState(ctx context.Context, documentID string, state domain.SATState, updatedAt time.Time, updatedBy string) (bool, error)
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}

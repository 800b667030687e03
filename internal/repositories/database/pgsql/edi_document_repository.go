package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/l10n_addons/internal/apperrors"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	portsrepo "github.com/SscSPs/l10n_addons/internal/core/ports/repositories"
	"github.com/SscSPs/l10n_addons/internal/models"
	"github.com/SscSPs/l10n_addons/internal/utils/mapping"
	"github.com/SscSPs/l10n_addons/internal/utils/pagination"
)

// documentSelect reads documents with their order links aggregated into one array.
const documentSelect = `
	SELECT d.document_id, d.sequence, d.company_id, d.state, d.sat_state, d.message,
	       d.attachment, d.attachment_name, d.attachment_uuid, d.attachment_origin,
	       d.cancellation_reason, d.substitution_uuid, d.periodicity, d.datetime,
	       COALESCE(array_agg(l.order_id ORDER BY l.order_id) FILTER (WHERE l.order_id IS NOT NULL), '{}') AS order_ids,
	       d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
	FROM edi_documents d
	LEFT JOIN edi_document_orders l ON l.document_id = d.document_id
`

const documentGroupBy = ` GROUP BY d.document_id `

const documentOrderBy = ` ORDER BY d.created_at DESC, d.sequence DESC `

// PgxDocumentRepository stores fiscal documents and their order links.
type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(pool *pgxpool.Pool) *PgxDocumentRepository {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

// FindDocumentByID retrieves a document.
func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	docs, err := r.findDocuments(ctx, documentSelect+` WHERE d.document_id = $1`+documentGroupBy, documentID)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: document %s", apperrors.ErrNotFound, documentID)
	}
	return &docs[0], nil
}

// FindDocumentByIDForUpdate locks the document row, then reads it.
func (r *PgxDocumentRepository) FindDocumentByIDForUpdate(ctx context.Context, documentID string) (*domain.Document, error) {
	var id string
	err := r.db(ctx).QueryRow(ctx, `SELECT document_id FROM edi_documents WHERE document_id = $1 FOR UPDATE;`, documentID).Scan(&id)
	if err != nil {
		return nil, mapError(err, "document "+documentID)
	}
	return r.FindDocumentByID(ctx, documentID)
}

// FindDocumentsByOrderIDs retrieves every document linked to one of orderIDs, newest first.
func (r *PgxDocumentRepository) FindDocumentsByOrderIDs(ctx context.Context, orderIDs []string) ([]domain.Document, error) {
	query := documentSelect + `
		WHERE d.document_id IN (SELECT document_id FROM edi_document_orders WHERE order_id = ANY($1))
	` + documentGroupBy + documentOrderBy
	return r.findDocuments(ctx, query, orderIDs)
}

// ListDocumentsByOrderID retrieves a page of the documents of one order, newest first.
func (r *PgxDocumentRepository) ListDocumentsByOrderID(ctx context.Context, orderID string, limit int, nextToken *string) ([]domain.Document, *string, error) {
	args := []any{orderID}
	where := ` WHERE d.document_id IN (SELECT document_id FROM edi_document_orders WHERE order_id = $1) `

	if nextToken != nil && *nextToken != "" {
		tokenCreatedAt, tokenSequence, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.Validationf("%v", err)
		}
		where += ` AND (d.created_at, d.sequence) < ($2, $3) `
		args = append(args, tokenCreatedAt, tokenSequence)
	}

	query := documentSelect + where + documentGroupBy + documentOrderBy
	if limit > 0 {
		// One extra row tells whether another page exists.
		query += fmt.Sprintf(` LIMIT %d`, limit+1)
	}

	docs, err := r.findDocuments(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}
	if limit <= 0 || len(docs) <= limit {
		return docs, nil, nil
	}
	page := docs[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(last.CreatedAt, last.Sequence)
	return page, &token, nil
}

// FindDocumentsNeedingSATUpdate retrieves documents the status synchronization should query.
func (r *PgxDocumentRepository) FindDocumentsNeedingSATUpdate(ctx context.Context, documentIDs []string) ([]domain.Document, error) {
	where := `
		WHERE d.state IN ($1, $2, $3, $4)
		  AND d.sat_state NOT IN ($5, $6)
	`
	args := []any{
		string(domain.InvoiceSent), string(domain.GlobalInvoiceSent),
		string(domain.InvoiceCancel), string(domain.GlobalInvoiceCancel),
		string(domain.SATValid), string(domain.SATCancelled),
	}
	if len(documentIDs) > 0 {
		where += ` AND d.document_id = ANY($7) `
		args = append(args, uniqueStrings(documentIDs))
	}
	return r.findDocuments(ctx, documentSelect+where+documentGroupBy+documentOrderBy, args...)
}

func (r *PgxDocumentRepository) findDocuments(ctx context.Context, query string, args ...any) ([]domain.Document, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "documents")
	}
	defer rows.Close()

	var ms []models.Document
	for rows.Next() {
		var m models.Document
		if err := rows.Scan(
			&m.DocumentID, &m.Sequence, &m.CompanyID, &m.State, &m.SATState, &m.Message,
			&m.Attachment, &m.AttachmentName, &m.AttachmentUUID, &m.AttachmentOrigin,
			&m.CancellationReason, &m.SubstitutionUUID, &m.Periodicity, &m.Datetime,
			&m.OrderIDs,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, mapError(err, "documents")
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "documents")
	}
	return mapping.ToDomainDocumentSlice(ms), nil
}

// SaveDocument persists a new document with its order links and assigns its sequence.
func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc *domain.Document) error {
	m := mapping.ToModelDocument(*doc)
	q := r.db(ctx)

	query := `
		INSERT INTO edi_documents (document_id, company_id, state, sat_state, message,
		                           attachment, attachment_name, attachment_uuid, attachment_origin,
		                           cancellation_reason, substitution_uuid, periodicity, datetime,
		                           created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING sequence;
	`
	err := q.QueryRow(ctx, query,
		m.DocumentID, m.CompanyID, m.State, m.SATState, m.Message,
		m.Attachment, m.AttachmentName, m.AttachmentUUID, m.AttachmentOrigin,
		m.CancellationReason, m.SubstitutionUUID, m.Periodicity, m.Datetime,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&doc.Sequence)
	if err != nil {
		return mapError(err, "document "+m.DocumentID)
	}
	return r.linkOrders(ctx, q, m.DocumentID, m.OrderIDs)
}

// UpdateDocument overwrites a document and replaces its order links. The sequence is kept.
func (r *PgxDocumentRepository) UpdateDocument(ctx context.Context, doc domain.Document) error {
	m := mapping.ToModelDocument(doc)
	q := r.db(ctx)

	query := `
		UPDATE edi_documents
		SET company_id = $2, state = $3, sat_state = $4, message = $5,
		    attachment = $6, attachment_name = $7, attachment_uuid = $8, attachment_origin = $9,
		    cancellation_reason = $10, substitution_uuid = $11, periodicity = $12, datetime = $13,
		    last_updated_at = $14, last_updated_by = $15
		WHERE document_id = $1;
	`
	tag, err := q.Exec(ctx, query,
		m.DocumentID, m.CompanyID, m.State, m.SATState, m.Message,
		m.Attachment, m.AttachmentName, m.AttachmentUUID, m.AttachmentOrigin,
		m.CancellationReason, m.SubstitutionUUID, m.Periodicity, m.Datetime,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapError(err, "document "+m.DocumentID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: document %s", apperrors.ErrNotFound, m.DocumentID)
	}

	ids := m.OrderIDs
	if ids == nil {
		ids = []string{}
	}
	if _, err := q.Exec(ctx, `DELETE FROM edi_document_orders WHERE document_id = $1 AND NOT (order_id = ANY($2));`,
		m.DocumentID, ids); err != nil {
		return mapError(err, "document links of "+m.DocumentID)
	}
	return r.linkOrders(ctx, q, m.DocumentID, ids)
}

func (r *PgxDocumentRepository) linkOrders(ctx context.Context, q querier, documentID string, orderIDs []string) error {
	if len(orderIDs) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, orderID := range orderIDs {
		batch.Queue(`INSERT INTO edi_document_orders (document_id, order_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;`,
			documentID, orderID)
	}
	return execBatch(ctx, q, batch, len(orderIDs), "document links of "+documentID)
}

// UpdateSATState writes only the SAT state and audit columns.
func (r *PgxDocumentRepository) UpdateSATState(ctx context.Context, documentID string, state domain.SATState, updatedAt time.Time, updatedBy string) (bool, error) {
	query := `
		UPDATE edi_documents
		SET sat_state = $2, last_updated_at = $3, last_updated_by = $4
		WHERE document_id = $1
		  AND sat_state <> $2
		  AND sat_state NOT IN ($5, $6);
	`
	tag, err := r.db(ctx).Exec(ctx, query,
		documentID, string(state), updatedAt, updatedBy,
		string(domain.SATValid), string(domain.SATCancelled),
	)
	if err != nil {
		return false, mapError(err, "document "+documentID)
	}
	return tag.RowsAffected() > 0, nil
}

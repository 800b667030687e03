package models

import "time"

// Document represents a row of edi_documents. OrderIDs is aggregated from edi_document_orders.
type Document struct {
	DocumentID         string    `db:"document_id"`
	Sequence           int64     `db:"sequence"`
	CompanyID          string    `db:"company_id"`
	State              string    `db:"state"`
	SATState           string    `db:"sat_state"`
	Message            string    `db:"message"`
	Attachment         []byte    `db:"attachment"`
	AttachmentName     string    `db:"attachment_name"`
	AttachmentUUID     string    `db:"attachment_uuid"`
	AttachmentOrigin   string    `db:"attachment_origin"`
	CancellationReason string    `db:"cancellation_reason"`
	SubstitutionUUID   string    `db:"substitution_uuid"`
	Periodicity        string    `db:"periodicity"`
	Datetime           time.Time `db:"datetime"`
	OrderIDs           []string  `db:"order_ids"`
	AuditFields
}

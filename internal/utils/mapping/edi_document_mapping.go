package mapping

import (
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/SscSPs/l10n_addons/internal/models"
)

// ToModelDocument converts a domain Document to a model Document
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID:         d.DocumentID,
		Sequence:           d.Sequence,
		CompanyID:          d.CompanyID,
		State:              string(d.State),
		SATState:           string(d.SATState),
		Message:            d.Message,
		Attachment:         d.Attachment,
		AttachmentName:     d.AttachmentName,
		AttachmentUUID:     d.AttachmentUUID,
		AttachmentOrigin:   d.AttachmentOrigin,
		CancellationReason: d.CancellationReason,
		SubstitutionUUID:   d.SubstitutionUUID,
		Periodicity:        d.Periodicity,
		Datetime:           d.Datetime,
		OrderIDs:           d.OrderIDs,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID:         m.DocumentID,
		Sequence:           m.Sequence,
		CompanyID:          m.CompanyID,
		OrderIDs:           m.OrderIDs,
		State:              domain.DocumentState(m.State),
		SATState:           domain.SATState(m.SATState),
		Message:            m.Message,
		Attachment:         m.Attachment,
		AttachmentName:     m.AttachmentName,
		AttachmentUUID:     m.AttachmentUUID,
		AttachmentOrigin:   m.AttachmentOrigin,
		CancellationReason: m.CancellationReason,
		SubstitutionUUID:   m.SubstitutionUUID,
		Periodicity:        m.Periodicity,
		Datetime:           m.Datetime,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDocumentSlice converts a slice of model Documents to a slice of domain Documents
func ToDomainDocumentSlice(ms []models.Document) []domain.Document {
	ds := make([]domain.Document, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDocument(m)
	}
	return ds
}

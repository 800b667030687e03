package dto

import (
	"time"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
)

// DocumentResponse defines the data returned for a fiscal document.
type DocumentResponse struct {
	DocumentID         string    `json:"documentID"`
	OrderIDs           []string  `json:"orderIDs"`
	State              string    `json:"state"`
	SATState           string    `json:"satState"`
	Message            string    `json:"message"`
	HasAttachment      bool      `json:"hasAttachment"`
	AttachmentName     string    `json:"attachmentName"`
	AttachmentUUID     string    `json:"attachmentUUID"`
	AttachmentOrigin   string    `json:"attachmentOrigin"`
	CancellationReason string    `json:"cancellationReason"`
	Periodicity        string    `json:"periodicity,omitempty"`
	RetryButtonNeeded  bool      `json:"retryButtonNeeded"`
	CancelButtonNeeded bool      `json:"cancelButtonNeeded"`
	Datetime           time.Time `json:"datetime"`
}

// ListDocumentsParams defines query parameters for listing the documents of an order.
type ListDocumentsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ListDocumentsResponse wraps a page of documents.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// CancelDocumentRequest defines the reason of a cancellation.
type CancelDocumentRequest struct {
	Reason           string `json:"reason" binding:"required,oneof=01 02 03 04"`
	SubstitutionUUID string `json:"substitutionUUID" binding:"required_if=Reason 01"`
}

// SATSyncRequest lists the documents to synchronize. Empty means every eligible document.
type SATSyncRequest struct {
	DocumentIDs []string `json:"documentIDs"`
}

// SATSyncResponse reports how many documents changed SAT state.
type SATSyncResponse struct {
	Checked int `json:"checked"`
	Updated int `json:"updated"`
}

// GlobalInvoiceWizardRequest opens the global invoice wizard for a set of orders.
type GlobalInvoiceWizardRequest struct {
	OrderIDs    []string `json:"orderIDs"`
	Periodicity string   `json:"periodicity" binding:"omitempty,periodicity"`
}

// GlobalInvoiceWizardResponse is the validated wizard content.
type GlobalInvoiceWizardResponse struct {
	OrderIDs    []string `json:"orderIDs"`
	Periodicity string   `json:"periodicity"`
}

// ToDocumentResponse converts a domain.Document to DocumentResponse DTO
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	orderIDs := d.OrderIDs
	if orderIDs == nil {
		orderIDs = []string{}
	}
	return DocumentResponse{
		DocumentID:         d.DocumentID,
		OrderIDs:           orderIDs,
		State:              string(d.State),
		SATState:           string(d.SATState),
		Message:            d.Message,
		HasAttachment:      d.HasAttachment(),
		AttachmentName:     d.AttachmentName,
		AttachmentUUID:     d.AttachmentUUID,
		AttachmentOrigin:   d.AttachmentOrigin,
		CancellationReason: d.CancellationReason,
		Periodicity:        d.Periodicity,
		RetryButtonNeeded:  d.RetryButtonNeeded,
		CancelButtonNeeded: d.CancelButtonNeeded,
		Datetime:           d.Datetime,
	}
}

// ToDocumentResponses converts a slice of domain.Document to []DocumentResponse.
func ToDocumentResponses(docs []domain.Document) []DocumentResponse {
	res := make([]DocumentResponse, len(docs))
	for i := range docs {
		res[i] = ToDocumentResponse(&docs[i])
	}
	return res
}

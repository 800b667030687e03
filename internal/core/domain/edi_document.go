package domain

import (
	"slices"
	"sort"
	"strings"
	"time"
)

// DocumentState is the lifecycle state of a fiscal document.
type DocumentState string

const (
	InvoiceSent         DocumentState = "invoice_sent"
	InvoiceSentFailed   DocumentState = "invoice_sent_failed"
	InvoiceCancel       DocumentState = "invoice_cancel"
	InvoiceCancelFailed DocumentState = "invoice_cancel_failed"

	GlobalInvoiceSent         DocumentState = "ginvoice_sent"
	GlobalInvoiceSentFailed   DocumentState = "ginvoice_sent_failed"
	GlobalInvoiceCancel       DocumentState = "ginvoice_cancel"
	GlobalInvoiceCancelFailed DocumentState = "ginvoice_cancel_failed"
)

// Lane groups document states by purpose.
type Lane string

const (
	LaneInvoice       Lane = "invoice"
	LaneGlobalInvoice Lane = "ginvoice"
)

// Step is the action a state belongs to, independently of its lane.
type Step string

const (
	StepSent         Step = "sent"
	StepSentFailed   Step = "sent_failed"
	StepCancel       Step = "cancel"
	StepCancelFailed Step = "cancel_failed"
)

// StateFor returns the state of a lane at a given step.
func StateFor(lane Lane, step Step) DocumentState {
	return DocumentState(string(lane) + "_" + string(step))
}

// Lane returns the purpose lane of the state.
func (s DocumentState) Lane() Lane {
	if strings.HasPrefix(string(s), string(LaneGlobalInvoice)+"_") {
		return LaneGlobalInvoice
	}
	return LaneInvoice
}

// Step returns the action step of the state.
func (s DocumentState) Step() Step {
	return Step(strings.TrimPrefix(string(s), string(s.Lane())+"_"))
}

// IsValid reports whether s is one of the known states.
func (s DocumentState) IsValid() bool {
	switch s {
	case InvoiceSent, InvoiceSentFailed, InvoiceCancel, InvoiceCancelFailed,
		GlobalInvoiceSent, GlobalInvoiceSentFailed, GlobalInvoiceCancel, GlobalInvoiceCancelFailed:
		return true
	}
	return false
}

// IsFailed reports whether the state records a failed remote attempt.
func (s DocumentState) IsFailed() bool {
	step := s.Step()
	return step == StepSentFailed || step == StepCancelFailed
}

// IsCancelClass reports whether the state belongs to a cancellation attempt.
func (s DocumentState) IsCancelClass() bool {
	step := s.Step()
	return step == StepCancel || step == StepCancelFailed
}

// SATState is the status of a document as verified by the tax authority.
type SATState string

const (
	SATNotChecked SATState = ""
	SATNotDefined SATState = "not_defined"
	SATValid      SATState = "valid"
	SATCancelled  SATState = "cancelled"
)

// ParseSATState maps a status string returned by the authority. Unknown values map to
// SATNotChecked and ok is false.
func ParseSATState(s string) (state SATState, ok bool) {
	switch SATState(strings.ToLower(strings.TrimSpace(s))) {
	case SATNotDefined:
		return SATNotDefined, true
	case SATValid:
		return SATValid, true
	case SATCancelled:
		return SATCancelled, true
	}
	return SATNotChecked, false
}

// IsTerminal reports whether the authority already confirmed the document.
func (s SATState) IsTerminal() bool {
	return s == SATValid || s == SATCancelled
}

// CFDI relation codes used in the attachment origin.
const (
	RelationSubstitution = "01"
	RelationCreditNote   = "03"
)

// Cancellation reason codes.
const (
	CancelReasonWithRelated    = "01"
	CancelReasonWithoutRelated = "02"
	CancelReasonNotExecuted    = "03"
	CancelReasonNominalGlobal  = "04"
)

// IsValidCancellationReason reports whether code is an accepted cancellation reason.
func IsValidCancellationReason(code string) bool {
	switch code {
	case CancelReasonWithRelated, CancelReasonWithoutRelated, CancelReasonNotExecuted, CancelReasonNominalGlobal:
		return true
	}
	return false
}

// BuildOrigin formats an attachment origin: "<relation code>|<uuid>".
func BuildOrigin(relationCode, uuid string) string {
	if uuid == "" {
		return ""
	}
	return relationCode + "|" + uuid
}

// ParseOrigin splits an attachment origin into its relation code and uuid.
func ParseOrigin(origin string) (relationCode string, uuid string, ok bool) {
	parts := strings.SplitN(origin, "|", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Document is one attempt to produce or cancel a signed fiscal record for one or more orders.
type Document struct {
	DocumentID         string        `json:"documentID"`
	Sequence           int64         `json:"-"` // Assigned by the repository on insert
	CompanyID          string        `json:"companyID"`
	OrderIDs           []string      `json:"orderIDs"`
	State              DocumentState `json:"state"`
	SATState           SATState      `json:"satState"`
	Message            string        `json:"message"`
	Attachment         []byte        `json:"-"`
	AttachmentName     string        `json:"attachmentName"`
	AttachmentUUID     string        `json:"attachmentUUID"`
	AttachmentOrigin   string        `json:"attachmentOrigin"`
	CancellationReason string        `json:"cancellationReason"`
	SubstitutionUUID   string        `json:"substitutionUUID"`
	Periodicity        string        `json:"periodicity"`
	Datetime           time.Time     `json:"datetime"`

	// Derived, see ComputeActionFlags.
	RetryButtonNeeded  bool `json:"retryButtonNeeded"`
	CancelButtonNeeded bool `json:"cancelButtonNeeded"`

	AuditFields
}

// HasAttachment reports whether a signed payload is attached.
func (d *Document) HasAttachment() bool {
	return len(d.Attachment) > 0
}

// NeedsSATUpdate reports whether the status synchronization should query this document.
func (d *Document) NeedsSATUpdate() bool {
	step := d.State.Step()
	return (step == StepSent || step == StepCancel) && !d.SATState.IsTerminal()
}

// LinkOrders adds order ids to the document, keeping the set sorted and unique.
func (d *Document) LinkOrders(orderIDs ...string) {
	seen := make(map[string]bool, len(d.OrderIDs)+len(orderIDs))
	merged := make([]string, 0, len(d.OrderIDs)+len(orderIDs))
	for _, id := range append(append([]string{}, d.OrderIDs...), orderIDs...) {
		if seen[id] {
			continue
		}
		seen[id] = true
		merged = append(merged, id)
	}
	sort.Strings(merged)
	d.OrderIDs = merged
}

// SetOrders replaces the linked orders.
func (d *Document) SetOrders(orderIDs ...string) {
	d.OrderIDs = nil
	d.LinkOrders(orderIDs...)
}

// LinksExactly reports whether the document is linked to orderIDs and nothing else.
func (d *Document) LinksExactly(orderIDs []string) bool {
	var want, have Document
	want.LinkOrders(orderIDs...)
	have.LinkOrders(d.OrderIDs...)
	return slices.Equal(want.OrderIDs, have.OrderIDs)
}

// HasOrder reports whether the document is linked to orderID.
func (d *Document) HasOrder(orderID string) bool {
	for _, id := range d.OrderIDs {
		if id == orderID {
			return true
		}
	}
	return false
}

// ComputeActionFlags sets the retry/cancel flags of every document. A sent document can be
// cancelled until a cancellation attempt exists for its uuid, so at most one action is
// offered at a time.
func ComputeActionFlags(docs []Document) {
	cancelled := make(map[string]bool)
	for _, d := range docs {
		if d.State.IsCancelClass() && d.AttachmentUUID != "" {
			cancelled[d.AttachmentUUID] = true
		}
	}
	for i := range docs {
		d := &docs[i]
		d.RetryButtonNeeded = d.State.IsFailed()
		d.CancelButtonNeeded = d.State.Step() == StepSent && d.AttachmentUUID != "" && !cancelled[d.AttachmentUUID]
	}
}

// SortDocuments orders documents newest first. Ties are broken by insertion sequence.
func SortDocuments(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		if !docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].CreatedAt.After(docs[j].CreatedAt)
		}
		return docs[i].Sequence > docs[j].Sequence
	})
}

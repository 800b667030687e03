package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDocumentState_LaneAndStep(t *testing.T) {
	tests := []struct {
		state domain.DocumentState
		lane  domain.Lane
		step  domain.Step
	}{
		{domain.InvoiceSent, domain.LaneInvoice, domain.StepSent},
		{domain.InvoiceCancelFailed, domain.LaneInvoice, domain.StepCancelFailed},
		{domain.GlobalInvoiceSentFailed, domain.LaneGlobalInvoice, domain.StepSentFailed},
		{domain.GlobalInvoiceCancel, domain.LaneGlobalInvoice, domain.StepCancel},
	}
	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assert.Equal(t, tt.lane, tt.state.Lane())
			assert.Equal(t, tt.step, tt.state.Step())
			assert.Equal(t, tt.state, domain.StateFor(tt.lane, tt.step))
			assert.True(t, tt.state.IsValid())
		})
	}
	assert.False(t, domain.DocumentState("ginvoice_unknown").IsValid())
}

func TestParseSATState(t *testing.T) {
	tests := []struct {
		raw   string
		state domain.SATState
		ok    bool
	}{
		{"valid", domain.SATValid, true},
		{" Cancelled ", domain.SATCancelled, true},
		{"not_defined", domain.SATNotDefined, true},
		{"vigente?", domain.SATNotChecked, false},
		{"", domain.SATNotChecked, false},
	}
	for _, tt := range tests {
		state, ok := domain.ParseSATState(tt.raw)
		assert.Equal(t, tt.state, state, tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
	}
}

func TestOrigin(t *testing.T) {
	assert.Equal(t, "01|abc", domain.BuildOrigin(domain.RelationSubstitution, "abc"))
	assert.Equal(t, "", domain.BuildOrigin(domain.RelationCreditNote, ""))

	code, uuid, ok := domain.ParseOrigin("03|abc")
	assert.True(t, ok)
	assert.Equal(t, "03", code)
	assert.Equal(t, "abc", uuid)

	_, _, ok = domain.ParseOrigin("03")
	assert.False(t, ok)
}

func TestComputeActionFlags(t *testing.T) {
	docs := []domain.Document{
		{DocumentID: "failed", State: domain.GlobalInvoiceSentFailed},
		{DocumentID: "sent", State: domain.InvoiceSent, AttachmentUUID: "u1"},
		{DocumentID: "sent-cancelling", State: domain.InvoiceSent, AttachmentUUID: "u2"},
		{DocumentID: "cancel-failed", State: domain.InvoiceCancelFailed, AttachmentUUID: "u2"},
		{DocumentID: "cancelled", State: domain.GlobalInvoiceCancel, AttachmentUUID: "u3"},
	}
	domain.ComputeActionFlags(docs)

	flags := map[string][2]bool{}
	for _, d := range docs {
		flags[d.DocumentID] = [2]bool{d.RetryButtonNeeded, d.CancelButtonNeeded}
		assert.False(t, d.RetryButtonNeeded && d.CancelButtonNeeded, d.DocumentID)
	}
	assert.Equal(t, [2]bool{true, false}, flags["failed"])
	assert.Equal(t, [2]bool{false, true}, flags["sent"])
	assert.Equal(t, [2]bool{false, false}, flags["sent-cancelling"])
	assert.Equal(t, [2]bool{true, false}, flags["cancel-failed"])
	assert.Equal(t, [2]bool{false, false}, flags["cancelled"])
}

func TestDocument_NeedsSATUpdate(t *testing.T) {
	assert.True(t, (&domain.Document{State: domain.GlobalInvoiceSent, SATState: domain.SATNotDefined}).NeedsSATUpdate())
	assert.True(t, (&domain.Document{State: domain.InvoiceCancel}).NeedsSATUpdate())
	assert.False(t, (&domain.Document{State: domain.InvoiceSent, SATState: domain.SATValid}).NeedsSATUpdate())
	assert.False(t, (&domain.Document{State: domain.InvoiceSentFailed}).NeedsSATUpdate())
}

func TestDocument_LinkOrders(t *testing.T) {
	d := domain.Document{OrderIDs: []string{"b"}}
	d.LinkOrders("c", "a", "b")
	assert.Equal(t, []string{"a", "b", "c"}, d.OrderIDs)
	assert.True(t, d.HasOrder("c"))
	assert.False(t, d.HasOrder("z"))
}

func TestDocument_SetOrdersAndLinksExactly(t *testing.T) {
	d := domain.Document{OrderIDs: []string{"b", "a"}}
	assert.True(t, d.LinksExactly([]string{"a", "b", "a"}))
	assert.False(t, d.LinksExactly([]string{"a"}))
	assert.False(t, d.LinksExactly([]string{"a", "b", "c"}))

	d.SetOrders("c", "a")
	assert.Equal(t, []string{"a", "c"}, d.OrderIDs)
	assert.False(t, d.HasOrder("b"))
}

func TestSortDocuments(t *testing.T) {
	now := time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)
	docs := []domain.Document{
		{DocumentID: "old", Sequence: 1, AuditFields: domain.AuditFields{CreatedAt: now}},
		{DocumentID: "newest", Sequence: 3, AuditFields: domain.AuditFields{CreatedAt: now.Add(time.Minute)}},
		{DocumentID: "same-time-later", Sequence: 2, AuditFields: domain.AuditFields{CreatedAt: now}},
	}
	domain.SortDocuments(docs)
	assert.Equal(t, "newest", docs[0].DocumentID)
	assert.Equal(t, "same-time-later", docs[1].DocumentID)
	assert.Equal(t, "old", docs[2].DocumentID)
}

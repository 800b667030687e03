package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/l10n_addons/internal/apperrors"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/SscSPs/l10n_addons/internal/repositories/database/memory"
)

func TestRunInTxRollsBackOnError(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.RunInTx(ctx, func(ctx context.Context) error {
		require.NoError(t, store.SaveCompany(ctx, domain.Company{CompanyID: "c1", CountryCode: "MX"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = store.FindCompanyByID(ctx, "c1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRunInTxNestedJoinsOuter(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	err := store.RunInTx(ctx, func(ctx context.Context) error {
		return store.RunInTx(ctx, func(ctx context.Context) error {
			return store.SaveCompany(ctx, domain.Company{CompanyID: "c1"})
		})
	})
	require.NoError(t, err)

	c, err := store.FindCompanyByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", c.CompanyID)
}

func TestSaveDuplicate(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.SavePayment(ctx, domain.Payment{PaymentID: "p1"}))
	assert.ErrorIs(t, store.SavePayment(ctx, domain.Payment{PaymentID: "p1"}), apperrors.ErrDuplicate)
	assert.ErrorIs(t, store.UpdatePayment(ctx, domain.Payment{PaymentID: "p2"}), apperrors.ErrNotFound)
}

func TestOrdersAreCopied(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	order := domain.Order{
		OrderID: "o1",
		Lines:   []domain.OrderLine{{LineID: "l1", Quantity: decimal.NewFromInt(2)}},
	}
	require.NoError(t, store.SaveOrder(ctx, order))

	got, err := store.FindOrderByID(ctx, "o1")
	require.NoError(t, err)
	got.Lines[0].RefundedQuantity = decimal.NewFromInt(1)

	again, err := store.FindOrderByID(ctx, "o1")
	require.NoError(t, err)
	assert.True(t, again.Lines[0].RefundedQuantity.IsZero())

	require.NoError(t, store.UpdateOrder(ctx, *got))
	again, err = store.FindOrderByID(ctx, "o1")
	require.NoError(t, err)
	assert.True(t, again.Lines[0].RefundedQuantity.Equal(decimal.NewFromInt(1)))
}

func TestFindOrdersByIDsForUpdateMissing(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.SaveOrder(ctx, domain.Order{OrderID: "o1"}))

	_, err := store.FindOrdersByIDsForUpdate(ctx, []string{"o1", "o2"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindRefundOrdersOf(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.SaveOrder(ctx, domain.Order{OrderID: "o1"}))
	require.NoError(t, store.SaveOrder(ctx, domain.Order{
		OrderID: "r1",
		Lines:   []domain.OrderLine{{LineID: "rl1", RefundedOrderID: "o1", RefundedOrderLineID: "l1"}},
	}))

	refunds, err := store.FindRefundOrdersOf(ctx, []string{"o1"})
	require.NoError(t, err)
	require.Len(t, refunds, 1)
	assert.Equal(t, "r1", refunds[0].OrderID)
}

func TestListDocumentsByOrderIDPaginates(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	for _, id := range []string{"d1", "d2", "d3"} {
		doc := &domain.Document{
			DocumentID:  id,
			OrderIDs:    []string{"o1"},
			State:       domain.InvoiceSentFailed,
			AuditFields: domain.NewAuditFields("u1", now),
		}
		require.NoError(t, store.SaveDocument(ctx, doc))
	}

	page, next, err := store.ListDocumentsByOrderID(ctx, "o1", 2, nil)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.NotNil(t, next)
	assert.Equal(t, "d3", page[0].DocumentID)
	assert.Equal(t, "d2", page[1].DocumentID)

	page, next, err = store.ListDocumentsByOrderID(ctx, "o1", 2, next)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Nil(t, next)
	assert.Equal(t, "d1", page[0].DocumentID)
}

func TestFindDocumentsNeedingSATUpdate(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	docs := []*domain.Document{
		{DocumentID: "sent", State: domain.GlobalInvoiceSent},
		{DocumentID: "valid", State: domain.GlobalInvoiceSent, SATState: domain.SATValid},
		{DocumentID: "failed", State: domain.GlobalInvoiceSentFailed},
		{DocumentID: "cancel", State: domain.InvoiceCancel, SATState: domain.SATNotDefined},
	}
	for _, d := range docs {
		require.NoError(t, store.SaveDocument(ctx, d))
	}

	all, err := store.FindDocumentsNeedingSATUpdate(ctx, nil)
	require.NoError(t, err)
	ids := make([]string, 0, len(all))
	for _, d := range all {
		ids = append(ids, d.DocumentID)
	}
	assert.ElementsMatch(t, []string{"sent", "cancel"}, ids)

	some, err := store.FindDocumentsNeedingSATUpdate(ctx, []string{"valid", "sent", "sent"})
	require.NoError(t, err)
	require.Len(t, some, 1)
	assert.Equal(t, "sent", some[0].DocumentID)
}

func TestUpdateSATState(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	doc := &domain.Document{DocumentID: "d1", State: domain.GlobalInvoiceSent, SATState: domain.SATNotDefined, OrderIDs: []string{"o1", "o2"}}
	require.NoError(t, store.SaveDocument(ctx, doc))
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	changed, err := store.UpdateSATState(ctx, "d1", domain.SATNotDefined, now, "system:sat_sync")
	require.NoError(t, err)
	assert.False(t, changed, "same state")

	changed, err = store.UpdateSATState(ctx, "d1", domain.SATValid, now, "system:sat_sync")
	require.NoError(t, err)
	assert.True(t, changed)

	stored, err := store.FindDocumentByID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.SATValid, stored.SATState)
	assert.Equal(t, "system:sat_sync", stored.LastUpdatedBy)
	assert.Equal(t, now, stored.LastUpdatedAt)
	assert.Equal(t, []string{"o1", "o2"}, stored.OrderIDs)

	changed, err = store.UpdateSATState(ctx, "d1", domain.SATCancelled, now, "system:sat_sync")
	require.NoError(t, err)
	assert.False(t, changed, "terminal states are final")

	changed, err = store.UpdateSATState(ctx, "missing", domain.SATValid, now, "system:sat_sync")
	require.NoError(t, err)
	assert.False(t, changed)
}

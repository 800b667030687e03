package sandbox

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/SscSPs/l10n_addons/internal/core/ports/gateways"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Lifecycle(t *testing.T) {
	ctx := context.Background()
	p := New()

	p.FailNext(errors.New("boom"))
	_, err := p.Sign(ctx, gateways.SignRequest{Lane: domain.LaneInvoice, XML: []byte("<x/>")})
	assert.EqualError(t, err, "boom")

	res, err := p.Sign(ctx, gateways.SignRequest{Lane: domain.LaneInvoice, XML: []byte("<x/>")})
	require.NoError(t, err)
	assert.NotEmpty(t, res.UUID)

	statuses, err := p.FetchStatuses(ctx, []string{res.UUID, "unknown"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{res.UUID: "valid"}, statuses)

	require.NoError(t, p.Cancel(ctx, gateways.CancelRequest{UUID: res.UUID, Reason: "02"}))
	statuses, _ = p.FetchStatuses(ctx, []string{res.UUID})
	assert.Equal(t, "cancelled", statuses[res.UUID])

	assert.Error(t, p.Cancel(ctx, gateways.CancelRequest{UUID: "unknown"}))
}

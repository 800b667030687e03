package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/l10n_addons/internal/adapters/pac"
	"github.com/SscSPs/l10n_addons/internal/adapters/sandbox"
	"github.com/SscSPs/l10n_addons/internal/adapters/sat"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/SscSPs/l10n_addons/internal/dto"
	"github.com/SscSPs/l10n_addons/internal/platform/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_MemoryBackendInTestMode(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{StorageBackend: config.StorageMemory, PACTestMode: true}

	a, err := New(ctx, cfg, discardLogger(), true)
	require.NoError(t, err)
	defer a.Close()

	company, err := a.Services.Company.CreateCompany(ctx, dto.CreateCompanyRequest{
		Name:         "ESCUELA KEMPER URGATE",
		VAT:          "EKU9003173C9",
		CountryCode:  "MX",
		ZIP:          "20928",
		FiscalRegime: "601",
	})
	require.NoError(t, err)

	order, err := a.Services.Order.CreateOrder(ctx, dto.CreateOrderRequest{
		CompanyID: company.CompanyID,
		Lines: []dto.OrderLineRequest{
			{ProductRef: "PROD-1", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100), TaxRate: decimal.RequireFromString("0.16")},
		},
	}, "tester")
	require.NoError(t, err)

	doc, err := a.Services.EDIDocument.GlobalInvoiceTrySend(ctx, []string{order.OrderID}, domain.DefaultPeriodicity, "tester")
	require.NoError(t, err)
	assert.Equal(t, domain.GlobalInvoiceSent, doc.State)
	assert.NotEmpty(t, doc.AttachmentUUID)
}

func TestNewGateways(t *testing.T) {
	gw := newGateways(&config.Config{PACTestMode: true}, discardLogger())
	assert.IsType(t, &sandbox.Provider{}, gw.PAC)
	assert.IsType(t, &sandbox.Provider{}, gw.SAT)

	gw = newGateways(&config.Config{PACURL: "https://pac.example", SATURL: "https://sat.example"}, discardLogger())
	assert.IsType(t, &pac.Client{}, gw.PAC)
	assert.IsType(t, &sat.Client{}, gw.SAT)
}

package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/l10n_addons/internal/adapters/sandbox"
	"github.com/SscSPs/l10n_addons/internal/apperrors"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/SscSPs/l10n_addons/internal/core/services"
	"github.com/SscSPs/l10n_addons/internal/dto"
	"github.com/SscSPs/l10n_addons/internal/repositories/database/memory"
)

func TestCreateOrder_ComputesTotals(t *testing.T) {
	ctx := context.Background()
	provider := sandbox.New()
	svc := services.NewServiceContainer(memory.NewRepositoryProvider(memory.NewStore()), services.Gateways{PAC: provider, SAT: provider})
	company, err := svc.Company.CreateCompany(ctx, dto.CreateCompanyRequest{Name: "Demo", VAT: "eku9003173c9", CountryCode: "mx"})
	require.NoError(t, err)
	assert.Equal(t, "EKU9003173C9", company.VAT)
	assert.Equal(t, domain.CountryMexico, company.CountryCode)
	assert.Equal(t, "MXN", company.CurrencyCode)

	order, err := svc.Order.CreateOrder(ctx, dto.CreateOrderRequest{
		CompanyID: company.CompanyID,
		Lines: []dto.OrderLineRequest{
			{ProductRef: "A", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.RequireFromString("10.50"), TaxRate: decimal.RequireFromString("0.16"), Discount: decimal.NewFromInt(20)},
			{ProductRef: "B", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(5)},
		},
	}, uuid.NewString())
	require.NoError(t, err)

	// 3 * 10.50 * 0.8 = 25.20, taxed 29.23
	assert.Equal(t, "25.2", order.Lines[0].PriceSubtotal.String())
	assert.Equal(t, "29.23", order.Lines[0].PriceSubtotalIncl.String())
	assert.Equal(t, "34.23", order.AmountTotal.String())
	assert.NotEmpty(t, order.UID)
	assert.Contains(t, order.Name, "Order ")

	_, status, err := svc.Order.GetOrder(ctx, order.OrderID)
	require.NoError(t, err)
	assert.True(t, status.IsCFDINeeded)
	assert.Equal(t, domain.CFDIStateNone, status.CFDIState)

	_, err = svc.Order.CreateOrder(ctx, dto.CreateOrderRequest{
		CompanyID: company.CompanyID,
		Lines:     []dto.OrderLineRequest{{ProductRef: "A", Quantity: decimal.NewFromInt(-1), UnitPrice: decimal.NewFromInt(1)}},
	}, "u1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Order.CreateOrder(ctx, dto.CreateOrderRequest{
		CompanyID: uuid.NewString(),
		Lines:     []dto.OrderLineRequest{{ProductRef: "A", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)}},
	}, "u1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

package cfdi

import (
	"testing"
	"time"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCompany = domain.Company{
	CompanyID:    "c1",
	Name:         "ESCUELA KEMPER URGATE",
	VAT:          "EKU9003173C9",
	CountryCode:  domain.CountryMexico,
	ZIP:          "20928",
	FiscalRegime: "601",
	CurrencyCode: "MXN",
}

func line(id, orderID string, qty, excl, incl string) domain.OrderLine {
	return domain.OrderLine{
		LineID:            id,
		OrderID:           orderID,
		ProductRef:        "P1",
		Description:       "product",
		Quantity:          decimal.RequireFromString(qty),
		PriceSubtotal:     decimal.RequireFromString(excl),
		PriceSubtotalIncl: decimal.RequireFromString(incl),
	}
}

func TestBuild_GlobalInvoiceNetsRefunds(t *testing.T) {
	o1 := domain.Order{OrderID: "o1", Name: "Shop/0001", Lines: []domain.OrderLine{line("l1", "o1", "10", "1000", "1160")}}
	o2 := domain.Order{OrderID: "o2", Name: "Shop/0002", Lines: []domain.OrderLine{line("l2", "o2", "1", "100", "116")}}
	refund := line("l3", "o3", "-2", "-200", "-232")
	refund.RefundedOrderLineID, refund.RefundedOrderID = "l1", "o1"
	o3 := domain.Order{OrderID: "o3", Name: "Shop/0003", Lines: []domain.OrderLine{refund}}

	out, err := Build(Input{
		Company:     testCompany,
		Orders:      []domain.Order{o1, o2, o3},
		Lane:        domain.LaneGlobalInvoice,
		Periodicity: domain.PeriodicityMonthly,
		Date:        time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	s := string(out)

	assert.Contains(t, s, `<cfdi:Comprobante xmlns:cfdi="http://www.sat.gob.mx/cfd/4"`)
	assert.Contains(t, s, `TipoDeComprobante="I"`)
	assert.Contains(t, s, `Periodicidad="04" Meses="03" Año="2024"`)
	assert.Contains(t, s, `Rfc="XAXX010101000"`)
	assert.Contains(t, s, `NoIdentificacion="Shop/0001"`)
	assert.NotContains(t, s, `NoIdentificacion="Shop/0003"`)
	assert.Contains(t, s, `Importe="800.00"`)
	assert.Contains(t, s, `SubTotal="900.00"`)
	assert.Contains(t, s, `Total="1044.00"`)
	assert.Contains(t, s, `TasaOCuota="0.160000"`)
	assert.Contains(t, s, `TotalImpuestosTrasladados="144.00"`)
	assert.NotContains(t, s, "CfdiRelacionados")
}

func TestBuild_RefundInvoiceIsEgressWithRelation(t *testing.T) {
	refund := line("l3", "o3", "-2", "-200", "-232")
	refund.RefundedOrderLineID, refund.RefundedOrderID = "l1", "o1"
	o3 := domain.Order{OrderID: "o3", Name: "Shop/0003", Lines: []domain.OrderLine{refund}}

	out, err := Build(Input{
		Company: testCompany,
		Orders:  []domain.Order{o3},
		Lane:    domain.LaneInvoice,
		Origin:  "03|123e4567-e89b-12d3-a456-426614174000",
		Date:    time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	s := string(out)

	assert.Contains(t, s, `TipoDeComprobante="E"`)
	assert.Contains(t, s, `TipoRelacion="03"`)
	assert.Contains(t, s, `UUID="123e4567-e89b-12d3-a456-426614174000"`)
	assert.Contains(t, s, `Cantidad="2.000000"`)
	assert.Contains(t, s, `Total="232.00"`)
	assert.NotContains(t, s, "InformacionGlobal")
}

func TestBuild_NamedCustomer(t *testing.T) {
	o := domain.Order{OrderID: "o1", PartnerID: "Customer", PartnerVAT: "XIA190128J61", Lines: []domain.OrderLine{line("l1", "o1", "1", "100", "100")}}

	out, err := Build(Input{Company: testCompany, Orders: []domain.Order{o}, Lane: domain.LaneInvoice, Date: time.Now()})
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, `Rfc="XIA190128J61"`)
	assert.Contains(t, s, `UsoCFDI="G03"`)
	assert.Contains(t, s, `ObjetoImp="01"`)
	assert.NotContains(t, s, "TotalImpuestosTrasladados")
}

func TestBuild_NothingToInvoice(t *testing.T) {
	_, err := Build(Input{Company: testCompany, Lane: domain.LaneInvoice})
	assert.ErrorIs(t, err, ErrNothingToInvoice)

	o1 := domain.Order{OrderID: "o1", Lines: []domain.OrderLine{line("l1", "o1", "1", "100", "116")}}
	refund := line("l2", "o2", "-1", "-100", "-116")
	refund.RefundedOrderLineID, refund.RefundedOrderID = "l1", "o1"
	o2 := domain.Order{OrderID: "o2", Lines: []domain.OrderLine{refund}}
	_, err = Build(Input{Company: testCompany, Orders: []domain.Order{o1, o2}, Lane: domain.LaneGlobalInvoice, Periodicity: "04"})
	assert.ErrorIs(t, err, ErrNothingToInvoice)
}

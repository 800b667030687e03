package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a row of pos_orders.
type Order struct {
	OrderID     string          `db:"order_id"`
	CompanyID   string          `db:"company_id"`
	Name        string          `db:"name"`
	UID         string          `db:"uid"`
	PartnerID   string          `db:"partner_id"`
	PartnerVAT  string          `db:"partner_vat"`
	AmountTotal decimal.Decimal `db:"amount_total"`
	InvoiceID   *string         `db:"invoice_id"` // Nullable
	OrderDate   time.Time       `db:"order_date"`
	AuditFields
}

// OrderLine represents a row of pos_order_lines.
type OrderLine struct {
	LineID              string          `db:"line_id"`
	OrderID             string          `db:"order_id"`
	LineNo              int             `db:"line_no"`
	ProductRef          string          `db:"product_ref"`
	Description         string          `db:"description"`
	Quantity            decimal.Decimal `db:"quantity"`
	UnitPrice           decimal.Decimal `db:"unit_price"`
	PriceSubtotal       decimal.Decimal `db:"price_subtotal"`
	PriceSubtotalIncl   decimal.Decimal `db:"price_subtotal_incl"`
	RefundedOrderLineID *string         `db:"refunded_order_line_id"` // Nullable
	RefundedOrderID     *string         `db:"refunded_order_id"`      // Nullable
	RefundedQuantity    decimal.Decimal `db:"refunded_quantity"`
}

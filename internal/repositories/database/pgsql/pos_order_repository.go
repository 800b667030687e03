package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/l10n_addons/internal/apperrors"
	"github.com/SscSPs/l10n_addons/internal/core/domain"
	portsrepo "github.com/SscSPs/l10n_addons/internal/core/ports/repositories"
	"github.com/SscSPs/l10n_addons/internal/models"
	"github.com/SscSPs/l10n_addons/internal/utils/mapping"
)

const orderColumns = `o.order_id, o.company_id, o.name, o.uid, o.partner_id, o.partner_vat, o.amount_total,
	o.invoice_id, o.order_date, o.created_at, o.created_by, o.last_updated_at, o.last_updated_by`

const orderLineColumns = `line_id, order_id, line_no, product_ref, description, quantity, unit_price,
	price_subtotal, price_subtotal_incl, refunded_order_line_id, refunded_order_id, refunded_quantity`

// PgxOrderRepository stores point-of-sale orders and their lines.
type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(pool *pgxpool.Pool) *PgxOrderRepository {
	return &PgxOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

// FindOrderByID retrieves an order with its lines.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	orders, err := r.findOrders(ctx, `SELECT `+orderColumns+` FROM pos_orders o WHERE o.order_id = $1;`, orderID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, orderID)
	}
	return &orders[0], nil
}

// FindOrdersByIDsForUpdate retrieves orders sorted by id and locks their rows.
func (r *PgxOrderRepository) FindOrdersByIDsForUpdate(ctx context.Context, orderIDs []string) ([]domain.Order, error) {
	ids := uniqueStrings(orderIDs)
	query := `SELECT ` + orderColumns + ` FROM pos_orders o WHERE o.order_id = ANY($1) ORDER BY o.order_id FOR UPDATE;`
	orders, err := r.findOrders(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	if len(orders) != len(ids) {
		found := make(map[string]bool, len(orders))
		for _, o := range orders {
			found[o.OrderID] = true
		}
		for _, id := range ids {
			if !found[id] {
				return nil, fmt.Errorf("%w: order %s", apperrors.ErrNotFound, id)
			}
		}
	}
	return orders, nil
}

// FindRefundOrdersOf retrieves the refunds of the given orders sorted by id.
func (r *PgxOrderRepository) FindRefundOrdersOf(ctx context.Context, parentOrderIDs []string) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM pos_orders o
		WHERE o.order_id IN (
			SELECT DISTINCT order_id FROM pos_order_lines WHERE refunded_order_id = ANY($1)
		)
		ORDER BY o.order_id;
	`
	return r.findOrders(ctx, query, parentOrderIDs)
}

// findOrders runs an order query and loads the lines of every returned order.
func (r *PgxOrderRepository) findOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "orders")
	}
	var heads []models.Order
	for rows.Next() {
		var m models.Order
		if err := rows.Scan(
			&m.OrderID, &m.CompanyID, &m.Name, &m.UID, &m.PartnerID, &m.PartnerVAT, &m.AmountTotal,
			&m.InvoiceID, &m.OrderDate, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			rows.Close()
			return nil, mapError(err, "orders")
		}
		heads = append(heads, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "orders")
	}
	if len(heads) == 0 {
		return nil, nil
	}

	ids := make([]string, len(heads))
	for i, h := range heads {
		ids[i] = h.OrderID
	}
	lines, err := r.findLines(ctx, ids)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, len(heads))
	for i, h := range heads {
		orders[i] = mapping.ToDomainOrder(h, lines[h.OrderID])
	}
	return orders, nil
}

func (r *PgxOrderRepository) findLines(ctx context.Context, orderIDs []string) (map[string][]models.OrderLine, error) {
	query := `SELECT ` + orderLineColumns + ` FROM pos_order_lines WHERE order_id = ANY($1) ORDER BY order_id, line_no;`
	rows, err := r.db(ctx).Query(ctx, query, orderIDs)
	if err != nil {
		return nil, mapError(err, "order lines")
	}
	defer rows.Close()

	lines := make(map[string][]models.OrderLine, len(orderIDs))
	for rows.Next() {
		var l models.OrderLine
		if err := rows.Scan(
			&l.LineID, &l.OrderID, &l.LineNo, &l.ProductRef, &l.Description, &l.Quantity, &l.UnitPrice,
			&l.PriceSubtotal, &l.PriceSubtotalIncl, &l.RefundedOrderLineID, &l.RefundedOrderID, &l.RefundedQuantity,
		); err != nil {
			return nil, mapError(err, "order lines")
		}
		lines[l.OrderID] = append(lines[l.OrderID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "order lines")
	}
	return lines, nil
}

// SaveOrder persists a new order and its lines.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	m, lines := mapping.ToModelOrder(order)
	q := r.db(ctx)

	query := `
		INSERT INTO pos_orders (order_id, company_id, name, uid, partner_id, partner_vat, amount_total,
		                        invoice_id, order_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	if _, err := q.Exec(ctx, query,
		m.OrderID, m.CompanyID, m.Name, m.UID, m.PartnerID, m.PartnerVAT, m.AmountTotal,
		m.InvoiceID, m.OrderDate, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	); err != nil {
		return mapError(err, "order "+m.OrderID)
	}

	if len(lines) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	lineQuery := `INSERT INTO pos_order_lines (` + orderLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	for _, l := range lines {
		batch.Queue(lineQuery,
			l.LineID, l.OrderID, l.LineNo, l.ProductRef, l.Description, l.Quantity, l.UnitPrice,
			l.PriceSubtotal, l.PriceSubtotalIncl, l.RefundedOrderLineID, l.RefundedOrderID, l.RefundedQuantity,
		)
	}
	return execBatch(ctx, q, batch, len(lines), "order lines of "+m.OrderID)
}

// UpdateOrder updates the invoice link and the refunded quantities of the lines.
func (r *PgxOrderRepository) UpdateOrder(ctx context.Context, order domain.Order) error {
	m, lines := mapping.ToModelOrder(order)
	q := r.db(ctx)

	query := `
		UPDATE pos_orders
		SET invoice_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE order_id = $1;
	`
	tag, err := q.Exec(ctx, query, m.OrderID, m.InvoiceID, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return mapError(err, "order "+m.OrderID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: order %s", apperrors.ErrNotFound, m.OrderID)
	}

	if len(lines) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, l := range lines {
		batch.Queue(`UPDATE pos_order_lines SET refunded_quantity = $3 WHERE order_id = $1 AND line_id = $2;`,
			l.OrderID, l.LineID, l.RefundedQuantity)
	}
	return execBatch(ctx, q, batch, len(lines), "order lines of "+m.OrderID)
}

// execBatch sends a batch of n statements and reports the first failure.
func execBatch(ctx context.Context, q querier, batch *pgx.Batch, n int, what string) error {
	br := q.SendBatch(ctx, batch)
	for i := 0; i < n; i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return mapError(err, what)
		}
	}
	return mapError(br.Close(), what)
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

package repository

import (
	"context"

	"keyshop/internal/domain/order"
	"keyshop/internal/infra"
	"keyshop/internal/infra/db"
	"keyshop/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertOrder = `
INSERT INTO orders (id, user_id, payment_method, status, amount_cents)
VALUES ($1, $2, $3, $4, $5)
`

const insertOrderItem = `
INSERT INTO order_items (id, order_id, product_id, unit_price_cents, status)
VALUES ($1, $2, $3, $4, $5)
`

const findOrderByID = `
SELECT id, user_id, payment_method, status, amount_cents, created_at, updated_at
FROM orders
WHERE id = $1
`

const findOrderItemsByOrder = `
SELECT id, product_id, unit_price_cents, status
FROM order_items
WHERE order_id = $1
ORDER BY created_at, id
`

const updateOrderStatus = `
UPDATE orders SET status = $2, updated_at = now() WHERE id = $1
`

const updateOrderItemsStatus = `
UPDATE order_items SET status = $2, updated_at = now() WHERE order_id = $1
`

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(ctx context.Context, dbtx db.DBTX, o *order.Order) error {
	_, err := dbtx.Exec(ctx, insertOrder,
		o.ID(), o.UserID(), string(o.PaymentMethod()), string(o.Status()), o.AmountCents())
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	for _, item := range o.Items() {
		_, err := dbtx.Exec(ctx, insertOrderItem,
			item.ID(), o.ID(), item.ProductID(), item.UnitPriceCents(), string(item.Status()))
		if err != nil {
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}
	return nil
}

// FindByID loads an order with its items. The lock flag takes the order row
// FOR UPDATE so fulfillment and cancellation of the same order serialize.
func (r *OrderRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID, lock bool) (*order.Order, error) {
	query := findOrderByID
	if lock {
		query += " FOR UPDATE"
	}

	var (
		orderID       uuid.UUID
		userID        uuid.UUID
		paymentMethod string
		status        string
		amountCents   int64
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&orderID, &userID, &paymentMethod, &status, &amountCents, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	items, err := r.findItems(ctx, dbtx, orderID)
	if err != nil {
		return nil, err
	}

	return order.Reconstruct(
		orderID, userID,
		order.PaymentMethod(paymentMethod),
		order.Status(status),
		amountCents,
		items,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *OrderRepository) findItems(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) ([]order.Item, error) {
	rows, err := dbtx.Query(ctx, findOrderItemsByOrder, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order items", err)
	}
	defer rows.Close()

	var items []order.Item
	for rows.Next() {
		var (
			id             uuid.UUID
			productID      uuid.UUID
			unitPriceCents int64
			status         string
		)
		if err := rows.Scan(&id, &productID, &unitPriceCents, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item row", err)
		}
		items = append(items, order.ReconstructItem(id, productID, unitPriceCents, order.Status(status)))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order item rows", err)
	}

	return items, nil
}

// SaveStatus persists the order's status and mirrors it onto every item,
// matching the domain's Complete/Cancel semantics.
func (r *OrderRepository) SaveStatus(ctx context.Context, dbtx db.DBTX, o *order.Order) error {
	tag, err := dbtx.Exec(ctx, updateOrderStatus, o.ID(), string(o.Status()))
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found for status update", nil, infra.KindNotFound)
	}

	if _, err := dbtx.Exec(ctx, updateOrderItemsStatus, o.ID(), string(o.Status())); err != nil {
		return infra.WrapRepoErr("failed to update order item statuses", err)
	}
	return nil
}

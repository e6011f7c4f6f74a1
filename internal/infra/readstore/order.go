package readstore

import (
	"context"

	"keyshop/internal/infra"
	"keyshop/internal/infra/db"
	"keyshop/internal/pkg/pgconv"
	"keyshop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getOrderByID = `
SELECT id, user_id, payment_method, status, amount_cents, created_at, updated_at
FROM orders
WHERE id = $1
`

const getOrderItemViews = `
SELECT oi.id, oi.product_id, p.title, oi.unit_price_cents, oi.status, ac.code
FROM order_items oi
JOIN products p ON p.id = oi.product_id
LEFT JOIN allocated_activation_codes ac ON ac.order_item_id = oi.id
WHERE oi.order_id = $1
ORDER BY oi.created_at, oi.id
`

const getOrdersByUser = `
SELECT o.id, o.payment_method, o.status, o.amount_cents, o.created_at,
       (SELECT count(*) FROM order_items oi WHERE oi.order_id = o.id) AS item_count
FROM orders o
WHERE o.user_id = $1
ORDER BY o.created_at DESC, o.id
`

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var (
		view      queries.OrderView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, getOrderByID, id).Scan(
		&view.ID, &view.UserID, &view.PaymentMethod, &view.Status, &view.AmountCents,
		&createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	rows, err := r.db.Query(ctx, getOrderItemViews, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item queries.OrderItemView
			code pgtype.Text
		)
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Title,
			&item.UnitPriceCents, &item.Status, &code); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item view", err)
		}
		item.ActivationCode = pgconv.StringPtrFromPgtype(code)
		view.Items = append(view.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order item views", err)
	}

	return &view, nil
}

func (r *OrderReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, getOrdersByUser, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find orders by user", err)
	}
	defer rows.Close()

	var result []*queries.OrderListItem
	for rows.Next() {
		var (
			item      queries.OrderListItem
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.PaymentMethod, &item.Status,
			&item.AmountCents, &createdAt, &item.ItemCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order list row", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order list rows", err)
	}

	return result, nil
}

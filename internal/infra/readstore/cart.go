package readstore

import (
	"context"

	"keyshop/internal/infra"
	"keyshop/internal/infra/db"
	"keyshop/internal/pkg/pgconv"
	"keyshop/internal/usecase/queries"

	"github.com/google/uuid"
)

const getActiveCartByUser = `
SELECT c.id, c.user_id, c.status
FROM carts c
WHERE c.user_id = $1 AND c.status = 'active'
`

const getCartItemViews = `
SELECT ci.product_id, p.title, p.image_url, ci.unit_price_cents, ci.quantity, ci.discount_cents
FROM cart_items ci
JOIN products p ON p.id = ci.product_id
WHERE ci.cart_id = $1
ORDER BY ci.position
`

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(dbtx db.DBTX) *CartReadStore {
	return &CartReadStore{db: dbtx}
}

func (r *CartReadStore) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*queries.CartView, error) {
	var view queries.CartView
	err := r.db.QueryRow(ctx, getActiveCartByUser, userID).Scan(&view.ID, &view.UserID, &view.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active cart", err)
	}

	rows, err := r.db.Query(ctx, getCartItemViews, view.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find cart items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item queries.CartItemView
		if err := rows.Scan(&item.ProductID, &item.Title, &item.ImageURL,
			&item.UnitPriceCents, &item.Quantity, &item.DiscountCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item view", err)
		}
		item.SubtotalCents = item.UnitPriceCents * int64(item.Quantity)
		view.Items = append(view.Items, item)

		view.TotalCents += item.SubtotalCents
		view.DiscountCents += item.DiscountCents
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart item views", err)
	}

	view.FinalAmountCents = view.TotalCents - view.DiscountCents
	if view.FinalAmountCents < 0 {
		view.FinalAmountCents = 0
	}

	return &view, nil
}

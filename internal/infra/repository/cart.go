package repository

import (
	"context"

	"keyshop/internal/domain/cart"
	"keyshop/internal/infra"
	"keyshop/internal/infra/db"
	"keyshop/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findActiveCartByUser = `
SELECT id, user_id, status, created_at, updated_at
FROM carts
WHERE user_id = $1 AND status = 'active'
`

const findCartItems = `
SELECT id, product_id, unit_price_cents, quantity, discount_cents
FROM cart_items
WHERE cart_id = $1
ORDER BY position
`

const insertCart = `
INSERT INTO carts (id, user_id, status)
VALUES ($1, $2, $3)
`

const deleteCartItems = `
DELETE FROM cart_items WHERE cart_id = $1
`

const insertCartItem = `
INSERT INTO cart_items (id, cart_id, product_id, unit_price_cents, quantity, discount_cents, position)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

const updateCartStatus = `
UPDATE carts SET status = $2, updated_at = now() WHERE id = $1
`

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

// FindActiveByUser loads the user's live cart with its items. The lock flag
// takes the cart row FOR UPDATE so concurrent mutations of the same cart
// serialize.
func (r *CartRepository) FindActiveByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, lock bool) (*cart.Cart, error) {
	query := findActiveCartByUser
	if lock {
		query += " FOR UPDATE"
	}

	var (
		id        uuid.UUID
		owner     uuid.UUID
		status    string
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, query, userID).Scan(&id, &owner, &status, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active cart", err)
	}

	items, err := r.findItems(ctx, dbtx, id)
	if err != nil {
		return nil, err
	}

	return cart.Reconstruct(id, owner, cart.Status(status), items,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt)), nil
}

func (r *CartRepository) findItems(ctx context.Context, dbtx db.DBTX, cartID uuid.UUID) ([]cart.Item, error) {
	rows, err := dbtx.Query(ctx, findCartItems, cartID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find cart items", err)
	}
	defer rows.Close()

	var items []cart.Item
	for rows.Next() {
		var (
			id             uuid.UUID
			productID      uuid.UUID
			unitPriceCents int64
			quantity       int
			discountCents  int64
		)
		if err := rows.Scan(&id, &productID, &unitPriceCents, &quantity, &discountCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item row", err)
		}
		items = append(items, cart.ReconstructItem(id, productID, unitPriceCents, quantity, discountCents))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart item rows", err)
	}

	return items, nil
}

func (r *CartRepository) Create(ctx context.Context, dbtx db.DBTX, c *cart.Cart) error {
	_, err := dbtx.Exec(ctx, insertCart, c.ID(), c.UserID(), string(c.Status()))
	if err != nil {
		return infra.WrapRepoErr("failed to create cart", err)
	}
	return nil
}

// ReplaceItems rewrites the cart's line items to match the domain state.
// Carts are small, so delete-and-insert beats diffing. The slice index is
// persisted as each line's position so rewrites keep the insertion order.
func (r *CartRepository) ReplaceItems(ctx context.Context, dbtx db.DBTX, c *cart.Cart) error {
	if _, err := dbtx.Exec(ctx, deleteCartItems, c.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear cart items", err)
	}

	for pos, item := range c.Items() {
		_, err := dbtx.Exec(ctx, insertCartItem,
			item.ID(), c.ID(), item.ProductID(), item.UnitPriceCents(), item.Quantity(), item.DiscountCents(), pos)
		if err != nil {
			return infra.WrapRepoErr("failed to insert cart item", err)
		}
	}
	return nil
}

func (r *CartRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, cartID uuid.UUID, status cart.Status) error {
	tag, err := dbtx.Exec(ctx, updateCartStatus, cartID, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update cart status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("cart not found for status update", nil, infra.KindNotFound)
	}
	return nil
}

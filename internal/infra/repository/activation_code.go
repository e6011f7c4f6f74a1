package repository

import (
	"context"

	"keyshop/internal/domain/inventory"
	"keyshop/internal/infra"
	"keyshop/internal/infra/db"
	"keyshop/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// claimCode moves exactly one code from the unused pool to the allocated set
// in a single statement. The DELETE only sees a row it could lock, so two
// transactions racing for the last code cannot both claim it: the loser's
// subselect comes back empty and the INSERT inserts nothing.
const claimCode = `
WITH claimed AS (
    DELETE FROM unused_activation_codes
    WHERE id = (
        SELECT id FROM unused_activation_codes
        WHERE product_id = $1
        ORDER BY created_at, id
        LIMIT 1
        FOR UPDATE SKIP LOCKED
    )
    RETURNING product_id, code
)
INSERT INTO allocated_activation_codes (product_id, code, user_id, order_item_id)
SELECT product_id, code, $2, $3 FROM claimed
RETURNING id, product_id, code, user_id, order_item_id, allocated_at
`

const insertUnusedCode = `
INSERT INTO unused_activation_codes (id, product_id, code)
VALUES ($1, $2, $3)
`

const countUnusedByProduct = `
SELECT count(*) FROM unused_activation_codes WHERE product_id = $1
`

const lockProductRow = `
SELECT id FROM products WHERE id = $1 FOR UPDATE
`

type ActivationCodeRepository struct{}

func NewActivationCodeRepository() *ActivationCodeRepository {
	return &ActivationCodeRepository{}
}

// Claim atomically takes one unused code for the product and binds it to the
// user and order item. Returns KindNotFound when the pool is empty.
func (r *ActivationCodeRepository) Claim(ctx context.Context, dbtx db.DBTX, productID, userID, orderItemID uuid.UUID) (inventory.AllocatedCode, error) {
	var (
		id          uuid.UUID
		prodID      uuid.UUID
		code        string
		owner       uuid.UUID
		itemID      uuid.UUID
		allocatedAt pgtype.Timestamptz
	)
	err := dbtx.QueryRow(ctx, claimCode, productID, userID, orderItemID).Scan(
		&id, &prodID, &code, &owner, &itemID, &allocatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return inventory.AllocatedCode{}, infra.WrapRepoErr("no unused code for product", err, infra.KindNotFound)
		}
		return inventory.AllocatedCode{}, infra.WrapRepoErr("failed to claim activation code", err)
	}

	return inventory.ReconstructAllocatedCode(id, prodID, code, owner, itemID,
		pgconv.TimeFromPgtype(allocatedAt)), nil
}

func (r *ActivationCodeRepository) InsertUnusedBatch(ctx context.Context, dbtx db.DBTX, codes []inventory.UnusedCode) error {
	for _, c := range codes {
		if _, err := dbtx.Exec(ctx, insertUnusedCode, c.ID(), c.ProductID(), c.Code()); err != nil {
			return infra.WrapRepoErr("failed to insert unused code", err)
		}
	}
	return nil
}

func (r *ActivationCodeRepository) CountUnused(ctx context.Context, dbtx db.DBTX, productID uuid.UUID) (int, error) {
	var count int
	if err := dbtx.QueryRow(ctx, countUnusedByProduct, productID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count unused codes", err)
	}
	return count, nil
}

// LockProduct serializes replenishment per product: the caller holds the
// product row until its transaction ends, so concurrent replenishers cannot
// each generate a full batch.
func (r *ActivationCodeRepository) LockProduct(ctx context.Context, dbtx db.DBTX, productID uuid.UUID) error {
	var id uuid.UUID
	if err := dbtx.QueryRow(ctx, lockProductRow, productID).Scan(&id); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to lock product row", err)
	}
	return nil
}

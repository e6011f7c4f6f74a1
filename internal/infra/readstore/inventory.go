package readstore

import (
	"context"

	"keyshop/internal/infra"
	"keyshop/internal/infra/db"
	"keyshop/internal/pkg/pgconv"
	"keyshop/internal/usecase/queries"

	"github.com/google/uuid"
)

const getStockStats = `
SELECT p.id,
       (SELECT count(*) FROM unused_activation_codes u WHERE u.product_id = p.id),
       (SELECT count(*) FROM allocated_activation_codes a WHERE a.product_id = p.id)
FROM products p
WHERE p.id = $1
`

type InventoryReadStore struct {
	db db.DBTX
}

func NewInventoryReadStore(dbtx db.DBTX) *InventoryReadStore {
	return &InventoryReadStore{db: dbtx}
}

func (r *InventoryReadStore) StockStats(ctx context.Context, productID uuid.UUID) (*queries.StockStatsView, error) {
	var view queries.StockStatsView
	err := r.db.QueryRow(ctx, getStockStats, productID).Scan(&view.ProductID, &view.Unused, &view.Purchased)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read stock stats", err)
	}
	return &view, nil
}

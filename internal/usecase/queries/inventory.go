package queries

import (
	"context"

	"keyshop/internal/infra"
	"keyshop/internal/pkg/errs"

	"github.com/google/uuid"
)

type InventoryViewRepo interface {
	StockStats(ctx context.Context, productID uuid.UUID) (*StockStatsView, error)
}

type InventoryQueries interface {
	StockStats(ctx context.Context, productID uuid.UUID) (*StockStatsView, error)
}

type inventoryQueriesImpl struct {
	repo InventoryViewRepo
}

func NewInventoryQueries(repo InventoryViewRepo) InventoryQueries {
	return &inventoryQueriesImpl{repo: repo}
}

func (q *inventoryQueriesImpl) StockStats(ctx context.Context, productID uuid.UUID) (*StockStatsView, error) {
	view, err := q.repo.StockStats(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

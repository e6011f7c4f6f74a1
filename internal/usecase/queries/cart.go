package queries

import (
	"context"

	"keyshop/internal/infra"
	"keyshop/internal/pkg/errs"

	"github.com/google/uuid"
)

type CartViewRepo interface {
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

type CartQueries interface {
	// GetActiveCart returns the user's live cart, or an empty view when the
	// user has not put anything in a cart yet.
	GetActiveCart(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	repo CartViewRepo
}

func NewCartQueries(repo CartViewRepo) CartQueries {
	return &cartQueriesImpl{repo: repo}
}

func (q *cartQueriesImpl) GetActiveCart(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	view, err := q.repo.FindActiveByUser(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// A cart is created on first access; an absent row is just empty.
			return &CartView{UserID: userID, Status: "active"}, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

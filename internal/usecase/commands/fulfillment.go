package commands

import (
	"context"
	"log/slog"

	"keyshop/internal/domain/order"
	"keyshop/internal/infra"
	"keyshop/internal/infra/db"
	"keyshop/internal/pkg/errs"
	"keyshop/internal/usecase/queries"
	"keyshop/internal/usecase/shared"

	"github.com/google/uuid"
)

type FulfillmentCommands interface {
	// CaptureAndFulfill confirms payment capture for a pending order and
	// allocates one activation code per item. Allocation is all-or-nothing:
	// if any item cannot be covered the whole order stays pending and no
	// code leaves the pool. Calling it again on a completed order is a no-op
	// that returns the fulfilled order.
	CaptureAndFulfill(ctx context.Context, actor uuid.UUID, orderID uuid.UUID) (*queries.OrderView, error)
	// MarkFailed cancels a pending order after a failed capture. Orders
	// already in a terminal state are left untouched.
	MarkFailed(ctx context.Context, actor uuid.UUID, orderID uuid.UUID) (*queries.OrderView, error)
}

type fulfillmentCommandsImpl struct {
	uow          shared.UnitOfWork
	orderRepo    OrderRepository
	allocator    CodeAllocator
	orderQueries queries.OrderQueries
}

func NewFulfillmentCommands(
	uow shared.UnitOfWork,
	orderRepo OrderRepository,
	allocator CodeAllocator,
	orderQueries queries.OrderQueries,
) FulfillmentCommands {
	return &fulfillmentCommandsImpl{
		uow:          uow,
		orderRepo:    orderRepo,
		allocator:    allocator,
		orderQueries: orderQueries,
	}
}

func (f *fulfillmentCommandsImpl) CaptureAndFulfill(ctx context.Context, actor uuid.UUID, orderID uuid.UUID) (*queries.OrderView, error) {
	var fulfilled []uuid.UUID
	err := f.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		o, err := f.loadOwnedOrder(ctx, tx, actor, orderID)
		if err != nil {
			return err
		}

		if o.IsCompleted() {
			// Idempotent: a retried capture sees the finished order.
			return nil
		}
		if o.IsCancelled() {
			return errs.ErrOrderCancelled
		}

		// Claims ride the order's transaction. The first item that finds an
		// empty pool aborts everything, returning every code claimed so far.
		for _, item := range o.Items() {
			if _, err := f.allocator.ClaimCode(ctx, tx, o.UserID(), item.ID(), item.ProductID()); err != nil {
				return err
			}
			fulfilled = append(fulfilled, item.ProductID())
		}

		if err := o.Complete(); err != nil {
			return err
		}
		if err := f.orderRepo.SaveStatus(ctx, tx, o); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	f.replenishClaimed(ctx, fulfilled)

	return f.orderQueries.GetByIDSystem(ctx, orderID)
}

func (f *fulfillmentCommandsImpl) MarkFailed(ctx context.Context, actor uuid.UUID, orderID uuid.UUID) (*queries.OrderView, error) {
	err := f.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		o, err := f.loadOwnedOrder(ctx, tx, actor, orderID)
		if err != nil {
			return err
		}

		if o.Status().IsTerminal() {
			// Nothing to do; the caller gets the order as it stands.
			return nil
		}

		if err := o.Cancel(); err != nil {
			return err
		}
		if err := f.orderRepo.SaveStatus(ctx, tx, o); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return f.orderQueries.GetByIDSystem(ctx, orderID)
}

func (f *fulfillmentCommandsImpl) loadOwnedOrder(ctx context.Context, tx db.DBTX, actor uuid.UUID, orderID uuid.UUID) (*order.Order, error) {
	o, err := f.orderRepo.FindByID(ctx, tx, orderID, true)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !o.IsOwnedBy(actor) {
		return nil, errs.ErrNotOrderOwner
	}
	return o, nil
}

// replenishClaimed tops up each product pool the fulfillment drew from. Runs
// after commit in separate transactions; failures only delay restocking.
func (f *fulfillmentCommandsImpl) replenishClaimed(ctx context.Context, productIDs []uuid.UUID) {
	seen := make(map[uuid.UUID]struct{}, len(productIDs))
	for _, id := range productIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, err := f.allocator.ReplenishToTarget(ctx, id); err != nil {
			slog.Warn("replenishment after fulfillment failed", "product_id", id, "error", err)
		}
	}
}

//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"keyshop/internal/domain/inventory"
	"keyshop/internal/domain/order"
	idb "keyshop/internal/infra/db"
	"keyshop/internal/pkg/errs"
	"keyshop/internal/usecase/commands"
	"keyshop/internal/usecase/queries"
	commandsmock "keyshop/tests/mock/commands"
	queriesmock "keyshop/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fulfillmentFixture struct {
	orderRepo    *commandsmock.MockOrderRepository
	allocator    *commandsmock.MockCodeAllocator
	orderQueries *queriesmock.MockOrderQueries
	commands     commands.FulfillmentCommands
}

func newFulfillmentFixture(ctrl *gomock.Controller) *fulfillmentFixture {
	f := &fulfillmentFixture{
		orderRepo:    commandsmock.NewMockOrderRepository(ctrl),
		allocator:    commandsmock.NewMockCodeAllocator(ctrl),
		orderQueries: queriesmock.NewMockOrderQueries(ctrl),
	}
	f.commands = commands.NewFulfillmentCommands(stubUnitOfWork{}, f.orderRepo, f.allocator, f.orderQueries)
	return f
}

func pendingOrder(userID uuid.UUID, productIDs ...uuid.UUID) *order.Order {
	items := make([]order.Item, len(productIDs))
	for i, pid := range productIDs {
		items[i] = order.ReconstructItem(uuid.New(), pid, 9999, order.StatusPending)
	}
	now := time.Now()
	var amount int64
	for range items {
		amount += 9999
	}
	return order.Reconstruct(uuid.New(), userID, order.PaymentCreditCard, order.StatusPending, amount, items, now, now)
}

func allocatedFor(item order.Item, userID uuid.UUID) inventory.AllocatedCode {
	return inventory.ReconstructAllocatedCode(uuid.New(), item.ProductID(), "AB1CD-EF2GH-JK3MN-PQ4RS", userID, item.ID(), time.Now())
}

// =============================================================================
// CaptureAndFulfill
// =============================================================================

func TestFulfillmentCommands_CaptureAndFulfill(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success: claims one code per item and completes the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFulfillmentFixture(ctrl)

		productID := uuid.New()
		o := pendingOrder(userID, productID, productID)

		f.orderRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), o.ID(), true).Return(o, nil)
		for _, item := range o.Items() {
			f.allocator.EXPECT().ClaimCode(gomock.Any(), gomock.Any(), userID, item.ID(), productID).
				Return(allocatedFor(item, userID), nil)
		}
		f.orderRepo.EXPECT().SaveStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ idb.DBTX, saved *order.Order) error {
				assert.Equal(t, order.StatusCompleted, saved.Status())
				for _, item := range saved.Items() {
					assert.Equal(t, order.StatusCompleted, item.Status())
				}
				return nil
			})
		// one replenishment per distinct product, after the claim committed
		f.allocator.EXPECT().ReplenishToTarget(gomock.Any(), productID).Return(2, nil).Times(1)
		f.orderQueries.EXPECT().GetByIDSystem(gomock.Any(), o.ID()).
			Return(&queries.OrderView{ID: o.ID(), UserID: userID, Status: "completed"}, nil)

		view, err := f.commands.CaptureAndFulfill(ctx, userID, o.ID())
		require.NoError(t, err)
		assert.Equal(t, "completed", view.Status)
	})

	t.Run("success: completed order is returned unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFulfillmentFixture(ctrl)

		o := pendingOrder(userID, uuid.New())
		require.NoError(t, o.Complete())

		f.orderRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), o.ID(), true).Return(o, nil)
		f.orderQueries.EXPECT().GetByIDSystem(gomock.Any(), o.ID()).
			Return(&queries.OrderView{ID: o.ID(), UserID: userID, Status: "completed"}, nil)

		view, err := f.commands.CaptureAndFulfill(ctx, userID, o.ID())
		require.NoError(t, err)
		assert.Equal(t, "completed", view.Status)
	})

	t.Run("error: order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFulfillmentFixture(ctrl)

		orderID := uuid.New()
		f.orderRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), orderID, true).
			Return(nil, notFoundErr("order not found"))

		_, err := f.commands.CaptureAndFulfill(ctx, userID, orderID)
		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("error: order belongs to another user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFulfillmentFixture(ctrl)

		o := pendingOrder(uuid.New(), uuid.New())
		f.orderRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), o.ID(), true).Return(o, nil)

		_, err := f.commands.CaptureAndFulfill(ctx, userID, o.ID())
		assert.ErrorIs(t, err, errs.ErrNotOrderOwner)
	})

	t.Run("error: cancelled order cannot be captured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFulfillmentFixture(ctrl)

		o := pendingOrder(userID, uuid.New())
		require.NoError(t, o.Cancel())

		f.orderRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), o.ID(), true).Return(o, nil)

		_, err := f.commands.CaptureAndFulfill(ctx, userID, o.ID())
		assert.ErrorIs(t, err, errs.ErrOrderCancelled)
	})

	t.Run("error: empty pool aborts the whole fulfillment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFulfillmentFixture(ctrl)

		productID := uuid.New()
		o := pendingOrder(userID, productID, productID)

		f.orderRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), o.ID(), true).Return(o, nil)
		first := o.Items()[0]
		f.allocator.EXPECT().ClaimCode(gomock.Any(), gomock.Any(), userID, first.ID(), productID).
			Return(allocatedFor(first, userID), nil)
		second := o.Items()[1]
		f.allocator.EXPECT().ClaimCode(gomock.Any(), gomock.Any(), userID, second.ID(), productID).
			Return(inventory.AllocatedCode{}, errs.ErrOutOfStock)
		// no SaveStatus, no replenishment: the transaction rolled back

		_, err := f.commands.CaptureAndFulfill(ctx, userID, o.ID())
		assert.ErrorIs(t, err, errs.ErrOutOfStock)
	})
}

// =============================================================================
// MarkFailed
// =============================================================================

func TestFulfillmentCommands_MarkFailed(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success: cancels a pending order and its items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFulfillmentFixture(ctrl)

		o := pendingOrder(userID, uuid.New())
		f.orderRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), o.ID(), true).Return(o, nil)
		f.orderRepo.EXPECT().SaveStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ idb.DBTX, saved *order.Order) error {
				assert.Equal(t, order.StatusCancelled, saved.Status())
				for _, item := range saved.Items() {
					assert.Equal(t, order.StatusCancelled, item.Status())
				}
				return nil
			})
		f.orderQueries.EXPECT().GetByIDSystem(gomock.Any(), o.ID()).
			Return(&queries.OrderView{ID: o.ID(), UserID: userID, Status: "cancelled"}, nil)

		view, err := f.commands.MarkFailed(ctx, userID, o.ID())
		require.NoError(t, err)
		assert.Equal(t, "cancelled", view.Status)
	})

	t.Run("success: terminal orders are left untouched", func(t *testing.T) {
		for _, terminal := range []func(*order.Order) error{(*order.Order).Complete, (*order.Order).Cancel} {
			ctrl := gomock.NewController(t)
			f := newFulfillmentFixture(ctrl)

			o := pendingOrder(userID, uuid.New())
			require.NoError(t, terminal(o))

			f.orderRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), o.ID(), true).Return(o, nil)
			f.orderQueries.EXPECT().GetByIDSystem(gomock.Any(), o.ID()).
				Return(&queries.OrderView{ID: o.ID(), UserID: userID, Status: string(o.Status())}, nil)

			view, err := f.commands.MarkFailed(ctx, userID, o.ID())
			require.NoError(t, err)
			assert.Equal(t, string(o.Status()), view.Status)
			ctrl.Finish()
		}
	})

	t.Run("error: order belongs to another user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFulfillmentFixture(ctrl)

		o := pendingOrder(uuid.New(), uuid.New())
		f.orderRepo.EXPECT().FindByID(gomock.Any(), gomock.Any(), o.ID(), true).Return(o, nil)

		_, err := f.commands.MarkFailed(ctx, userID, o.ID())
		assert.ErrorIs(t, err, errs.ErrNotOrderOwner)
	})
}

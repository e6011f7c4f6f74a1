//go:build unit

package commands_test

import (
	"context"
	"testing"

	"keyshop/internal/domain/cart"
	"keyshop/internal/domain/order"
	"keyshop/internal/domain/pricing"
	"keyshop/internal/domain/product"
	"keyshop/internal/infra"
	idb "keyshop/internal/infra/db"
	"keyshop/internal/pkg/errs"
	"keyshop/internal/usecase/commands"
	"keyshop/internal/usecase/queries"
	commandsmock "keyshop/tests/mock/commands"
	queriesmock "keyshop/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type cartCommandsFixture struct {
	cartRepo     *commandsmock.MockCartRepository
	orderRepo    *commandsmock.MockOrderRepository
	products     *commandsmock.MockProductReader
	cartQueries  *queriesmock.MockCartQueries
	orderQueries *queriesmock.MockOrderQueries
	commands     commands.CartCommands
}

func newCartCommandsFixture(ctrl *gomock.Controller) *cartCommandsFixture {
	f := &cartCommandsFixture{
		cartRepo:     commandsmock.NewMockCartRepository(ctrl),
		orderRepo:    commandsmock.NewMockOrderRepository(ctrl),
		products:     commandsmock.NewMockProductReader(ctrl),
		cartQueries:  queriesmock.NewMockCartQueries(ctrl),
		orderQueries: queriesmock.NewMockOrderQueries(ctrl),
	}
	f.commands = commands.NewCartCommands(
		stubUnitOfWork{}, f.cartRepo, f.orderRepo, f.products, f.cartQueries, f.orderQueries,
	)
	return f
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
}

func existingCart(t *testing.T, userID, productID uuid.UUID, priceCents int64, quantity int) *cart.Cart {
	t.Helper()
	c := cart.NewCart(userID)
	require.NoError(t, c.AddItem(productID, priceCents, quantity))
	return c
}

// =============================================================================
// AddItem
// =============================================================================

func TestCartCommands_AddItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	p := product.Reconstruct(productID, "Desk Organizer Pro", 9999, "")

	t.Run("success: creates a cart on first access", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
			Return(nil, notFoundErr("cart not found"))
		f.products.EXPECT().FindByID(gomock.Any(), gomock.Any(), productID).Return(p, nil)
		f.cartRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.cartRepo.EXPECT().ReplaceItems(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ idb.DBTX, c *cart.Cart) error {
				require.Len(t, c.Items(), 1)
				assert.Equal(t, 2, c.Items()[0].Quantity())
				return nil
			})
		f.cartQueries.EXPECT().GetActiveCart(gomock.Any(), userID).Return(&queries.CartView{UserID: userID}, nil)

		view, err := f.commands.AddItem(ctx, userID, productID, 2)
		require.NoError(t, err)
		assert.Equal(t, userID, view.UserID)
	})

	t.Run("success: non-positive quantity is corrected to 1", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
			Return(nil, notFoundErr("cart not found"))
		f.products.EXPECT().FindByID(gomock.Any(), gomock.Any(), productID).Return(p, nil)
		f.cartRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.cartRepo.EXPECT().ReplaceItems(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ idb.DBTX, c *cart.Cart) error {
				require.Len(t, c.Items(), 1)
				assert.Equal(t, 1, c.Items()[0].Quantity())
				return nil
			})
		f.cartQueries.EXPECT().GetActiveCart(gomock.Any(), userID).Return(&queries.CartView{UserID: userID}, nil)

		_, err := f.commands.AddItem(ctx, userID, productID, -3)
		require.NoError(t, err)
	})

	t.Run("success: adding the same product increments the existing line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
			Return(existingCart(t, userID, productID, 9999, 1), nil)
		f.products.EXPECT().FindByID(gomock.Any(), gomock.Any(), productID).Return(p, nil)
		f.cartRepo.EXPECT().ReplaceItems(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ idb.DBTX, c *cart.Cart) error {
				require.Len(t, c.Items(), 1)
				assert.Equal(t, 3, c.Items()[0].Quantity())
				return nil
			})
		f.cartQueries.EXPECT().GetActiveCart(gomock.Any(), userID).Return(&queries.CartView{UserID: userID}, nil)

		_, err := f.commands.AddItem(ctx, userID, productID, 2)
		require.NoError(t, err)
	})

	t.Run("error: unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
			Return(nil, notFoundErr("cart not found"))
		f.products.EXPECT().FindByID(gomock.Any(), gomock.Any(), productID).
			Return(product.Product{}, notFoundErr("product not found"))

		_, err := f.commands.AddItem(ctx, userID, productID, 1)
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})

	t.Run("success: losing a cart-create race retries against the winner's cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		dupErr := infra.WrapRepoErr("failed to create cart", &pgconn.PgError{Code: "23505"})
		gomock.InOrder(
			f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
				Return(nil, notFoundErr("cart not found")),
			f.products.EXPECT().FindByID(gomock.Any(), gomock.Any(), productID).Return(p, nil),
			f.cartRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(dupErr),
			f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
				Return(existingCart(t, userID, productID, 9999, 1), nil),
			f.products.EXPECT().FindByID(gomock.Any(), gomock.Any(), productID).Return(p, nil),
			f.cartRepo.EXPECT().ReplaceItems(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ idb.DBTX, c *cart.Cart) error {
					require.Len(t, c.Items(), 1)
					assert.Equal(t, 3, c.Items()[0].Quantity())
					return nil
				}),
		)
		f.cartQueries.EXPECT().GetActiveCart(gomock.Any(), userID).Return(&queries.CartView{UserID: userID}, nil)

		_, err := f.commands.AddItem(ctx, userID, productID, 2)
		require.NoError(t, err)
	})

	t.Run("error: a duplicate key on the retry still fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		dupErr := infra.WrapRepoErr("failed to create cart", &pgconn.PgError{Code: "23505"})
		f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
			Return(nil, notFoundErr("cart not found")).Times(2)
		f.products.EXPECT().FindByID(gomock.Any(), gomock.Any(), productID).Return(p, nil).Times(2)
		f.cartRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(dupErr).Times(2)

		_, err := f.commands.AddItem(ctx, userID, productID, 1)
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}

// =============================================================================
// UpdateQuantity
// =============================================================================

func TestCartCommands_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	t.Run("success: sets the line quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
			Return(existingCart(t, userID, productID, 9999, 1), nil)
		f.cartRepo.EXPECT().ReplaceItems(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ idb.DBTX, c *cart.Cart) error {
				assert.Equal(t, 5, c.Items()[0].Quantity())
				return nil
			})
		f.cartQueries.EXPECT().GetActiveCart(gomock.Any(), userID).Return(&queries.CartView{UserID: userID}, nil)

		_, err := f.commands.UpdateQuantity(ctx, userID, productID, 5)
		require.NoError(t, err)
	})

	t.Run("error: non-positive quantity is rejected, not clamped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
			Return(existingCart(t, userID, productID, 9999, 1), nil)

		_, err := f.commands.UpdateQuantity(ctx, userID, productID, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
	})

	t.Run("error: product not in cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
			Return(existingCart(t, userID, productID, 9999, 1), nil)

		_, err := f.commands.UpdateQuantity(ctx, userID, uuid.New(), 2)
		assert.ErrorIs(t, err, errs.ErrCartItemNotFound)
	})

	t.Run("error: no active cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
			Return(nil, notFoundErr("cart not found"))

		_, err := f.commands.UpdateQuantity(ctx, userID, productID, 2)
		assert.ErrorIs(t, err, errs.ErrCartNotFound)
	})
}

// =============================================================================
// RemoveItem / Clear
// =============================================================================

func TestCartCommands_RemoveItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	t.Run("success: removes the line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
			Return(existingCart(t, userID, productID, 9999, 2), nil)
		f.cartRepo.EXPECT().ReplaceItems(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ idb.DBTX, c *cart.Cart) error {
				assert.Empty(t, c.Items())
				return nil
			})
		f.cartQueries.EXPECT().GetActiveCart(gomock.Any(), userID).Return(&queries.CartView{UserID: userID}, nil)

		_, err := f.commands.RemoveItem(ctx, userID, productID)
		require.NoError(t, err)
	})

	t.Run("error: product not in cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
			Return(existingCart(t, userID, productID, 9999, 2), nil)

		_, err := f.commands.RemoveItem(ctx, userID, uuid.New())
		assert.ErrorIs(t, err, errs.ErrCartItemNotFound)
	})
}

func TestCartCommands_Clear(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success: empties the cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
			Return(existingCart(t, userID, uuid.New(), 9999, 2), nil)
		f.cartRepo.EXPECT().ReplaceItems(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ idb.DBTX, c *cart.Cart) error {
				assert.Empty(t, c.Items())
				return nil
			})

		require.NoError(t, f.commands.Clear(ctx, userID))
	})

	t.Run("success: clearing without a cart is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
			Return(nil, notFoundErr("cart not found"))

		require.NoError(t, f.commands.Clear(ctx, userID))
	})
}

// =============================================================================
// ApplyDiscounts
// =============================================================================

func TestCartCommands_ApplyDiscounts(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	p := product.Reconstruct(productID, "Desk Organizer Pro", 9999, "")

	t.Run("success: records the discount on covered lines", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		strategy, err := pricing.NewPercentageStrategy(10, nil)
		require.NoError(t, err)

		f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
			Return(existingCart(t, userID, productID, 9999, 2), nil)
		f.products.EXPECT().FindByIDs(gomock.Any(), gomock.Any(), []uuid.UUID{productID}).
			Return(map[uuid.UUID]product.Product{productID: p}, nil)
		f.cartRepo.EXPECT().ReplaceItems(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ idb.DBTX, c *cart.Cart) error {
				// 10% of 9999 truncates to 999, times quantity 2
				assert.EqualValues(t, 1998, c.Items()[0].DiscountCents())
				return nil
			})

		applied, err := f.commands.ApplyDiscounts(ctx, userID, strategy)
		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("success: reports false when nothing is covered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
			Return(existingCart(t, userID, productID, 9999, 1), nil)
		f.products.EXPECT().FindByIDs(gomock.Any(), gomock.Any(), []uuid.UUID{productID}).
			Return(map[uuid.UUID]product.Product{productID: p}, nil)
		f.cartRepo.EXPECT().ReplaceItems(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		applied, err := f.commands.ApplyDiscounts(ctx, userID, pricing.NoDiscount{})
		require.NoError(t, err)
		assert.False(t, applied)
	})
}

// =============================================================================
// Checkout
// =============================================================================

func TestCartCommands_Checkout(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	t.Run("success: creates a pending order and closes the cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		c := existingCart(t, userID, productID, 9999, 2)
		var createdOrderID uuid.UUID

		f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).Return(c, nil)
		f.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ idb.DBTX, o *order.Order) error {
				createdOrderID = o.ID()
				assert.Equal(t, order.StatusPending, o.Status())
				// one order item per unit, not per line
				assert.Len(t, o.Items(), 2)
				assert.EqualValues(t, 19998, o.AmountCents())
				return nil
			})
		f.cartRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), c.ID(), cart.StatusCheckedOut).Return(nil)
		f.orderQueries.EXPECT().GetByIDSystem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
				assert.Equal(t, createdOrderID, id)
				return &queries.OrderView{ID: id, UserID: userID, Status: "pending"}, nil
			})

		result, err := f.commands.Checkout(ctx, userID, "CREDIT_CARD")
		require.NoError(t, err)
		assert.Equal(t, createdOrderID, result.Order.ID)
	})

	t.Run("error: unknown payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		_, err := f.commands.Checkout(ctx, userID, "CASH_ON_DELIVERY")
		assert.ErrorIs(t, err, errs.ErrInvalidPaymentMethod)
	})

	t.Run("error: empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newCartCommandsFixture(ctrl)

		f.cartRepo.EXPECT().FindActiveByUser(gomock.Any(), gomock.Any(), userID, true).
			Return(cart.NewCart(userID), nil)

		_, err := f.commands.Checkout(ctx, userID, "WALLET")
		assert.ErrorIs(t, err, errs.ErrEmptyCart)
	})
}

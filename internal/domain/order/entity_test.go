//go:build unit

package order_test

import (
	"testing"

	"keyshop/internal/domain/cart"
	"keyshop/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutCart(t *testing.T, productID uuid.UUID, priceCents int64, qty int) *cart.Cart {
	t.Helper()
	c := cart.NewCart(uuid.New())
	require.NoError(t, c.AddItem(productID, priceCents, qty))
	return c
}

func TestFromCart(t *testing.T) {
	productID := uuid.New()

	t.Run("expands quantity into one item per unit", func(t *testing.T) {
		c := newCheckoutCart(t, productID, 9999, 2)

		o, err := order.FromCart(c, order.PaymentCreditCard)
		require.NoError(t, err)

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, c.UserID(), o.UserID())
		require.Len(t, o.Items(), 2)
		for _, item := range o.Items() {
			assert.Equal(t, productID, item.ProductID())
			assert.Equal(t, int64(9999), item.UnitPriceCents())
			assert.Equal(t, order.StatusPending, item.Status())
		}
		assert.Equal(t, int64(19998), o.AmountCents())
	})

	t.Run("total item count equals cart total quantity", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		require.NoError(t, c.AddItem(uuid.New(), 1000, 3))
		require.NoError(t, c.AddItem(uuid.New(), 2000, 2))

		o, err := order.FromCart(c, order.PaymentWallet)
		require.NoError(t, err)
		assert.Len(t, o.Items(), c.TotalQuantity())
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		c := cart.NewCart(uuid.New())
		_, err := order.FromCart(c, order.PaymentCreditCard)
		assert.ErrorIs(t, err, order.ErrEmptyCart)
	})
}

func TestStatusTransitions(t *testing.T) {
	testCases := []struct {
		name string
		from order.Status
		to   order.Status
		ok   bool
	}{
		{name: "pending to completed", from: order.StatusPending, to: order.StatusCompleted, ok: true},
		{name: "pending to cancelled", from: order.StatusPending, to: order.StatusCancelled, ok: true},
		{name: "completed is terminal", from: order.StatusCompleted, to: order.StatusCancelled, ok: false},
		{name: "cancelled is terminal", from: order.StatusCancelled, to: order.StatusCompleted, ok: false},
		{name: "no self transition", from: order.StatusPending, to: order.StatusPending, ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOrder_CompleteAndCancel(t *testing.T) {
	build := func(t *testing.T) *order.Order {
		t.Helper()
		c := newCheckoutCart(t, uuid.New(), 9999, 2)
		o, err := order.FromCart(c, order.PaymentCreditCard)
		require.NoError(t, err)
		return o
	}

	t.Run("complete marks order and all items", func(t *testing.T) {
		o := build(t)
		require.NoError(t, o.Complete())

		assert.True(t, o.IsCompleted())
		for _, item := range o.Items() {
			assert.Equal(t, order.StatusCompleted, item.Status())
		}
	})

	t.Run("cancel marks order and all items", func(t *testing.T) {
		o := build(t)
		require.NoError(t, o.Cancel())

		assert.True(t, o.IsCancelled())
		for _, item := range o.Items() {
			assert.Equal(t, order.StatusCancelled, item.Status())
		}
	})

	t.Run("terminal states refuse further transitions", func(t *testing.T) {
		o := build(t)
		require.NoError(t, o.Complete())

		assert.ErrorIs(t, o.Complete(), order.ErrInvalidTransition)
		assert.ErrorIs(t, o.Cancel(), order.ErrInvalidTransition)
	})
}

func TestNewPaymentMethod(t *testing.T) {
	m, err := order.NewPaymentMethod("CREDIT_CARD")
	require.NoError(t, err)
	assert.Equal(t, order.PaymentCreditCard, m)

	_, err = order.NewPaymentMethod("CASH_ON_DELIVERY")
	assert.ErrorIs(t, err, order.ErrUnknownPaymentKind)
}

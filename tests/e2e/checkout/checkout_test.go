//go:build e2e

package checkout_test

import (
	"net/http"
	"testing"

	"keyshop/internal/domain/user"
	"keyshop/internal/handler/dto/response"
	"keyshop/tests/common/authtest"
	"keyshop/tests/common/dbtest"
	"keyshop/tests/common/httptest"
	"keyshop/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	cartURL     = "/api/cart"
	itemsURL    = "/api/cart/items"
	discountURL = "/api/cart/discounts"
	checkoutURL = "/api/cart/checkout"
	ordersURL   = "/api/orders"
)

type CheckoutSuite struct {
	e2e.SharedSuite
}

func (s *CheckoutSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CheckoutSuite))
}

func (s *CheckoutSuite) customerToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, userID, user.RoleCustomer)
}

func (s *CheckoutSuite) adminToken(t *testing.T) string {
	t.Helper()
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), user.RoleAdmin)
}

func (s *CheckoutSuite) addItem(t *testing.T, token string, productID uuid.UUID, quantity int) response.CartResponse {
	t.Helper()
	body := map[string]any{"product_id": productID, "quantity": quantity}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL, body, token)

	var cart response.CartResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
	return cart
}

func (s *CheckoutSuite) checkout(t *testing.T, token string) response.OrderResponse {
	t.Helper()
	body := map[string]any{"payment_method": "CREDIT_CARD"}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, body, token)

	var order response.OrderResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &order)
	return order
}

func lineOrder(cart response.CartResponse) []uuid.UUID {
	ids := make([]uuid.UUID, len(cart.Items))
	for i, item := range cart.Items {
		ids[i] = item.ProductID
	}
	return ids
}

func (s *CheckoutSuite) replenish(t *testing.T, productID uuid.UUID) {
	t.Helper()
	url := "/api/admin/inventory/" + productID.String() + "/codes"
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, nil, s.adminToken(t))
	require.Equal(t, http.StatusOK, w.Code, "replenish failed: %s", w.Body.String())
}

// =============================================================================
// TestCartLifecycle - Cart manipulation API tests
// =============================================================================

func (s *CheckoutSuite) TestCartLifecycle() {
	s.Run("Normal case: add, update, discount and clear", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Focus Timer", 2500)
		token := s.customerToken(t, uuid.New())

		cart := s.addItem(t, token, productID, 2)
		require.Len(t, cart.Items, 1)
		require.Equal(t, 2, cart.Items[0].Quantity)
		require.EqualValues(t, 5000, cart.TotalCents)

		// Same product again increments the existing line
		cart = s.addItem(t, token, productID, 1)
		require.Equal(t, 3, cart.Items[0].Quantity)

		patchURL := itemsURL + "/" + productID.String()
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, patchURL, map[string]any{"quantity": 4}, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
		require.Equal(t, 4, cart.Items[0].Quantity)
		require.EqualValues(t, 10000, cart.TotalCents)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, discountURL, map[string]any{"percent_off": 10}, token)
		var discounted response.ApplyDiscountResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &discounted)
		require.True(t, discounted.Applied)
		require.EqualValues(t, 9000, discounted.Cart.FinalAmountCents)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, cartURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
		require.Empty(t, cart.Items)
	})

	s.Run("Normal case: lines keep their insertion order across rewrites", func() {
		t := s.T()

		first := dbtest.CreateTestProduct(t, s.DB, "Focus Timer", 2500)
		second := dbtest.CreateTestProduct(t, s.DB, "Video Compressor", 4500)
		third := dbtest.CreateTestProduct(t, s.DB, "Password Vault", 1999)
		token := s.customerToken(t, uuid.New())

		s.addItem(t, token, first, 1)
		s.addItem(t, token, second, 1)
		cart := s.addItem(t, token, third, 1)
		require.Equal(t, []uuid.UUID{first, second, third}, lineOrder(cart))

		// Every mutation rewrites all rows; the order must survive
		patchURL := itemsURL + "/" + first.String()
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, patchURL, map[string]any{"quantity": 5}, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
		require.Equal(t, []uuid.UUID{first, second, third}, lineOrder(cart))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
		require.Equal(t, []uuid.UUID{first, second, third}, lineOrder(cart))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, itemsURL+"/"+second.String(), nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
		require.Equal(t, []uuid.UUID{first, third}, lineOrder(cart))
	})

	s.Run("Edge case: non-positive add quantity counts as one", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Focus Timer", 2500)
		token := s.customerToken(t, uuid.New())

		cart := s.addItem(t, token, productID, -3)
		require.Equal(t, 1, cart.Items[0].Quantity)

		cart = s.addItem(t, token, productID, 0)
		require.Equal(t, 2, cart.Items[0].Quantity)
	})

	s.Run("Error case: updating quantity to a non-positive value is rejected", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Focus Timer", 2500)
		token := s.customerToken(t, uuid.New())
		s.addItem(t, token, productID, 2)

		patchURL := itemsURL + "/" + productID.String()

		// Zero is caught by request validation
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, patchURL, map[string]any{"quantity": 0}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")

		// Negative reaches the domain rule
		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, patchURL, map[string]any{"quantity": -1}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Quantity must be positive")

		// The line is untouched
		var cart response.CartResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
		require.Equal(t, 2, cart.Items[0].Quantity)
	})

	s.Run("Error case: unknown product cannot be added", func() {
		t := s.T()

		token := s.customerToken(t, uuid.New())
		body := map[string]any{"product_id": uuid.New(), "quantity": 1}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, itemsURL, body, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Product not found")
	})

	s.Run("Error case: expired token is rejected", func() {
		t := s.T()

		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, uuid.New(), user.RoleCustomer)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// TestCheckoutAndFulfillment - Checkout and payment capture flow
// =============================================================================

func (s *CheckoutSuite) TestCheckoutAndFulfillment() {
	s.Run("Normal case: checkout then capture allocates codes and replenishes", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Video Compressor", 4500)
		s.replenish(t, productID)
		require.Equal(t, 30, dbtest.CountUnusedCodes(t, s.DB, productID))

		userID := uuid.New()
		token := s.customerToken(t, userID)
		s.addItem(t, token, productID, 2)

		order := s.checkout(t, token)

		expected := &response.OrderResponse{
			UserID:        userID,
			PaymentMethod: "CREDIT_CARD",
			Status:        "pending",
			AmountCents:   9000,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.OrderResponse{}, "ID", "Items", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &order, opts...); diff != "" {
			t.Errorf("Order response mismatch (-want +got):\n%s", diff)
		}
		require.Len(t, order.Items, 2, "each cart unit becomes its own order item")
		for _, item := range order.Items {
			require.Nil(t, item.ActivationCode, "codes are only issued on capture")
		}

		// Checkout leaves the cart behind; the next access starts a fresh one
		var cart response.CartResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, cartURL, nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cart)
		require.Empty(t, cart.Items)

		captureURL := ordersURL + "/" + order.ID.String() + "/capture"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, captureURL, nil, token)

		var fulfilled response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fulfilled)
		require.Equal(t, "completed", fulfilled.Status)

		seen := map[string]bool{}
		for _, item := range fulfilled.Items {
			require.Equal(t, "completed", item.Status)
			require.NotNil(t, item.ActivationCode)
			require.False(t, seen[*item.ActivationCode], "every order item gets a distinct code")
			seen[*item.ActivationCode] = true
		}

		// The pool was topped back up after the two claims
		require.Equal(t, 30, dbtest.CountUnusedCodes(t, s.DB, productID))
	})

	s.Run("Normal case: capturing a completed order is a no-op", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Video Compressor", 4500)
		s.replenish(t, productID)

		token := s.customerToken(t, uuid.New())
		s.addItem(t, token, productID, 1)
		order := s.checkout(t, token)

		captureURL := ordersURL + "/" + order.ID.String() + "/capture"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, captureURL, nil, token)
		var first response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &first)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, captureURL, nil, token)
		var second response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &second)

		require.Equal(t, "completed", second.Status)
		require.Equal(t, *first.Items[0].ActivationCode, *second.Items[0].ActivationCode,
			"repeat capture must not allocate a second code")

		var allocated int
		err := s.DB.QueryRow(t.Context(),
			"SELECT COUNT(*) FROM allocated_activation_codes WHERE product_id = $1", productID).Scan(&allocated)
		require.NoError(t, err)
		require.Equal(t, 1, allocated)
	})

	s.Run("Error case: capture without stock leaves the order pending", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Video Compressor", 4500)

		token := s.customerToken(t, uuid.New())
		s.addItem(t, token, productID, 1)
		order := s.checkout(t, token)

		captureURL := ordersURL + "/" + order.ID.String() + "/capture"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, captureURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Not enough activation codes in stock")

		var pending response.OrderResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+order.ID.String(), nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &pending)
		require.Equal(t, "pending", pending.Status)

		// Restocking makes the same capture succeed
		s.replenish(t, productID)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, captureURL, nil, token)
		var fulfilled response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &fulfilled)
		require.Equal(t, "completed", fulfilled.Status)
	})

	s.Run("Error case: partial stock aborts the whole allocation", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Video Compressor", 4500)
		dbtest.CreateTestUnusedCode(t, s.DB, productID, "ONLY1-CODE2-LEFT3-HERE4")

		token := s.customerToken(t, uuid.New())
		s.addItem(t, token, productID, 2)
		order := s.checkout(t, token)

		captureURL := ordersURL + "/" + order.ID.String() + "/capture"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, captureURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Not enough activation codes in stock")

		// The rollback returned the single code to the pool
		require.Equal(t, 1, dbtest.CountUnusedCodes(t, s.DB, productID))
	})

	s.Run("Error case: failed payment cancels the order", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Video Compressor", 4500)
		s.replenish(t, productID)

		token := s.customerToken(t, uuid.New())
		s.addItem(t, token, productID, 1)
		order := s.checkout(t, token)

		failURL := ordersURL + "/" + order.ID.String() + "/fail"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, failURL, nil, token)
		var cancelled response.OrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, "cancelled", cancelled.Status)

		// Capture after cancellation is refused
		captureURL := ordersURL + "/" + order.ID.String() + "/capture"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, captureURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Order is cancelled")

		// Repeating the failure webhook is harmless
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, failURL, nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, "cancelled", cancelled.Status)
	})

	s.Run("Error case: checkout with an empty cart fails", func() {
		t := s.T()

		token := s.customerToken(t, uuid.New())
		body := map[string]any{"payment_method": "CREDIT_CARD"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, body, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Cart is empty")
	})

	s.Run("Error case: unsupported payment method is rejected", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Video Compressor", 4500)
		token := s.customerToken(t, uuid.New())
		s.addItem(t, token, productID, 1)

		body := map[string]any{"payment_method": "BARTER"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, body, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Unsupported payment method")
	})

	s.Run("Error case: orders are owner-scoped", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Video Compressor", 4500)
		s.replenish(t, productID)

		ownerToken := s.customerToken(t, uuid.New())
		s.addItem(t, ownerToken, productID, 1)
		order := s.checkout(t, ownerToken)

		strangerToken := s.customerToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"/"+order.ID.String(), nil, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Order belongs to another user")

		captureURL := ordersURL + "/" + order.ID.String() + "/capture"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, captureURL, nil, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Order belongs to another user")
	})
}

// =============================================================================
// TestOrderList - Order history API tests
// =============================================================================

func (s *CheckoutSuite) TestOrderList() {
	s.Run("Normal case: users see only their own orders, newest first", func() {
		t := s.T()

		productID := dbtest.CreateTestProduct(t, s.DB, "Video Compressor", 4500)
		s.replenish(t, productID)

		userID := uuid.New()
		token := s.customerToken(t, userID)

		s.addItem(t, token, productID, 1)
		first := s.checkout(t, token)
		s.addItem(t, token, productID, 2)
		second := s.checkout(t, token)

		otherToken := s.customerToken(t, uuid.New())
		s.addItem(t, otherToken, productID, 1)
		s.checkout(t, otherToken)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, token)
		var list []response.OrderListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)

		require.Len(t, list, 2)
		require.Equal(t, second.ID, list[0].ID)
		require.Equal(t, first.ID, list[1].ID)
		require.Equal(t, 2, list[0].ItemCount)
	})
}

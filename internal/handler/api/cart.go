package api

import (
	"errors"
	"net/http"

	"keyshop/internal/domain/pricing"
	reqdto "keyshop/internal/handler/dto/request"
	resdto "keyshop/internal/handler/dto/response"
	"keyshop/internal/handler/httperr"
	"keyshop/internal/handler/middleware"
	"keyshop/internal/pkg/errs"
	"keyshop/internal/usecase/commands"
	"keyshop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
	}
}

// @Summary Get cart
// @Description Get the current user's active cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error")
		return
	}

	view, err := h.cartQueries.GetActiveCart(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Add item to cart
// @Description Add a product to the cart, or increase its quantity
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddCartItemRequest true "Item to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error")
		return
	}

	var req reqdto.AddCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.cartCommands.AddItem(c.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Update item quantity
// @Description Set the quantity of a cart line
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param request body reqdto.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{productId} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID format")
		return
	}

	var req reqdto.UpdateCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	view, err := h.cartCommands.UpdateQuantity(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Remove item from cart
// @Description Remove a cart line entirely
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error")
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID format")
		return
	}

	view, err := h.cartCommands.RemoveItem(c.Request.Context(), userID, productID)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Clear cart
// @Description Remove every line from the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} map[string]string
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error")
		return
	}

	if err := h.cartCommands.Clear(c.Request.Context(), userID); err != nil {
		h.respondCartError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Apply discounts
// @Description Apply a percentage discount campaign to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyDiscountRequest true "Campaign parameters"
// @Success 200 {object} resdto.ApplyDiscountResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/discounts [post]
func (h *CartHandler) ApplyDiscounts(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error")
		return
	}

	var req reqdto.ApplyDiscountRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	strategy, err := req.ToStrategy()
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidPercentage) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Percentage must be between 0 and 100")
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid campaign parameters")
		return
	}

	applied, err := h.cartCommands.ApplyDiscounts(c.Request.Context(), userID, strategy)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	view, err := h.cartQueries.GetActiveCart(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.ApplyDiscountResponse{
		Applied: applied,
		Cart:    resdto.FromCartView(view),
	})
}

// @Summary Checkout
// @Description Convert the active cart into a pending order
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Payment method"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error")
		return
	}

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	result, err := h.cartCommands.Checkout(c.Request.Context(), userID, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidPaymentMethod):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unsupported payment method")
		case errors.Is(err, errs.ErrCartNotFound), errors.Is(err, errs.ErrEmptyCart):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cart is empty")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOrderView(result.Order))
}

func (h *CartHandler) respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found")
	case errors.Is(err, errs.ErrCartNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cart not found")
	case errors.Is(err, errs.ErrCartItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not in cart")
	case errors.Is(err, errs.ErrInvalidQuantity):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Quantity must be positive")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

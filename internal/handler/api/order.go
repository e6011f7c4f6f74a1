package api

import (
	"errors"
	"net/http"

	resdto "keyshop/internal/handler/dto/response"
	"keyshop/internal/handler/httperr"
	"keyshop/internal/handler/middleware"
	"keyshop/internal/pkg/errs"
	"keyshop/internal/usecase/commands"
	"keyshop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	fulfillment  commands.FulfillmentCommands
	orderQueries queries.OrderQueries
}

func NewOrderHandler(fulfillment commands.FulfillmentCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		fulfillment:  fulfillment,
		orderQueries: orderQueries,
	}
}

// @Summary List orders
// @Description List the current user's orders, newest first
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderListResponse
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error")
		return
	}

	items, err := h.orderQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response := make([]*resdto.OrderListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromOrderListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get order
// @Description Get one of the current user's orders by ID
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID format")
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), userID, orderID)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Capture and fulfill order
// @Description Confirm payment capture and allocate activation codes
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/capture [post]
func (h *OrderHandler) CaptureOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID format")
		return
	}

	view, err := h.fulfillment.CaptureAndFulfill(c.Request.Context(), userID, orderID)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Mark order failed
// @Description Cancel a pending order after a failed payment capture
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/fail [post]
func (h *OrderHandler) FailOrder(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID format")
		return
	}

	view, err := h.fulfillment.MarkFailed(c.Request.Context(), userID, orderID)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

func (h *OrderHandler) respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrOrderNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found")
	case errors.Is(err, errs.ErrNotOrderOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Order belongs to another user")
	case errors.Is(err, errs.ErrOrderCancelled):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order is cancelled")
	case errors.Is(err, errs.ErrOutOfStock):
		httperr.AbortWithError(c, http.StatusConflict, err, "Not enough activation codes in stock")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

package api

import (
	"errors"
	"net/http"

	resdto "keyshop/internal/handler/dto/response"
	"keyshop/internal/handler/httperr"
	"keyshop/internal/pkg/errs"
	"keyshop/internal/usecase/commands"
	"keyshop/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	inventoryCommands commands.InventoryCommands
	inventoryQueries  queries.InventoryQueries
}

func NewInventoryHandler(inventoryCommands commands.InventoryCommands, inventoryQueries queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{
		inventoryCommands: inventoryCommands,
		inventoryQueries:  inventoryQueries,
	}
}

// @Summary Stock statistics
// @Description Unused and purchased code counts for a product
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.StockStatsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/inventory/{productId}/stats [get]
func (h *InventoryHandler) GetStockStats(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID format")
		return
	}

	view, err := h.inventoryQueries.StockStats(c.Request.Context(), productID)
	if err != nil {
		h.respondInventoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStockStatsView(view))
}

// @Summary Replenish codes
// @Description Top the product's code pool back up to the configured target
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.ReplenishResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/inventory/{productId}/codes [post]
func (h *InventoryHandler) ReplenishCodes(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID format")
		return
	}

	generated, err := h.inventoryCommands.ReplenishToTarget(c.Request.Context(), productID)
	if err != nil {
		h.respondInventoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ReplenishResponse{
		ProductID: productID,
		Generated: generated,
	})
}

func (h *InventoryHandler) respondInventoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}

package response

import (
	"keyshop/internal/usecase/queries"

	"github.com/google/uuid"
)

type StockStatsResponse struct {
	ProductID uuid.UUID `json:"productId"`
	Unused    int       `json:"unused"`
	Purchased int       `json:"purchased"`
}

type ReplenishResponse struct {
	ProductID uuid.UUID `json:"productId"`
	Generated int       `json:"generated"`
}

func FromStockStatsView(view *queries.StockStatsView) *StockStatsResponse {
	return &StockStatsResponse{
		ProductID: view.ProductID,
		Unused:    view.Unused,
		Purchased: view.Purchased,
	}
}

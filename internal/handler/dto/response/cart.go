package response

import (
	"keyshop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CartItemResponse struct {
	ProductID      uuid.UUID `json:"productId"`
	Title          string    `json:"title"`
	ImageURL       string    `json:"imageUrl"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Quantity       int       `json:"quantity"`
	DiscountCents  int64     `json:"discountCents"`
	SubtotalCents  int64     `json:"subtotalCents"`
}

type CartResponse struct {
	ID               uuid.UUID          `json:"id"`
	UserID           uuid.UUID          `json:"userId"`
	Status           string             `json:"status"`
	Items            []CartItemResponse `json:"items"`
	TotalCents       int64              `json:"totalCents"`
	DiscountCents    int64              `json:"discountCents"`
	FinalAmountCents int64              `json:"finalAmountCents"`
}

func FromCartView(view *queries.CartView) *CartResponse {
	resp := &CartResponse{}
	_ = copier.Copy(resp, view)
	if resp.Items == nil {
		resp.Items = []CartItemResponse{}
	}
	return resp
}

type ApplyDiscountResponse struct {
	Applied bool          `json:"applied"`
	Cart    *CartResponse `json:"cart"`
}

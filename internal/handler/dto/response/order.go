package response

import (
	"time"

	"keyshop/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderItemResponse struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"productId"`
	Title          string    `json:"title"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	Status         string    `json:"status"`
	ActivationCode *string   `json:"activationCode,omitempty"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	UserID        uuid.UUID           `json:"userId"`
	PaymentMethod string              `json:"paymentMethod"`
	Status        string              `json:"status"`
	AmountCents   int64               `json:"amountCents"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

type OrderListResponse struct {
	ID            uuid.UUID `json:"id"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
	AmountCents   int64     `json:"amountCents"`
	ItemCount     int       `json:"itemCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromOrderView(view *queries.OrderView) *OrderResponse {
	resp := &OrderResponse{}
	_ = copier.Copy(resp, view)
	if resp.Items == nil {
		resp.Items = []OrderItemResponse{}
	}
	return resp
}

func FromOrderListItem(item *queries.OrderListItem) *OrderListResponse {
	resp := &OrderListResponse{}
	_ = copier.Copy(resp, item)
	return resp
}

package request

import (
	"keyshop/internal/domain/pricing"
	"keyshop/internal/domain/product"

	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	// Zero and negative values are accepted and treated as 1.
	Quantity int `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// ApplyDiscountRequest describes a percentage campaign scoped to an optional
// product set. An empty scope covers the whole cart.
type ApplyDiscountRequest struct {
	PercentOff float64     `json:"percent_off" binding:"required"`
	ProductIDs []uuid.UUID `json:"product_ids,omitempty"`
}

func (r ApplyDiscountRequest) ToStrategy() (pricing.Strategy, error) {
	if len(r.ProductIDs) == 0 {
		return pricing.NewPercentageStrategy(r.PercentOff, nil)
	}

	scope := make(map[uuid.UUID]struct{}, len(r.ProductIDs))
	for _, id := range r.ProductIDs {
		scope[id] = struct{}{}
	}
	return pricing.NewPercentageStrategy(r.PercentOff, func(p product.Product) bool {
		_, ok := scope[p.ID()]
		return ok
	})
}

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

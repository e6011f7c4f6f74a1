//go:build unit || e2e

package builder

import (
	reqdto "keyshop/internal/handler/dto/request"
	"keyshop/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartBuilder struct {
	UserID         uuid.UUID
	ProductID      uuid.UUID
	Title          string
	UnitPriceCents int64
	Quantity       int
	DiscountCents  int64
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{
		UserID:         uuid.New(),
		ProductID:      uuid.New(),
		Title:          "Desk Organizer Pro",
		UnitPriceCents: 9999,
		Quantity:       1,
	}
}

func (b *CartBuilder) With(mutate func(*CartBuilder)) *CartBuilder {
	mutate(b)
	return b
}

func (b *CartBuilder) BuildAddItemRequest() reqdto.AddCartItemRequest {
	return reqdto.AddCartItemRequest{
		ProductID: b.ProductID,
		Quantity:  b.Quantity,
	}
}

func (b *CartBuilder) BuildView() *queries.CartView {
	subtotal := b.UnitPriceCents * int64(b.Quantity)
	final := subtotal - b.DiscountCents
	if final < 0 {
		final = 0
	}
	return &queries.CartView{
		ID:     uuid.New(),
		UserID: b.UserID,
		Status: "active",
		Items: []queries.CartItemView{
			{
				ProductID:      b.ProductID,
				Title:          b.Title,
				UnitPriceCents: b.UnitPriceCents,
				Quantity:       b.Quantity,
				DiscountCents:  b.DiscountCents,
				SubtotalCents:  subtotal,
			},
		},
		TotalCents:       subtotal,
		DiscountCents:    b.DiscountCents,
		FinalAmountCents: final,
	}
}

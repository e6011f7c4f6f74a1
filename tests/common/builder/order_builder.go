//go:build unit || e2e

package builder

import (
	"time"

	"keyshop/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	OrderID       uuid.UUID
	UserID        uuid.UUID
	ProductID     uuid.UUID
	Title         string
	PaymentMethod string
	Status        string
	ItemCount     int
	PriceCents    int64
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		OrderID:       uuid.New(),
		UserID:        uuid.New(),
		ProductID:     uuid.New(),
		Title:         "Desk Organizer Pro",
		PaymentMethod: "CREDIT_CARD",
		Status:        "pending",
		ItemCount:     1,
		PriceCents:    9999,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	now := time.Now().UTC().Truncate(time.Second)
	items := make([]queries.OrderItemView, b.ItemCount)
	for i := range items {
		items[i] = queries.OrderItemView{
			ID:             uuid.New(),
			ProductID:      b.ProductID,
			Title:          b.Title,
			UnitPriceCents: b.PriceCents,
			Status:         b.Status,
		}
	}
	return &queries.OrderView{
		ID:            b.OrderID,
		UserID:        b.UserID,
		PaymentMethod: b.PaymentMethod,
		Status:        b.Status,
		AmountCents:   b.PriceCents * int64(b.ItemCount),
		Items:         items,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *OrderBuilder) BuildListItem() *queries.OrderListItem {
	return &queries.OrderListItem{
		ID:            b.OrderID,
		PaymentMethod: b.PaymentMethod,
		Status:        b.Status,
		AmountCents:   b.PriceCents * int64(b.ItemCount),
		ItemCount:     b.ItemCount,
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}
}

package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type CartItemView struct {
	ProductID      uuid.UUID `json:"product_id"`
	Title          string    `json:"title"`
	ImageURL       string    `json:"image_url"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int       `json:"quantity"`
	DiscountCents  int64     `json:"discount_cents"`
	SubtotalCents  int64     `json:"subtotal_cents"`
}

type CartView struct {
	ID               uuid.UUID      `json:"id"`
	UserID           uuid.UUID      `json:"user_id"`
	Status           string         `json:"status"`
	Items            []CartItemView `json:"items"`
	TotalCents       int64          `json:"total_cents"`
	DiscountCents    int64          `json:"discount_cents"`
	FinalAmountCents int64          `json:"final_amount_cents"`
}

type OrderItemView struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"product_id"`
	Title          string    `json:"title"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Status         string    `json:"status"`
	// Set once the item is fulfilled.
	ActivationCode *string `json:"activation_code,omitempty"`
}

type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	AmountCents   int64           `json:"amount_cents"`
	Items         []OrderItemView `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type OrderListItem struct {
	ID            uuid.UUID `json:"id"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	AmountCents   int64     `json:"amount_cents"`
	ItemCount     int       `json:"item_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type StockStatsView struct {
	ProductID uuid.UUID `json:"product_id"`
	Unused    int       `json:"unused"`
	Purchased int       `json:"purchased"`
}

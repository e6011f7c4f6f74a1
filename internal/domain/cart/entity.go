package cart

import (
	"errors"
	"time"

	"keyshop/internal/domain/pricing"
	"keyshop/internal/domain/product"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound      = errors.New("item not found in cart")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrEmptyCart         = errors.New("cart has no items")
	ErrAlreadyCheckedOut = errors.New("cart is already checked out")
)

type Status string

const (
	StatusActive     Status = "active"
	StatusCheckedOut Status = "checked_out"
)

type Item struct {
	id             uuid.UUID
	productID      uuid.UUID
	unitPriceCents int64
	quantity       int
	discountCents  int64
}

func NewItem(productID uuid.UUID, unitPriceCents int64, quantity int) Item {
	// Non-positive quantities on add are corrected to 1. UpdateQuantity
	// rejects them instead; both behaviors are load-bearing for existing
	// clients.
	if quantity < 1 {
		quantity = 1
	}
	return Item{
		id:             uuid.New(),
		productID:      productID,
		unitPriceCents: unitPriceCents,
		quantity:       quantity,
	}
}

func ReconstructItem(id, productID uuid.UUID, unitPriceCents int64, quantity int, discountCents int64) Item {
	return Item{
		id:             id,
		productID:      productID,
		unitPriceCents: unitPriceCents,
		quantity:       quantity,
		discountCents:  discountCents,
	}
}

func (i Item) ID() uuid.UUID         { return i.id }
func (i Item) ProductID() uuid.UUID  { return i.productID }
func (i Item) UnitPriceCents() int64 { return i.unitPriceCents }
func (i Item) Quantity() int         { return i.quantity }
func (i Item) DiscountCents() int64  { return i.discountCents }

func (i Item) SubtotalCents() int64 {
	return i.unitPriceCents * int64(i.quantity)
}

type Cart struct {
	id        uuid.UUID
	userID    uuid.UUID
	status    Status
	items     []Item
	createdAt time.Time
	updatedAt time.Time
}

func NewCart(userID uuid.UUID) *Cart {
	return &Cart{
		id:     uuid.New(),
		userID: userID,
		status: StatusActive,
	}
}

func Reconstruct(id, userID uuid.UUID, status Status, items []Item, createdAt, updatedAt time.Time) *Cart {
	return &Cart{
		id:        id,
		userID:    userID,
		status:    status,
		items:     items,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Cart) ID() uuid.UUID        { return c.id }
func (c *Cart) UserID() uuid.UUID    { return c.userID }
func (c *Cart) Status() Status       { return c.status }
func (c *Cart) Items() []Item        { return c.items }
func (c *Cart) CreatedAt() time.Time { return c.createdAt }
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) IsCheckedOut() bool {
	return c.status == StatusCheckedOut
}

// AddItem appends a line for the product, or increments the existing line.
// The unit price is snapshotted at add time and not refreshed afterwards.
func (c *Cart) AddItem(productID uuid.UUID, unitPriceCents int64, quantity int) error {
	if c.IsCheckedOut() {
		return ErrAlreadyCheckedOut
	}
	if quantity < 1 {
		quantity = 1
	}
	for idx, item := range c.items {
		if item.productID == productID {
			c.items[idx].quantity += quantity
			return nil
		}
	}
	c.items = append(c.items, NewItem(productID, unitPriceCents, quantity))
	return nil
}

func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) error {
	if c.IsCheckedOut() {
		return ErrAlreadyCheckedOut
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	for idx, item := range c.items {
		if item.productID == productID {
			c.items[idx].quantity = quantity
			return nil
		}
	}
	return ErrItemNotFound
}

func (c *Cart) RemoveItem(productID uuid.UUID) error {
	if c.IsCheckedOut() {
		return ErrAlreadyCheckedOut
	}
	for idx, item := range c.items {
		if item.productID == productID {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

func (c *Cart) Clear() error {
	if c.IsCheckedOut() {
		return ErrAlreadyCheckedOut
	}
	c.items = nil
	return nil
}

// TotalCents sums unit price times quantity over all lines, ignoring any
// recorded discounts.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, item := range c.items {
		total += item.SubtotalCents()
	}
	return total
}

func (c *Cart) DiscountCents() int64 {
	var total int64
	for _, item := range c.items {
		total += item.discountCents
	}
	return total
}

// FinalAmountCents is the discounted total, floored at zero.
func (c *Cart) FinalAmountCents() int64 {
	final := c.TotalCents() - c.DiscountCents()
	if final < 0 {
		return 0
	}
	return final
}

// ApplyDiscounts records a discount on every line whose product the strategy
// covers. Reports whether any line was discounted. Re-applying replaces the
// previously recorded amounts.
func (c *Cart) ApplyDiscounts(strategy pricing.Strategy, catalog map[uuid.UUID]product.Product) bool {
	applied := false
	for idx, item := range c.items {
		p, ok := catalog[item.productID]
		if !ok || !strategy.IsApplicable(p) {
			continue
		}
		discount := strategy.Discount(p, item.unitPriceCents) * int64(item.quantity)
		if discount < 0 {
			discount = 0
		}
		c.items[idx].discountCents = discount
		applied = applied || discount > 0
	}
	return applied
}

// MarkCheckedOut transitions the cart to checked_out. The cart must be
// non-empty; the transition happens exactly once.
func (c *Cart) MarkCheckedOut() error {
	if c.IsCheckedOut() {
		return ErrAlreadyCheckedOut
	}
	if c.IsEmpty() {
		return ErrEmptyCart
	}
	c.status = StatusCheckedOut
	return nil
}

func (c *Cart) TotalQuantity() int {
	var total int
	for _, item := range c.items {
		total += item.quantity
	}
	return total
}

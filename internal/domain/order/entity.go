package order

import (
	"errors"
	"time"

	"keyshop/internal/domain/cart"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart          = errors.New("cannot create order from empty cart")
	ErrInvalidTransition  = errors.New("invalid order status transition")
	ErrNotOwner           = errors.New("order belongs to another user")
	ErrNoItems            = errors.New("order has no items")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrUnknownPaymentKind = errors.New("unknown payment method")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func NewStatus(s string) (Status, error) {
	status := Status(s)
	switch status {
	case StatusPending, StatusCompleted, StatusCancelled:
		return status, nil
	}
	return "", ErrInvalidStatus
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo encodes the monotonic state machine:
// pending -> completed | cancelled, nothing out of a terminal state.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && next.IsTerminal()
}

type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentWallet       PaymentMethod = "WALLET"
)

func NewPaymentMethod(s string) (PaymentMethod, error) {
	method := PaymentMethod(s)
	switch method {
	case PaymentCreditCard, PaymentBankTransfer, PaymentWallet:
		return method, nil
	}
	return "", ErrUnknownPaymentKind
}

// Item is a single fulfillable unit. A cart line with quantity n becomes n
// order items, because each one receives its own activation code.
type Item struct {
	id             uuid.UUID
	productID      uuid.UUID
	unitPriceCents int64
	status         Status
}

func NewItem(productID uuid.UUID, unitPriceCents int64) Item {
	return Item{
		id:             uuid.New(),
		productID:      productID,
		unitPriceCents: unitPriceCents,
		status:         StatusPending,
	}
}

func ReconstructItem(id, productID uuid.UUID, unitPriceCents int64, status Status) Item {
	return Item{
		id:             id,
		productID:      productID,
		unitPriceCents: unitPriceCents,
		status:         status,
	}
}

func (i Item) ID() uuid.UUID         { return i.id }
func (i Item) ProductID() uuid.UUID  { return i.productID }
func (i Item) UnitPriceCents() int64 { return i.unitPriceCents }
func (i Item) Status() Status        { return i.status }

type Order struct {
	id            uuid.UUID
	userID        uuid.UUID
	paymentMethod PaymentMethod
	status        Status
	amountCents   int64
	items         []Item
	createdAt     time.Time
	updatedAt     time.Time
}

// FromCart snapshots a non-empty cart into a pending order. Prices and
// quantities are frozen here; later catalog changes do not affect the order.
func FromCart(c *cart.Cart, paymentMethod PaymentMethod) (*Order, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	var items []Item
	for _, line := range c.Items() {
		for range line.Quantity() {
			items = append(items, NewItem(line.ProductID(), line.UnitPriceCents()))
		}
	}

	return &Order{
		id:            uuid.New(),
		userID:        c.UserID(),
		paymentMethod: paymentMethod,
		status:        StatusPending,
		amountCents:   c.FinalAmountCents(),
		items:         items,
	}, nil
}

func Reconstruct(
	id, userID uuid.UUID,
	paymentMethod PaymentMethod,
	status Status,
	amountCents int64,
	items []Item,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:            id,
		userID:        userID,
		paymentMethod: paymentMethod,
		status:        status,
		amountCents:   amountCents,
		items:         items,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) UserID() uuid.UUID            { return o.userID }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) Status() Status               { return o.status }
func (o *Order) AmountCents() int64           { return o.amountCents }
func (o *Order) Items() []Item                { return o.items }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }

func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.userID == userID
}

func (o *Order) IsCompleted() bool {
	return o.status == StatusCompleted
}

func (o *Order) IsCancelled() bool {
	return o.status == StatusCancelled
}

// Complete marks the order and every item completed.
func (o *Order) Complete() error {
	if !o.status.CanTransitionTo(StatusCompleted) {
		return ErrInvalidTransition
	}
	o.status = StatusCompleted
	for idx := range o.items {
		o.items[idx].status = StatusCompleted
	}
	return nil
}

// Cancel marks the order and every item cancelled.
func (o *Order) Cancel() error {
	if !o.status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	o.status = StatusCancelled
	for idx := range o.items {
		o.items[idx].status = StatusCancelled
	}
	return nil
}

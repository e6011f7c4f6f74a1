package commands

import (
	"context"

	"keyshop/internal/domain/cart"
	"keyshop/internal/domain/inventory"
	"keyshop/internal/domain/order"
	"keyshop/internal/domain/product"
	"keyshop/internal/infra/db"

	"github.com/google/uuid"
)

// Repository ports, declared on the consumer side. Implementations live in
// internal/infra/repository.

type ProductReader interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (product.Product, error)
	FindByIDs(ctx context.Context, dbtx db.DBTX, ids []uuid.UUID) (map[uuid.UUID]product.Product, error)
}

type CartRepository interface {
	FindActiveByUser(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, lock bool) (*cart.Cart, error)
	Create(ctx context.Context, dbtx db.DBTX, c *cart.Cart) error
	ReplaceItems(ctx context.Context, dbtx db.DBTX, c *cart.Cart) error
	UpdateStatus(ctx context.Context, dbtx db.DBTX, cartID uuid.UUID, status cart.Status) error
}

type OrderRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, o *order.Order) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID, lock bool) (*order.Order, error)
	SaveStatus(ctx context.Context, dbtx db.DBTX, o *order.Order) error
}

type ActivationCodeRepository interface {
	Claim(ctx context.Context, dbtx db.DBTX, productID, userID, orderItemID uuid.UUID) (inventory.AllocatedCode, error)
	InsertUnusedBatch(ctx context.Context, dbtx db.DBTX, codes []inventory.UnusedCode) error
	CountUnused(ctx context.Context, dbtx db.DBTX, productID uuid.UUID) (int, error)
	LockProduct(ctx context.Context, dbtx db.DBTX, productID uuid.UUID) error
}

// CodeAllocator is the slice of the inventory manager that fulfillment
// consumes. ClaimCode runs on the caller's transaction so an aborted
// fulfillment never leaks a claimed code.
type CodeAllocator interface {
	ClaimCode(ctx context.Context, tx db.DBTX, userID, orderItemID, productID uuid.UUID) (inventory.AllocatedCode, error)
	ReplenishToTarget(ctx context.Context, productID uuid.UUID) (int, error)
}

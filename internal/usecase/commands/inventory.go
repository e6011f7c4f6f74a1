package commands

import (
	"context"
	"log/slog"

	"keyshop/internal/domain/inventory"
	"keyshop/internal/infra"
	"keyshop/internal/infra/db"
	"keyshop/internal/pkg/config"
	"keyshop/internal/pkg/errs"
	"keyshop/internal/usecase/shared"

	"github.com/google/uuid"
)

type AssignedCode struct {
	Code        string
	ProductID   uuid.UUID
	OrderItemID uuid.UUID
}

type InventoryCommands interface {
	CodeAllocator

	// GenerateInitialCodes seeds a product's code pool up to the configured
	// target. Safe to call on a product that already has stock.
	GenerateInitialCodes(ctx context.Context, productID uuid.UUID) (int, error)
	// AssignCodeToOrderItem claims one code for the order item and triggers a
	// best-effort replenishment afterwards.
	AssignCodeToOrderItem(ctx context.Context, userID, orderItemID, productID uuid.UUID) (*AssignedCode, error)
}

type inventoryCommandsImpl struct {
	uow   shared.UnitOfWork
	codes ActivationCodeRepository
	cfg   config.InventoryConfig
}

func NewInventoryCommands(uow shared.UnitOfWork, codes ActivationCodeRepository, cfg config.InventoryConfig) InventoryCommands {
	return &inventoryCommandsImpl{uow: uow, codes: codes, cfg: cfg}
}

func (i *inventoryCommandsImpl) GenerateInitialCodes(ctx context.Context, productID uuid.UUID) (int, error) {
	return i.ReplenishToTarget(ctx, productID)
}

func (i *inventoryCommandsImpl) ReplenishToTarget(ctx context.Context, productID uuid.UUID) (int, error) {
	var generated int
	err := i.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		// The product row lock serializes replenishers; whoever arrives
		// second recounts after the first committed and finds no shortfall.
		if err := i.codes.LockProduct(ctx, tx, productID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrProductNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		unused, err := i.codes.CountUnused(ctx, tx, productID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		shortfall := i.cfg.TargetStock - unused
		if shortfall <= 0 {
			return nil
		}

		batch := make([]inventory.UnusedCode, 0, shortfall)
		for range shortfall {
			raw, err := inventory.NewCodeString(i.cfg.CodeLength)
			if err != nil {
				return errs.Wrap(err, "generate activation code")
			}
			code, err := inventory.NewUnusedCode(productID, raw)
			if err != nil {
				return err
			}
			batch = append(batch, code)
		}

		if err := i.codes.InsertUnusedBatch(ctx, tx, batch); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		generated = shortfall
		return nil
	})
	if err != nil {
		return 0, err
	}
	return generated, nil
}

func (i *inventoryCommandsImpl) AssignCodeToOrderItem(ctx context.Context, userID, orderItemID, productID uuid.UUID) (*AssignedCode, error) {
	var allocated inventory.AllocatedCode
	err := i.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		allocated, err = i.ClaimCode(ctx, tx, userID, orderItemID, productID)
		return err
	})
	if err != nil {
		return nil, err
	}

	// Replenishment runs in its own transaction after the claim committed;
	// a failure here leaves the pool short, not the order broken.
	i.replenishBestEffort(ctx, productID)

	return &AssignedCode{
		Code:        allocated.Code(),
		ProductID:   allocated.ProductID(),
		OrderItemID: allocated.OrderItemID(),
	}, nil
}

// ClaimCode moves one unused code to the allocated pool on the caller's
// transaction. An empty pool surfaces as ErrOutOfStock.
func (i *inventoryCommandsImpl) ClaimCode(ctx context.Context, tx db.DBTX, userID, orderItemID, productID uuid.UUID) (inventory.AllocatedCode, error) {
	allocated, err := i.codes.Claim(ctx, tx, productID, userID, orderItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return inventory.AllocatedCode{}, errs.ErrOutOfStock
		}
		return inventory.AllocatedCode{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return allocated, nil
}

func (i *inventoryCommandsImpl) replenishBestEffort(ctx context.Context, productID uuid.UUID) {
	if _, err := i.ReplenishToTarget(ctx, productID); err != nil {
		slog.Warn("replenishment after claim failed", "product_id", productID, "error", err)
	}
}

package commands

import (
	"context"
	"errors"

	"keyshop/internal/domain/cart"
	"keyshop/internal/domain/order"
	"keyshop/internal/domain/pricing"
	"keyshop/internal/infra"
	"keyshop/internal/infra/db"
	"keyshop/internal/pkg/errs"
	"keyshop/internal/usecase/queries"
	"keyshop/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutResult struct {
	Order *queries.OrderView
}

type CartCommands interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*queries.CartView, error)
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*queries.CartView, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*queries.CartView, error)
	Clear(ctx context.Context, userID uuid.UUID) error
	// ApplyDiscounts records per-line discounts for every cart line the
	// strategy covers and reports whether anything was discounted.
	ApplyDiscounts(ctx context.Context, userID uuid.UUID, strategy pricing.Strategy) (bool, error)
	// Checkout converts the user's non-empty cart into a pending order.
	// Inventory is not touched here; codes are claimed at fulfillment.
	Checkout(ctx context.Context, userID uuid.UUID, paymentMethod string) (*CheckoutResult, error)
}

type cartCommandsImpl struct {
	uow          shared.UnitOfWork
	cartRepo     CartRepository
	orderRepo    OrderRepository
	products     ProductReader
	cartQueries  queries.CartQueries
	orderQueries queries.OrderQueries
}

func NewCartCommands(
	uow shared.UnitOfWork,
	cartRepo CartRepository,
	orderRepo OrderRepository,
	products ProductReader,
	cartQueries queries.CartQueries,
	orderQueries queries.OrderQueries,
) CartCommands {
	return &cartCommandsImpl{
		uow:          uow,
		cartRepo:     cartRepo,
		orderRepo:    orderRepo,
		products:     products,
		cartQueries:  cartQueries,
		orderQueries: orderQueries,
	}
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*queries.CartView, error) {
	add := func(ctx context.Context, tx db.DBTX) error {
		current, created, err := c.loadOrCreateCart(ctx, tx, userID)
		if err != nil {
			return err
		}

		p, err := c.products.FindByID(ctx, tx, productID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrProductNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := current.AddItem(p.ID(), p.UnitPriceCents(), quantity); err != nil {
			return err
		}

		if created {
			if err := c.cartRepo.Create(ctx, tx, current); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return c.persistItems(ctx, tx, current)
	}

	err := c.uow.Within(ctx, add)
	if infra.IsKind(err, infra.KindDuplicateKey) {
		// Two first adds raced to create the cart. The loser's unique
		// violation means the winner committed, so a rerun finds that cart.
		err = c.uow.Within(ctx, add)
	}
	if err != nil {
		return nil, err
	}

	return c.cartQueries.GetActiveCart(ctx, userID)
}

func (c *cartCommandsImpl) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*queries.CartView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		current, err := c.loadCart(ctx, tx, userID)
		if err != nil {
			return err
		}

		if err := current.UpdateQuantity(productID, quantity); err != nil {
			switch {
			case errors.Is(err, cart.ErrInvalidQuantity):
				return errs.ErrInvalidQuantity
			case errors.Is(err, cart.ErrItemNotFound):
				return errs.ErrCartItemNotFound
			}
			return err
		}
		return c.persistItems(ctx, tx, current)
	})
	if err != nil {
		return nil, err
	}

	return c.cartQueries.GetActiveCart(ctx, userID)
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*queries.CartView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		current, err := c.loadCart(ctx, tx, userID)
		if err != nil {
			return err
		}

		if err := current.RemoveItem(productID); err != nil {
			if errors.Is(err, cart.ErrItemNotFound) {
				return errs.ErrCartItemNotFound
			}
			return err
		}
		return c.persistItems(ctx, tx, current)
	})
	if err != nil {
		return nil, err
	}

	return c.cartQueries.GetActiveCart(ctx, userID)
}

func (c *cartCommandsImpl) Clear(ctx context.Context, userID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		current, err := c.cartRepo.FindActiveByUser(ctx, tx, userID, true)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Nothing to clear.
				return nil
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := current.Clear(); err != nil {
			return err
		}
		return c.persistItems(ctx, tx, current)
	})
}

func (c *cartCommandsImpl) ApplyDiscounts(ctx context.Context, userID uuid.UUID, strategy pricing.Strategy) (bool, error) {
	var applied bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		current, err := c.loadCart(ctx, tx, userID)
		if err != nil {
			return err
		}

		productIDs := make([]uuid.UUID, 0, len(current.Items()))
		for _, item := range current.Items() {
			productIDs = append(productIDs, item.ProductID())
		}

		catalog, err := c.products.FindByIDs(ctx, tx, productIDs)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		applied = current.ApplyDiscounts(strategy, catalog)
		return c.persistItems(ctx, tx, current)
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

func (c *cartCommandsImpl) Checkout(ctx context.Context, userID uuid.UUID, paymentMethod string) (*CheckoutResult, error) {
	method, err := order.NewPaymentMethod(paymentMethod)
	if err != nil {
		return nil, errs.ErrInvalidPaymentMethod
	}

	var orderID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		current, err := c.loadCart(ctx, tx, userID)
		if err != nil {
			return err
		}

		newOrder, err := order.FromCart(current, method)
		if err != nil {
			if errors.Is(err, order.ErrEmptyCart) {
				return errs.ErrEmptyCart
			}
			return err
		}

		if err := current.MarkCheckedOut(); err != nil {
			if errors.Is(err, cart.ErrEmptyCart) {
				return errs.ErrEmptyCart
			}
			return err
		}

		if err := c.orderRepo.Create(ctx, tx, newOrder); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := c.cartRepo.UpdateStatus(ctx, tx, current.ID(), cart.StatusCheckedOut); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		orderID = newOrder.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: serve the full view from the read store
	view, err := c.orderQueries.GetByIDSystem(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &CheckoutResult{Order: view}, nil
}

func (c *cartCommandsImpl) loadCart(ctx context.Context, tx db.DBTX, userID uuid.UUID) (*cart.Cart, error) {
	current, err := c.cartRepo.FindActiveByUser(ctx, tx, userID, true)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCartNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return current, nil
}

func (c *cartCommandsImpl) loadOrCreateCart(ctx context.Context, tx db.DBTX, userID uuid.UUID) (*cart.Cart, bool, error) {
	current, err := c.cartRepo.FindActiveByUser(ctx, tx, userID, true)
	if err == nil {
		return current, false, nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return cart.NewCart(userID), true, nil
	}
	return nil, false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

func (c *cartCommandsImpl) persistItems(ctx context.Context, tx db.DBTX, current *cart.Cart) error {
	if err := c.cartRepo.ReplaceItems(ctx, tx, current); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Cart errors
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCartCheckedOut   = errors.New("cart is already checked out")
	ErrInvalidQuantity  = errors.New("quantity must be positive")

	// Checkout errors
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// Order errors
	ErrOrderNotFound  = errors.New("order not found")
	ErrNotOrderOwner  = errors.New("order belongs to another user")
	ErrOrderCancelled = errors.New("order is cancelled")

	// Inventory errors
	ErrProductNotFound = errors.New("product not found")
	ErrOutOfStock      = errors.New("no activation code available")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

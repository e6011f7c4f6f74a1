//go:build unit

package commands_test

import (
	"context"

	"keyshop/internal/infra/db"
)

// stubUnitOfWork runs the function directly with a nil transaction handle.
// Command tests assert behavior against mocked repositories, so no real
// transaction is needed.
type stubUnitOfWork struct{}

func (stubUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

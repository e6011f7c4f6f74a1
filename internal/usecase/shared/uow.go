package shared

import (
	"context"

	"keyshop/internal/infra/db"
)

// UnitOfWork runs a function inside one all-or-nothing transaction. Every
// command that touches more than one row goes through it.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}

package uow

import (
	"context"

	"keyshop/internal/infra/db"
	"keyshop/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

const maxTxRetries = 3

type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
}

func NewPostgresUnitOfWork(pool *pgxpool.Pool) *PostgresUnitOfWork {
	return &PostgresUnitOfWork{pool: pool}
}

func (u *PostgresUnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	_, err := shared.RunInTxWithRetry(ctx, u.pool, maxTxRetries, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, fn(ctx, tx)
	})
	return err
}

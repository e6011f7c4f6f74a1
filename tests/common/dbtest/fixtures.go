//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestProduct(t *testing.T, db DBLike, title string, unitPriceCents int64) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO products (id, title, unit_price_cents, image_url) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING",
		productID, title, unitPriceCents, "https://img.example.com/"+productID.String()+".png")
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())

	return productID
}

func CreateTestUnusedCode(t *testing.T, db DBLike, productID uuid.UUID, code string) uuid.UUID {
	t.Helper()

	codeID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO unused_activation_codes (id, product_id, code) VALUES ($1, $2, $3)",
		codeID, productID, code)
	require.NoError(t, err)

	return codeID
}

func CountUnusedCodes(t *testing.T, db DBLike, productID uuid.UUID) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM unused_activation_codes WHERE product_id = $1", productID).Scan(&count)
	require.NoError(t, err)
	return count
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO products (id, title, unit_price_cents, image_url) VALUES
		    (gen_random_uuid(), 'Desk Organizer Pro', 9999, 'https://img.example.com/desk-organizer.png'),
		    (gen_random_uuid(), 'Photo Editor Plus', 4999, 'https://img.example.com/photo-editor.png')
		ON CONFLICT DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

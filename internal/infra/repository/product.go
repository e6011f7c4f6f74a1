package repository

import (
	"context"

	"keyshop/internal/domain/product"
	"keyshop/internal/infra"
	"keyshop/internal/infra/db"
	"keyshop/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const findProductByID = `
SELECT id, title, unit_price_cents, image_url
FROM products
WHERE id = $1
`

const findProductsByIDs = `
SELECT id, title, unit_price_cents, image_url
FROM products
WHERE id = ANY($1)
`

// ProductRepository reads catalog snapshots. The catalog is owned by an
// external service; this side never writes it.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (product.Product, error) {
	var (
		productID      uuid.UUID
		title          string
		unitPriceCents int64
		imageURL       string
	)
	err := dbtx.QueryRow(ctx, findProductByID, id).Scan(&productID, &title, &unitPriceCents, &imageURL)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return product.Product{}, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return product.Product{}, infra.WrapRepoErr("failed to find product", err)
	}

	return product.Reconstruct(productID, title, unitPriceCents, imageURL), nil
}

func (r *ProductRepository) FindByIDs(ctx context.Context, dbtx db.DBTX, ids []uuid.UUID) (map[uuid.UUID]product.Product, error) {
	rows, err := dbtx.Query(ctx, findProductsByIDs, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find products", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]product.Product, len(ids))
	for rows.Next() {
		var (
			productID      uuid.UUID
			title          string
			unitPriceCents int64
			imageURL       string
		)
		if err := rows.Scan(&productID, &title, &unitPriceCents, &imageURL); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		result[productID] = product.Reconstruct(productID, title, unitPriceCents, imageURL)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}

	return result, nil
}

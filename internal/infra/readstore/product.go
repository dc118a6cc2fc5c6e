package readstore

import (
	"context"

	"brewpoints/internal/domain/product"
	"brewpoints/internal/infra"
	"brewpoints/internal/infra/db"
	"brewpoints/internal/usecase/queries"
	"brewpoints/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

const productColumns = `
	id, name, description, price_cents, image_url,
	category, subcategory, available, created_at, updated_at`

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	query := `SELECT` + productColumns + ` FROM products WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	view, err := scanProductView(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}

	return view, nil
}

// FindSnapshotByID is the write-side read used by the purchase command to
// capture the price at purchase time.
func (r *ProductReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	const query = `SELECT id, name, price_cents, available FROM products WHERE id = $1`

	var snap shared.ProductSnapshot
	err := r.db.QueryRow(ctx, query, id).
		Scan(&snap.ID, &snap.Name, &snap.PriceCents, &snap.Available)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product snapshot", err)
	}

	return &snap, nil
}

func (r *ProductReadStore) FindAvailable(ctx context.Context) ([]*queries.ProductView, error) {
	query := `SELECT` + productColumns + `
		FROM products
		WHERE available
		ORDER BY category, subcategory, name`

	return r.list(ctx, query)
}

func (r *ProductReadStore) FindAll(ctx context.Context) ([]*queries.ProductView, error) {
	query := `SELECT` + productColumns + ` FROM products ORDER BY category, subcategory, name`

	return r.list(ctx, query)
}

func (r *ProductReadStore) list(ctx context.Context, query string) ([]*queries.ProductView, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	views := []*queries.ProductView{}
	for rows.Next() {
		view, err := scanProductView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate products", err)
	}

	return views, nil
}

func scanProductView(row pgx.Row) (*queries.ProductView, error) {
	var v queries.ProductView
	err := row.Scan(
		&v.ID, &v.Name, &v.Description, &v.PriceCents, &v.ImageURL,
		&v.Category, &v.Subcategory, &v.Available, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	parts := product.ParseSubcategory(v.Subcategory)
	v.Roast = parts.Roast
	v.Origin = parts.Origin

	return &v, nil
}

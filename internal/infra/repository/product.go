package repository

import (
	"context"

	"brewpoints/internal/domain/product"
	"brewpoints/internal/infra"
	"brewpoints/internal/infra/db"
	"brewpoints/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(dbtx db.DBTX) shared.ProductRepository {
	return &ProductRepository{db: dbtx}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) (uuid.UUID, error) {
	const insert = `
		INSERT INTO products (id, name, description, price_cents, image_url, category, subcategory, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, insert,
		p.ID(), p.Name(), p.Description(), p.PriceCents(),
		p.ImageURL(), p.Category(), p.Subcategory(), p.Available())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create product", err, writeErrKind(err))
	}

	return p.ID(), nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	const update = `
		UPDATE products
		SET name = $2,
		    description = $3,
		    price_cents = $4,
		    image_url = $5,
		    category = $6,
		    subcategory = $7,
		    available = $8,
		    updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, update,
		p.ID(), p.Name(), p.Description(), p.PriceCents(),
		p.ImageURL(), p.Category(), p.Subcategory(), p.Available())
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err, writeErrKind(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const del = `DELETE FROM products WHERE id = $1`

	tag, err := r.db.Exec(ctx, del, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err, writeErrKind(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}

	return nil
}

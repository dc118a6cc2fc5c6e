package commands

import (
	"context"

	"brewpoints/internal/domain/product"
	"brewpoints/internal/infra"
	"brewpoints/internal/pkg/errs"
	"brewpoints/internal/usecase/queries"
	"brewpoints/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errs.New("product not found")
	ErrInvalidProduct  = errs.New("invalid product")
)

type CreateProductParams struct {
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
	Category    string
	Subcategory string
	Available   bool
}

type ProductCommands interface {
	Create(ctx context.Context, params CreateProductParams) (*queries.ProductView, error)
	Update(ctx context.Context, id uuid.UUID, params CreateProductParams) (*queries.ProductView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productUseCaseImpl struct {
	uow            shared.UnitOfWork
	productQueries queries.ProductQueries
}

func NewProductUseCase(uow shared.UnitOfWork, productQueries queries.ProductQueries) ProductCommands {
	return &productUseCaseImpl{
		uow:            uow,
		productQueries: productQueries,
	}
}

func (p *productUseCaseImpl) Create(ctx context.Context, params CreateProductParams) (*queries.ProductView, error) {
	entity, err := product.NewProduct(
		params.Name,
		params.Description,
		params.PriceCents,
		params.ImageURL,
		params.Category,
		params.Subcategory,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidProduct)
	}

	var id uuid.UUID
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		id, txErr = tx.Products().Create(ctx, entity)
		return txErr
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	return p.productQueries.GetByID(ctx, id)
}

func (p *productUseCaseImpl) Update(ctx context.Context, id uuid.UUID, params CreateProductParams) (*queries.ProductView, error) {
	existing, err := p.productQueries.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	entity := product.Reconstruct(
		existing.ID,
		params.Name,
		params.Description,
		params.PriceCents,
		params.ImageURL,
		params.Category,
		params.Subcategory,
		params.Available,
		existing.CreatedAt,
		existing.UpdatedAt,
	)
	if params.Name == "" || params.PriceCents <= 0 {
		return nil, ErrInvalidProduct
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().Update(ctx, entity)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	return p.productQueries.GetByID(ctx, id)
}

func (p *productUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().Delete(ctx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrProductNotFound
		}
		return errs.Mark(err, ErrStorageUnavailable)
	}
	return nil
}

package queries

import (
	"context"

	"github.com/google/uuid"
)

type ProductQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	// ListAvailable returns listed products ordered by category then
	// subcategory, the way the menu renders them.
	ListAvailable(ctx context.Context) ([]*ProductView, error)
	// ListAll includes unlisted products for the admin screen.
	ListAll(ctx context.Context) ([]*ProductView, error)
}

type ProductViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	FindAvailable(ctx context.Context) ([]*ProductView, error)
	FindAll(ctx context.Context) ([]*ProductView, error)
}

type productQueriesImpl struct {
	repo ProductViewRepo
}

func NewProductQueries(repo ProductViewRepo) ProductQueries {
	return &productQueriesImpl{repo: repo}
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *productQueriesImpl) ListAvailable(ctx context.Context) ([]*ProductView, error) {
	return q.repo.FindAvailable(ctx)
}

func (q *productQueriesImpl) ListAll(ctx context.Context) ([]*ProductView, error) {
	return q.repo.FindAll(ctx)
}

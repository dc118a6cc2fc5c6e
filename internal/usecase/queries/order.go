package queries

import (
	"context"

	"github.com/google/uuid"
)

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*OrderView, error)
}

type OrderViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	repo OrderViewRepo
}

func NewOrderQueries(repo OrderViewRepo) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*OrderView, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return q.repo.FindByUserID(ctx, userID, int32(limit))
}

package queries

import (
	"context"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	// ListAccounts is the admin view: every profile joined with its ledger.
	ListAccounts(ctx context.Context) ([]*CustomerAccountView, error)
}

type UserViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindAccounts(ctx context.Context) ([]*CustomerAccountView, error)
}

type userQueriesImpl struct {
	repo UserViewRepo
}

func NewUserQueries(repo UserViewRepo) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *userQueriesImpl) ListAccounts(ctx context.Context) ([]*CustomerAccountView, error) {
	return q.repo.FindAccounts(ctx)
}

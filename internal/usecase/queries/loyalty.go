package queries

import (
	"context"

	"github.com/google/uuid"
)

type LoyaltyQueries interface {
	// GetByUser returns the customer's ledger view. Customers who have never
	// purchased get a zeroed view rather than a not-found error.
	GetByUser(ctx context.Context, userID uuid.UUID) (*LedgerView, error)
}

type LedgerViewRepo interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*LedgerView, error)
}

type loyaltyQueriesImpl struct {
	repo LedgerViewRepo
}

func NewLoyaltyQueries(repo LedgerViewRepo) LoyaltyQueries {
	return &loyaltyQueriesImpl{repo: repo}
}

func (q *loyaltyQueriesImpl) GetByUser(ctx context.Context, userID uuid.UUID) (*LedgerView, error) {
	return q.repo.FindByUserID(ctx, userID)
}

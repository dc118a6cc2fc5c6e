package readstore

import (
	"context"

	"brewpoints/internal/domain/loyalty"
	"brewpoints/internal/infra"
	"brewpoints/internal/infra/db"
	"brewpoints/internal/usecase/queries"

	"github.com/google/uuid"
)

type LedgerReadStore struct {
	db db.DBTX
}

func NewLedgerReadStore(dbtx db.DBTX) *LedgerReadStore {
	return &LedgerReadStore{db: dbtx}
}

// FindByUserID returns a zeroed view for customers without a ledger row yet;
// the row is only created lazily on first purchase.
func (r *LedgerReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*queries.LedgerView, error) {
	const query = `
		SELECT points, total_earned, rewards_redeemed
		FROM loyalty_ledgers
		WHERE user_id = $1`

	v := queries.LedgerView{UserID: userID}
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&v.Points, &v.TotalEarned, &v.RewardsRedeemed)
	if err != nil {
		if isNoRows(err) {
			v.PointsToReward = loyalty.RewardThreshold
			return &v, nil
		}
		return nil, infra.WrapRepoErr("failed to find ledger", err)
	}

	v.PointsToReward = loyalty.RewardThreshold - v.Points
	return &v, nil
}

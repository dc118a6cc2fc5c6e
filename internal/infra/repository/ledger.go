package repository

import (
	"context"

	"brewpoints/internal/domain/loyalty"
	"brewpoints/internal/infra"
	"brewpoints/internal/infra/db"
	"brewpoints/internal/usecase/shared"

	"github.com/google/uuid"
)

// LedgerRepository mutates loyalty ledgers through a single versioned
// compare-and-swap; there is no plain update path.
type LedgerRepository struct {
	db db.DBTX
}

func NewLedgerRepository(dbtx db.DBTX) shared.LedgerRepository {
	return &LedgerRepository{db: dbtx}
}

func (r *LedgerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (loyalty.Ledger, error) {
	const query = `
		SELECT points, total_earned, rewards_redeemed, version
		FROM loyalty_ledgers
		WHERE user_id = $1`

	led := loyalty.Ledger{UserID: userID}
	err := r.db.QueryRow(ctx, query, userID).
		Scan(&led.Points, &led.TotalEarned, &led.RewardsRedeemed, &led.Version)
	if err != nil {
		if isNoRows(err) {
			return loyalty.Ledger{}, infra.WrapRepoErr("ledger not found", err, infra.KindNotFound)
		}
		return loyalty.Ledger{}, infra.WrapRepoErr("failed to find ledger", err)
	}

	return led, nil
}

// CreateIfAbsent relies on the user_id primary key: concurrent first
// purchases race on the insert and both settle on the same single row.
func (r *LedgerRepository) CreateIfAbsent(ctx context.Context, userID uuid.UUID) (loyalty.Ledger, error) {
	const insert = `
		INSERT INTO loyalty_ledgers (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, insert, userID); err != nil {
		return loyalty.Ledger{}, infra.WrapRepoErr("failed to ensure ledger row", err, writeErrKind(err))
	}

	return r.FindByUserID(ctx, userID)
}

// CompareAndSwap bumps version by exactly one on success.
func (r *LedgerRepository) CompareAndSwap(ctx context.Context, userID uuid.UUID, expectedVersion int64, next loyalty.Ledger) error {
	const update = `
		UPDATE loyalty_ledgers
		SET points = $2,
		    total_earned = $3,
		    rewards_redeemed = $4,
		    version = version + 1,
		    updated_at = now()
		WHERE user_id = $1 AND version = $5`

	tag, err := r.db.Exec(ctx, update,
		userID, next.Points, next.TotalEarned, next.RewardsRedeemed, expectedVersion)
	if err != nil {
		return infra.WrapRepoErr("failed to update ledger", err, writeErrKind(err))
	}

	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ledger version conflict", nil, infra.KindVersionConflict)
	}

	return nil
}

func (r *LedgerRepository) ListUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	const query = `SELECT user_id FROM loyalty_ledgers ORDER BY user_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger user ids", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ledger user id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ledger user ids", err)
	}

	return ids, nil
}

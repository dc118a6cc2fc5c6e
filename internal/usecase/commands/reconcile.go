package commands

import (
	"context"
	"log/slog"

	"brewpoints/internal/domain/loyalty"
	"brewpoints/internal/infra"
	"brewpoints/internal/usecase/shared"
)

// ReconcileCommands is the safety net for ledgers that drifted from the
// order history, e.g. after a purchase that committed its order but lost
// every ledger compare-and-swap. It recomputes each ledger from the order
// count and repairs rows through the same CAS port as the purchase path.
type ReconcileCommands interface {
	ReconcileLedgers(ctx context.Context) (repaired int, err error)
}

type reconcileUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewReconcileUseCase(uow shared.UnitOfWork) ReconcileCommands {
	return &reconcileUseCaseImpl{uow: uow}
}

func (r *reconcileUseCaseImpl) ReconcileLedgers(ctx context.Context) (int, error) {
	repaired := 0

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		userIDs, err := tx.Ledgers().ListUserIDs(ctx)
		if err != nil {
			return err
		}

		for _, userID := range userIDs {
			current, err := tx.Ledgers().FindByUserID(ctx, userID)
			if err != nil {
				return err
			}

			purchases, err := tx.Orders().CountByUser(ctx, userID)
			if err != nil {
				return err
			}

			expected := loyalty.Rebuild(current, purchases)
			if expected.Points == current.Points &&
				expected.TotalEarned == current.TotalEarned &&
				expected.RewardsRedeemed == current.RewardsRedeemed {
				continue
			}

			err = tx.Ledgers().CompareAndSwap(ctx, userID, current.Version, expected)
			if err != nil {
				// A purchase settled between read and write; the next sweep
				// will re-check this customer.
				if infra.IsKind(err, infra.KindVersionConflict) {
					slog.Warn("ledger changed during reconciliation, skipping",
						"user_id", userID)
					continue
				}
				return err
			}

			slog.Info("repaired drifted ledger",
				"user_id", userID,
				"purchases", purchases,
				"previous_total_earned", current.TotalEarned)
			repaired++
		}

		return nil
	})
	if err != nil {
		return repaired, err
	}

	return repaired, nil
}

package commands

import (
	"context"
	"log/slog"

	"brewpoints/internal/domain/loyalty"
	"brewpoints/internal/domain/order"
	"brewpoints/internal/infra"
	"brewpoints/internal/pkg/errs"
	"brewpoints/internal/usecase/queries"
	"brewpoints/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	// ErrUnauthenticated: no valid principal. Not retried.
	ErrUnauthenticated = errs.New("unauthenticated")
	// ErrProductUnavailable: product missing, unlisted, or priced at zero.
	ErrProductUnavailable = errs.New("product unavailable")
	// ErrInvalidInput: degenerate order lines; a caller bug, not retried.
	ErrInvalidInput = errs.New("invalid purchase input")
	// ErrStorageUnavailable: transient storage failure before the order
	// committed. The whole purchase is safe to retry.
	ErrStorageUnavailable = errs.New("storage unavailable")
	// ErrLedgerIntegrity: the order committed but the ledger update lost every
	// compare-and-swap attempt. Retrying would double-charge; the row is left
	// for the reconciliation sweep.
	ErrLedgerIntegrity = errs.New("order recorded but ledger update failed")
)

// casAttempts bounds the read-policy-write cycle on version conflicts.
const casAttempts = 3

type PurchaseResult struct {
	Order         *queries.OrderView
	NewPoints     int32
	RewardGranted bool
}

type PurchaseCommands interface {
	Purchase(ctx context.Context, userID, productID uuid.UUID) (*PurchaseResult, error)
}

type purchaseUseCaseImpl struct {
	uow          shared.UnitOfWork
	orderQueries queries.OrderQueries
}

func NewPurchaseUseCase(uow shared.UnitOfWork, orderQueries queries.OrderQueries) PurchaseCommands {
	return &purchaseUseCaseImpl{
		uow:          uow,
		orderQueries: orderQueries,
	}
}

// Purchase records an order for one unit of the product and settles the
// loyalty ledger as a single atomic unit. The price is captured here and
// never re-read from the catalog.
func (p *purchaseUseCaseImpl) Purchase(ctx context.Context, userID, productID uuid.UUID) (*PurchaseResult, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	snap, err := p.resolveProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	line, err := order.NewLine(snap.ID, 1, snap.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	orderEntity, err := order.NewOrder(userID, []order.Line{line})
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	var (
		orderID       uuid.UUID
		settled       loyalty.Ledger
		rewardGranted bool
		casExhausted  bool
	)

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var txErr error
		orderID, txErr = tx.Orders().Create(ctx, orderEntity)
		if txErr != nil {
			return txErr
		}

		settled, rewardGranted, casExhausted, txErr = p.settleLedger(ctx, tx, userID)
		return txErr
	})
	if err != nil {
		// Nothing committed; the caller may retry the whole purchase.
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	if casExhausted {
		// The transaction committed with the order but without the point.
		// Surfaced distinctly so it is never mistaken for a retryable failure.
		slog.Error("ledger reconciliation required",
			"user_id", userID,
			"order_id", orderID,
			"attempts", casAttempts)
		return nil, ErrLedgerIntegrity
	}

	orderView, err := p.orderQueries.GetByID(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}

	return &PurchaseResult{
		Order:         orderView,
		NewPoints:     settled.Points,
		RewardGranted: rewardGranted,
	}, nil
}

func (p *purchaseUseCaseImpl) resolveProduct(ctx context.Context, productID uuid.UUID) (*shared.ProductSnapshot, error) {
	snap, err := p.uow.CommandReads().ProductByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProductUnavailable
		}
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}
	if !snap.Available || snap.PriceCents <= 0 {
		return nil, ErrProductUnavailable
	}
	return snap, nil
}

// settleLedger runs the bounded read-policy-write cycle. A version conflict
// means a concurrent purchase by the same customer committed first; the
// cycle re-reads and reapplies rather than failing, and the order insert is
// never repeated. Exhaustion is reported through the flag so the enclosing
// transaction still commits the order.
func (p *purchaseUseCaseImpl) settleLedger(ctx context.Context, tx shared.Tx, userID uuid.UUID) (loyalty.Ledger, bool, bool, error) {
	current, err := tx.Ledgers().CreateIfAbsent(ctx, userID)
	if err != nil {
		return loyalty.Ledger{}, false, false, err
	}

	for attempt := 0; attempt < casAttempts; attempt++ {
		next, granted := loyalty.ApplyEarn(current)

		err = tx.Ledgers().CompareAndSwap(ctx, userID, current.Version, next)
		if err == nil {
			next.Version = current.Version + 1
			return next, granted, false, nil
		}
		if !infra.IsKind(err, infra.KindVersionConflict) {
			return loyalty.Ledger{}, false, false, err
		}

		slog.Warn("ledger version conflict, retrying",
			"user_id", userID,
			"attempt", attempt+1)

		current, err = tx.Ledgers().FindByUserID(ctx, userID)
		if err != nil {
			return loyalty.Ledger{}, false, false, err
		}
	}

	return loyalty.Ledger{}, false, true, nil
}

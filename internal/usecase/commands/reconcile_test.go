//go:build unit

package commands_test

import (
	"context"
	"testing"

	"brewpoints/internal/domain/loyalty"
	"brewpoints/internal/domain/order"
	"brewpoints/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrders(t *testing.T, repo *fakeOrderRepo, userID uuid.UUID, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		line, err := order.NewLine(uuid.New(), 1, 450)
		require.NoError(t, err)
		o, err := order.NewOrder(userID, []order.Line{line})
		require.NoError(t, err)
		_, err = repo.Create(context.Background(), o)
		require.NoError(t, err)
	}
}

func TestReconcileLedgers_RepairsDriftedLedger(t *testing.T) {
	ledgers := newFakeLedgerStore()
	orders := &fakeOrderRepo{}
	uow := &fakeUoW{tx: &fakeTx{orders: orders, ledgers: ledgers}}

	userID := uuid.New()
	seedOrders(t, orders, userID, 12)

	// A purchase lost its ledger update: 12 orders but only 11 recorded.
	ledgers.rows[userID] = loyalty.Ledger{
		UserID:          userID,
		Points:          1,
		TotalEarned:     11,
		RewardsRedeemed: 1,
		Version:         3,
	}

	uc := commands.NewReconcileUseCase(uow)
	repaired, err := uc.ReconcileLedgers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, repaired)

	row := ledgers.rows[userID]
	assert.Equal(t, int32(12), row.TotalEarned)
	assert.Equal(t, int32(2), row.Points)
	assert.Equal(t, int32(1), row.RewardsRedeemed)
	assert.Equal(t, int64(4), row.Version)
	require.NoError(t, row.Validate())
}

func TestReconcileLedgers_LeavesConsistentLedgerAlone(t *testing.T) {
	ledgers := newFakeLedgerStore()
	orders := &fakeOrderRepo{}
	uow := &fakeUoW{tx: &fakeTx{orders: orders, ledgers: ledgers}}

	userID := uuid.New()
	seedOrders(t, orders, userID, 10)
	ledgers.rows[userID] = loyalty.Ledger{
		UserID:          userID,
		Points:          0,
		TotalEarned:     10,
		RewardsRedeemed: 1,
		Version:         7,
	}

	uc := commands.NewReconcileUseCase(uow)
	repaired, err := uc.ReconcileLedgers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, repaired)
	assert.Equal(t, int64(7), ledgers.rows[userID].Version)
	assert.Equal(t, 0, ledgers.compareAndSwaps)
}

func TestReconcileLedgers_SkipsConcurrentlyUpdatedLedger(t *testing.T) {
	ledgers := newFakeLedgerStore()
	orders := &fakeOrderRepo{}
	uow := &fakeUoW{tx: &fakeTx{orders: orders, ledgers: ledgers}}

	userID := uuid.New()
	seedOrders(t, orders, userID, 5)
	ledgers.rows[userID] = loyalty.Ledger{
		UserID:      userID,
		Points:      4,
		TotalEarned: 4,
		Version:     2,
	}
	// A purchase CAS lands between the sweep's read and write.
	ledgers.injectConflicts = 1

	uc := commands.NewReconcileUseCase(uow)
	repaired, err := uc.ReconcileLedgers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, repaired)
}

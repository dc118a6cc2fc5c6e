//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"brewpoints/internal/domain/loyalty"
	"brewpoints/internal/domain/order"
	"brewpoints/internal/infra"
	"brewpoints/internal/usecase/commands"
	"brewpoints/internal/usecase/queries"
	"brewpoints/internal/usecase/shared"
	queriesmock "brewpoints/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// In-memory stand-ins for the persistence ports. The ledger store keeps real
// CAS semantics behind a mutex so concurrent purchases race the way they do
// against the database.

type fakeLedgerStore struct {
	mu              sync.Mutex
	rows            map[uuid.UUID]loyalty.Ledger
	injectConflicts int
	compareAndSwaps int
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{rows: map[uuid.UUID]loyalty.Ledger{}}
}

func (s *fakeLedgerStore) FindByUserID(_ context.Context, userID uuid.UUID) (loyalty.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[userID]
	if !ok {
		return loyalty.Ledger{}, infra.WrapRepoErr("ledger not found", nil, infra.KindNotFound)
	}
	return row, nil
}

func (s *fakeLedgerStore) CreateIfAbsent(_ context.Context, userID uuid.UUID) (loyalty.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if row, ok := s.rows[userID]; ok {
		return row, nil
	}
	row := loyalty.Ledger{UserID: userID, Version: 1}
	s.rows[userID] = row
	return row, nil
}

func (s *fakeLedgerStore) CompareAndSwap(_ context.Context, userID uuid.UUID, expectedVersion int64, next loyalty.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compareAndSwaps++
	if s.injectConflicts > 0 {
		s.injectConflicts--
		return infra.WrapRepoErr("version conflict", nil, infra.KindVersionConflict)
	}
	current, ok := s.rows[userID]
	if !ok || current.Version != expectedVersion {
		return infra.WrapRepoErr("version conflict", nil, infra.KindVersionConflict)
	}
	next.UserID = userID
	next.Version = expectedVersion + 1
	s.rows[userID] = next
	return nil
}

func (s *fakeLedgerStore) ListUserIDs(_ context.Context) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	return ids, nil
}

type fakeOrderRepo struct {
	mu        sync.Mutex
	created   []*order.Order
	createErr error
}

func (r *fakeOrderRepo) Create(_ context.Context, o *order.Order) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, o)
	return o.ID(), nil
}

func (r *fakeOrderRepo) CountByUser(_ context.Context, userID uuid.UUID) (int32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int32
	for _, o := range r.created {
		if o.UserID() == userID {
			n++
		}
	}
	return n, nil
}

type fakeTx struct {
	orders  *fakeOrderRepo
	ledgers *fakeLedgerStore
}

func (t *fakeTx) Orders() shared.OrderRepository               { return t.orders }
func (t *fakeTx) Ledgers() shared.LedgerRepository             { return t.ledgers }
func (t *fakeTx) Products() shared.ProductRepository           { return nil }
func (t *fakeTx) Notifications() shared.NotificationRepository { return nil }
func (t *fakeTx) Users() shared.UserRepository                 { return nil }
func (t *fakeTx) Reads() shared.CommandReads                   { return nil }

type fakeCommandReads struct {
	products map[uuid.UUID]*shared.ProductSnapshot
}

func (r *fakeCommandReads) ProductByID(_ context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	snap, ok := r.products[id]
	if !ok {
		return nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return snap, nil
}

func (r *fakeCommandReads) UserByEmail(_ context.Context, _ string) (*shared.UserSnapshot, error) {
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

type fakeUoW struct {
	tx    *fakeTx
	reads *fakeCommandReads
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return u.reads }

type purchaseFixture struct {
	uc        commands.PurchaseCommands
	uow       *fakeUoW
	ledgers   *fakeLedgerStore
	orders    *fakeOrderRepo
	userID    uuid.UUID
	productID uuid.UUID
}

func newPurchaseFixture(t *testing.T) *purchaseFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	orderQueries := queriesmock.NewMockOrderQueries(ctrl)
	orderQueries.EXPECT().
		GetByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*queries.OrderView, error) {
			return &queries.OrderView{
				ID:         id,
				TotalCents: 450,
				Status:     "completed",
				CreatedAt:  time.Now(),
			}, nil
		}).
		AnyTimes()

	userID := uuid.New()
	productID := uuid.New()

	ledgers := newFakeLedgerStore()
	orders := &fakeOrderRepo{}
	uow := &fakeUoW{
		tx: &fakeTx{orders: orders, ledgers: ledgers},
		reads: &fakeCommandReads{
			products: map[uuid.UUID]*shared.ProductSnapshot{
				productID: {ID: productID, Name: "Espresso", PriceCents: 450, Available: true},
			},
		},
	}

	return &purchaseFixture{
		uc:        commands.NewPurchaseUseCase(uow, orderQueries),
		uow:       uow,
		ledgers:   ledgers,
		orders:    orders,
		userID:    userID,
		productID: productID,
	}
}

func TestPurchase_FirstPurchaseCreatesLedger(t *testing.T) {
	f := newPurchaseFixture(t)

	result, err := f.uc.Purchase(context.Background(), f.userID, f.productID)

	require.NoError(t, err)
	assert.Equal(t, int32(1), result.NewPoints)
	assert.False(t, result.RewardGranted)
	assert.Len(t, f.orders.created, 1)

	row := f.ledgers.rows[f.userID]
	assert.Equal(t, int32(1), row.TotalEarned)
	assert.Equal(t, int64(2), row.Version)
}

func TestPurchase_RewardAtThreshold(t *testing.T) {
	f := newPurchaseFixture(t)
	f.ledgers.rows[f.userID] = loyalty.Ledger{
		UserID:      f.userID,
		Points:      9,
		TotalEarned: 9,
		Version:     5,
	}

	result, err := f.uc.Purchase(context.Background(), f.userID, f.productID)

	require.NoError(t, err)
	assert.True(t, result.RewardGranted)
	assert.Equal(t, int32(0), result.NewPoints)

	row := f.ledgers.rows[f.userID]
	assert.Equal(t, int32(10), row.TotalEarned)
	assert.Equal(t, int32(1), row.RewardsRedeemed)
	assert.Equal(t, int64(6), row.Version)
}

func TestPurchase_UnknownProduct(t *testing.T) {
	f := newPurchaseFixture(t)

	_, err := f.uc.Purchase(context.Background(), f.userID, uuid.New())

	assert.ErrorIs(t, err, commands.ErrProductUnavailable)
	assert.Empty(t, f.orders.created)
}

func TestPurchase_UnlistedProduct(t *testing.T) {
	f := newPurchaseFixture(t)
	f.uow.reads.products[f.productID].Available = false

	_, err := f.uc.Purchase(context.Background(), f.userID, f.productID)

	assert.ErrorIs(t, err, commands.ErrProductUnavailable)
}

func TestPurchase_ZeroPricedProduct(t *testing.T) {
	f := newPurchaseFixture(t)
	f.uow.reads.products[f.productID].PriceCents = 0

	_, err := f.uc.Purchase(context.Background(), f.userID, f.productID)

	assert.ErrorIs(t, err, commands.ErrProductUnavailable)
}

func TestPurchase_MissingPrincipal(t *testing.T) {
	f := newPurchaseFixture(t)

	_, err := f.uc.Purchase(context.Background(), uuid.Nil, f.productID)

	assert.ErrorIs(t, err, commands.ErrUnauthenticated)
	assert.Empty(t, f.orders.created)
}

func TestPurchase_RetriesThroughVersionConflicts(t *testing.T) {
	f := newPurchaseFixture(t)
	f.ledgers.injectConflicts = 2

	result, err := f.uc.Purchase(context.Background(), f.userID, f.productID)

	require.NoError(t, err)
	assert.Equal(t, int32(1), result.NewPoints)
	// two conflicting attempts plus the one that landed
	assert.Equal(t, 3, f.ledgers.compareAndSwaps)
}

func TestPurchase_CASExhaustionKeepsOrder(t *testing.T) {
	f := newPurchaseFixture(t)
	f.ledgers.injectConflicts = 3

	_, err := f.uc.Purchase(context.Background(), f.userID, f.productID)

	assert.ErrorIs(t, err, commands.ErrLedgerIntegrity)
	// The order must survive: retrying the purchase would double-charge.
	assert.Len(t, f.orders.created, 1)
	row := f.ledgers.rows[f.userID]
	assert.Equal(t, int32(0), row.TotalEarned)
}

func TestPurchase_OrderInsertFailureIsRetryable(t *testing.T) {
	f := newPurchaseFixture(t)
	f.orders.createErr = infra.WrapRepoErr("connection reset", nil, infra.KindDBFailure)

	_, err := f.uc.Purchase(context.Background(), f.userID, f.productID)

	assert.ErrorIs(t, err, commands.ErrStorageUnavailable)
	assert.Empty(t, f.orders.created)
}

func TestPurchase_ConcurrentPurchasesGrantExactlyOneReward(t *testing.T) {
	f := newPurchaseFixture(t)
	f.ledgers.rows[f.userID] = loyalty.Ledger{
		UserID:      f.userID,
		Points:      9,
		TotalEarned: 9,
		Version:     1,
	}

	const buyers = 2
	results := make([]*commands.PurchaseResult, buyers)
	errs := make([]error, buyers)

	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.uc.Purchase(context.Background(), f.userID, f.productID)
		}(i)
	}
	wg.Wait()

	grants := 0
	for i := 0; i < buyers; i++ {
		require.NoError(t, errs[i])
		if results[i].RewardGranted {
			grants++
		}
	}
	assert.Equal(t, 1, grants)

	row := f.ledgers.rows[f.userID]
	assert.Equal(t, int32(11), row.TotalEarned)
	assert.Equal(t, int32(1), row.Points)
	assert.Equal(t, int32(1), row.RewardsRedeemed)
	assert.Len(t, f.orders.created, 2)
}

//go:build unit

package loyalty_test

import (
	"testing"

	"brewpoints/internal/domain/loyalty"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEarn(t *testing.T) {
	userID := uuid.New()

	testCases := []struct {
		name          string
		state         loyalty.Ledger
		expectState   loyalty.Ledger
		expectGranted bool
	}{
		{
			name:          "first purchase",
			state:         loyalty.Ledger{UserID: userID},
			expectState:   loyalty.Ledger{UserID: userID, Points: 1, TotalEarned: 1},
			expectGranted: false,
		},
		{
			name:          "below threshold",
			state:         loyalty.Ledger{UserID: userID, Points: 3, TotalEarned: 3},
			expectState:   loyalty.Ledger{UserID: userID, Points: 4, TotalEarned: 4},
			expectGranted: false,
		},
		{
			name:          "threshold boundary grants reward and wraps",
			state:         loyalty.Ledger{UserID: userID, Points: 9, TotalEarned: 9},
			expectState:   loyalty.Ledger{UserID: userID, Points: 0, TotalEarned: 10, RewardsRedeemed: 1},
			expectGranted: true,
		},
		{
			name:          "second reward cycle",
			state:         loyalty.Ledger{UserID: userID, Points: 9, TotalEarned: 19, RewardsRedeemed: 1},
			expectState:   loyalty.Ledger{UserID: userID, Points: 0, TotalEarned: 20, RewardsRedeemed: 2},
			expectGranted: true,
		},
		{
			name:          "version is left untouched",
			state:         loyalty.Ledger{UserID: userID, Points: 1, TotalEarned: 1, Version: 7},
			expectState:   loyalty.Ledger{UserID: userID, Points: 2, TotalEarned: 2, Version: 7},
			expectGranted: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			next, granted := loyalty.ApplyEarn(tc.state)
			assert.Equal(t, tc.expectGranted, granted)
			assert.Empty(t, cmp.Diff(tc.expectState, next))
		})
	}
}

func TestApplyEarn_Deterministic(t *testing.T) {
	state := loyalty.Ledger{UserID: uuid.New(), Points: 9, TotalEarned: 29, RewardsRedeemed: 2}

	first, grantedFirst := loyalty.ApplyEarn(state)
	second, grantedSecond := loyalty.ApplyEarn(state)

	assert.Equal(t, first, second)
	assert.Equal(t, grantedFirst, grantedSecond)
	// input state is untouched
	assert.Equal(t, int32(9), state.Points)
}

func TestApplyEarn_InvariantsHoldOverSequence(t *testing.T) {
	state := loyalty.NewLedger(uuid.New())

	const purchases = 37
	rewards := 0
	for i := 1; i <= purchases; i++ {
		var granted bool
		state, granted = loyalty.ApplyEarn(state)
		if granted {
			rewards++
		}
		require.NoError(t, state.Validate(), "invariants broken after purchase %d", i)
	}

	assert.Equal(t, int32(purchases), state.TotalEarned)
	assert.Equal(t, int32(purchases/loyalty.RewardThreshold), state.RewardsRedeemed)
	assert.Equal(t, int32(purchases%loyalty.RewardThreshold), state.Points)
	assert.Equal(t, purchases/loyalty.RewardThreshold, rewards)
}

func TestRebuild(t *testing.T) {
	base := loyalty.Ledger{UserID: uuid.New(), Points: 5, TotalEarned: 5, Version: 12}

	rebuilt := loyalty.Rebuild(base, 23)

	assert.Equal(t, int32(23), rebuilt.TotalEarned)
	assert.Equal(t, int32(2), rebuilt.RewardsRedeemed)
	assert.Equal(t, int32(3), rebuilt.Points)
	assert.Equal(t, int64(12), rebuilt.Version)
	require.NoError(t, rebuilt.Validate())
}

func TestLedgerValidate(t *testing.T) {
	testCases := []struct {
		name      string
		ledger    loyalty.Ledger
		expectErr bool
	}{
		{name: "zeroed", ledger: loyalty.NewLedger(uuid.New())},
		{name: "consistent", ledger: loyalty.Ledger{Points: 3, TotalEarned: 13, RewardsRedeemed: 1}},
		{name: "points at threshold", ledger: loyalty.Ledger{Points: 10, TotalEarned: 10}, expectErr: true},
		{name: "negative points", ledger: loyalty.Ledger{Points: -1, TotalEarned: 9}, expectErr: true},
		{name: "redeemed drifted", ledger: loyalty.Ledger{Points: 3, TotalEarned: 13, RewardsRedeemed: 0}, expectErr: true},
		{name: "points drifted", ledger: loyalty.Ledger{Points: 4, TotalEarned: 13, RewardsRedeemed: 1}, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.ledger.Validate()
			if tc.expectErr {
				assert.ErrorIs(t, err, loyalty.ErrCorruptLedger)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

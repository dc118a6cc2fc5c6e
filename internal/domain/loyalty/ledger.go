package loyalty

import (
	"errors"

	"github.com/google/uuid"
)

// RewardThreshold is the point count at which a free item is granted and the
// counter wraps back to zero.
const RewardThreshold = 10

var ErrCorruptLedger = errors.New("ledger state violates invariants")

// Ledger is the per-customer loyalty record. Version backs the store's
// compare-and-swap; it is never touched by the policy itself.
//
// Invariants after every committed purchase:
//
//	TotalEarned     == number of purchases
//	RewardsRedeemed == TotalEarned / RewardThreshold
//	Points          == TotalEarned % RewardThreshold
type Ledger struct {
	UserID          uuid.UUID
	Points          int32
	TotalEarned     int32
	RewardsRedeemed int32
	Version         int64
}

func NewLedger(userID uuid.UUID) Ledger {
	return Ledger{UserID: userID}
}

func (l Ledger) Validate() error {
	if l.Points < 0 || l.Points >= RewardThreshold {
		return ErrCorruptLedger
	}
	if l.TotalEarned < 0 || l.RewardsRedeemed < 0 {
		return ErrCorruptLedger
	}
	if l.RewardsRedeemed != l.TotalEarned/RewardThreshold {
		return ErrCorruptLedger
	}
	if l.Points != l.TotalEarned%RewardThreshold {
		return ErrCorruptLedger
	}
	return nil
}

// PointsToReward reports how many more purchases are needed for the next
// free item.
func (l Ledger) PointsToReward() int32 {
	return RewardThreshold - l.Points
}

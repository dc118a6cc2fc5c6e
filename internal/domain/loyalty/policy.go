package loyalty

// ApplyEarn maps a ledger state plus one earned point to the next state.
// Pure function: no clock, no storage, never errors on well-formed input.
// Each purchase adds exactly one point, so the threshold can never be
// overshot and at most one reward is granted per purchase.
func ApplyEarn(state Ledger) (Ledger, bool) {
	next := state
	next.TotalEarned = state.TotalEarned + 1
	next.Points = state.Points + 1

	if next.Points >= RewardThreshold {
		next.Points -= RewardThreshold
		next.RewardsRedeemed = state.RewardsRedeemed + 1
		return next, true
	}

	return next, false
}

// Rebuild computes the ledger state implied by a total purchase count. The
// reconciliation sweep uses it to repair rows that drifted from the order
// history.
func Rebuild(state Ledger, purchases int32) Ledger {
	rebuilt := state
	rebuilt.TotalEarned = purchases
	rebuilt.RewardsRedeemed = purchases / RewardThreshold
	rebuilt.Points = purchases % RewardThreshold
	return rebuilt
}

package response

import (
	"brewpoints/internal/usecase/queries"
)

type LedgerResponse struct {
	Points          int32 `json:"points"`
	TotalEarned     int32 `json:"total_earned"`
	RewardsRedeemed int32 `json:"rewards_redeemed"`
	PointsToReward  int32 `json:"points_to_reward"`
}

func FromLedgerView(rm *queries.LedgerView) *LedgerResponse {
	return &LedgerResponse{
		Points:          rm.Points,
		TotalEarned:     rm.TotalEarned,
		RewardsRedeemed: rm.RewardsRedeemed,
		PointsToReward:  rm.PointsToReward,
	}
}

package response

import (
	"brewpoints/internal/usecase/commands"
	"brewpoints/internal/usecase/queries"
)

type PurchaseResponse struct {
	Order         *queries.OrderView `json:"order"`
	NewPoints     int32              `json:"new_points"`
	RewardGranted bool               `json:"reward_granted"`
}

func FromPurchaseResult(result *commands.PurchaseResult) *PurchaseResponse {
	return &PurchaseResponse{
		Order:         result.Order,
		NewPoints:     result.NewPoints,
		RewardGranted: result.RewardGranted,
	}
}

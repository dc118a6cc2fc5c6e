package response

import (
	"time"

	"brewpoints/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderItemResponse struct {
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

type OrderResponse struct {
	ID         uuid.UUID           `json:"id"`
	TotalCents int64               `json:"total_cents"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	Items      []OrderItemResponse `json:"items"`
}

func FromOrderView(rm *queries.OrderView) *OrderResponse {
	items := make([]OrderItemResponse, len(rm.Items))
	for i, it := range rm.Items {
		items[i] = OrderItemResponse{
			ProductID:      it.ProductID,
			ProductName:    it.ProductName,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
		}
	}
	return &OrderResponse{
		ID:         rm.ID,
		TotalCents: rm.TotalCents,
		Status:     rm.Status,
		CreatedAt:  rm.CreatedAt,
		Items:      items,
	}
}

func FromOrderViews(rms []*queries.OrderView) []*OrderResponse {
	resp := make([]*OrderResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromOrderView(rm)
	}
	return resp
}

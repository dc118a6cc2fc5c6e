package request

import "github.com/google/uuid"

type PurchaseRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

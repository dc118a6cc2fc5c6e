package response

import (
	"time"

	"brewpoints/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Roast       string    `json:"roast,omitempty"`
	Origin      string    `json:"origin,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProductView(rm *queries.ProductView) *ProductResponse {
	var resp ProductResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromProductViews(rms []*queries.ProductView) []*ProductResponse {
	resp := make([]*ProductResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromProductView(rm)
	}
	return resp
}

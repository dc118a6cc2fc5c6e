package request

import "brewpoints/internal/usecase/commands"

type ProductRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
	Category    string `json:"category" binding:"max=100"`
	Subcategory string `json:"subcategory" binding:"max=100"`
	Available   *bool  `json:"available"`
}

func (r *ProductRequest) ToParams() commands.CreateProductParams {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return commands.CreateProductParams{
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Available:   available,
	}
}

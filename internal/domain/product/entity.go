package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName  = errors.New("product name is required")
	ErrInvalidPrice = errors.New("product price must be positive")
)

type Product struct {
	id          uuid.UUID
	name        string
	description string
	priceCents  int64
	imageURL    string
	category    string
	subcategory string
	available   bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(name, description string, priceCents int64, imageURL, category, subcategory string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if priceCents <= 0 {
		return nil, ErrInvalidPrice
	}
	if category == "" {
		category = "General"
	}
	if subcategory == "" {
		subcategory = "General"
	}

	return &Product{
		id:          uuid.New(),
		name:        name,
		description: description,
		priceCents:  priceCents,
		imageURL:    imageURL,
		category:    category,
		subcategory: subcategory,
		available:   true,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	name, description string,
	priceCents int64,
	imageURL, category, subcategory string,
	available bool,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		priceCents:  priceCents,
		imageURL:    imageURL,
		category:    category,
		subcategory: subcategory,
		available:   available,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Product) ID() uuid.UUID       { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) PriceCents() int64   { return p.priceCents }
func (p *Product) ImageURL() string    { return p.imageURL }
func (p *Product) Category() string    { return p.category }
func (p *Product) Subcategory() string { return p.subcategory }
func (p *Product) Available() bool     { return p.available }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ProductView struct {
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

type OrderItemView struct {
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
}

type OrderView struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	TotalCents int64           `json:"total_cents"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	Items      []OrderItemView `json:"items"`
}

type LedgerView struct {
	UserID          uuid.UUID `json:"user_id"`
	Points          int32     `json:"points"`
	TotalEarned     int32     `json:"total_earned"`
	RewardsRedeemed int32     `json:"rewards_redeemed"`
	PointsToReward  int32     `json:"points_to_reward"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// CustomerAccountView joins a profile with its ledger for the admin screen.
type CustomerAccountView struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name"`
	CreatedAt       time.Time `json:"created_at"`
	Points          int32     `json:"points"`
	TotalEarned     int32     `json:"total_earned"`
	RewardsRedeemed int32     `json:"rewards_redeemed"`
}

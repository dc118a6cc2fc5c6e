package shared

import (
	"context"
	"time"

	"brewpoints/internal/domain/loyalty"
	"brewpoints/internal/domain/order"
	"brewpoints/internal/domain/product"
	"brewpoints/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: read access for validation outside transactions.
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Ledgers() LedgerRepository
	Products() ProductRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
}

type CommandReads interface {
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
}

// Write-side snapshots keep commands off the read-model query types.
type ProductSnapshot struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	Available  bool
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) (uuid.UUID, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int32, error)
}

// LedgerRepository is the only write path to loyalty ledgers. It is handed
// out exclusively through Tx so presentation code can never reach it;
// CompareAndSwap is the sole mutation primitive.
type LedgerRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (loyalty.Ledger, error)
	// CreateIfAbsent inserts a zeroed row unless one exists. Idempotent and
	// safe under concurrent first-purchase races.
	CreateIfAbsent(ctx context.Context, userID uuid.UUID) (loyalty.Ledger, error)
	// CompareAndSwap commits next only if the stored version still equals
	// expectedVersion; a lost race surfaces as KindVersionConflict.
	CompareAndSwap(ctx context.Context, userID uuid.UUID, expectedVersion int64, next loyalty.Ledger) error
	ListUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) (uuid.UUID, error)
	Update(ctx context.Context, p *product.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationRepository interface {
	Create(ctx context.Context, title, message string, createdBy uuid.UUID, at time.Time) (uuid.UUID, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

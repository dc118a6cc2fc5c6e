package repository

import (
	"context"

	"brewpoints/internal/domain/order"
	"brewpoints/internal/infra"
	"brewpoints/internal/infra/db"
	"brewpoints/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) shared.OrderRepository {
	return &OrderRepository{db: dbtx}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	const insertOrder = `
		INSERT INTO orders (id, user_id, total_cents, status)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, insertOrder, o.ID(), o.UserID(), o.TotalCents(), string(o.Status()))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err, writeErrKind(err))
	}

	const insertItem = `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price_cents)
		VALUES ($1, $2, $3, $4)`

	for _, line := range o.Lines() {
		_, err = r.db.Exec(ctx, insertItem, o.ID(), line.ProductID(), line.Quantity(), line.UnitPriceCents())
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create order item", err, writeErrKind(err))
		}
	}

	return o.ID(), nil
}

func (r *OrderRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int32, error) {
	const query = `SELECT COUNT(*) FROM orders WHERE user_id = $1 AND status = 'completed'`

	var count int32
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count orders", err)
	}

	return count, nil
}

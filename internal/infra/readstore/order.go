package readstore

import (
	"context"

	"brewpoints/internal/infra"
	"brewpoints/internal/infra/db"
	"brewpoints/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	const query = `
		SELECT id, user_id, total_cents, status, created_at
		FROM orders
		WHERE id = $1`

	var v queries.OrderView
	err := r.db.QueryRow(ctx, query, id).
		Scan(&v.ID, &v.UserID, &v.TotalCents, &v.Status, &v.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	items, err := r.findItems(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	v.Items = items[id]

	return &v, nil
}

func (r *OrderReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.OrderView, error) {
	const query = `
		SELECT id, user_id, total_cents, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	views := []*queries.OrderView{}
	ids := []uuid.UUID{}
	for rows.Next() {
		var v queries.OrderView
		if err := rows.Scan(&v.ID, &v.UserID, &v.TotalCents, &v.Status, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order", err)
		}
		views = append(views, &v)
		ids = append(ids, v.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}

	if len(ids) == 0 {
		return views, nil
	}

	items, err := r.findItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		v.Items = items[v.ID]
	}

	return views, nil
}

// Historical line items carry the unit price captured at purchase time; the
// join to products supplies only the display name.
func (r *OrderReadStore) findItems(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]queries.OrderItemView, error) {
	const query = `
		SELECT oi.order_id, oi.product_id, COALESCE(p.name, ''), oi.quantity, oi.unit_price_cents
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id`

	rows, err := r.db.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	items := make(map[uuid.UUID][]queries.OrderItemView, len(orderIDs))
	for rows.Next() {
		var orderID uuid.UUID
		var item queries.OrderItemView
		if err := rows.Scan(&orderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		items[orderID] = append(items[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}

	return items, nil
}

package readstore

import (
	"context"

	"brewpoints/internal/infra"
	"brewpoints/internal/infra/db"
	"brewpoints/internal/usecase/queries"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: dbtx}
}

func (r *NotificationReadStore) FindRecent(ctx context.Context, limit int32) ([]*queries.NotificationView, error) {
	const query = `
		SELECT id, title, message, created_by, created_at
		FROM notifications
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	views := []*queries.NotificationView{}
	for rows.Next() {
		var v queries.NotificationView
		if err := rows.Scan(&v.ID, &v.Title, &v.Message, &v.CreatedBy, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notifications", err)
	}

	return views, nil
}
